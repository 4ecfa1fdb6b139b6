// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 서비스 생존 확인, 헬스체크, 버전 정보 등 프로필 조회와 무관한 API를 처리합니다.
package system

import (
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/pkg/version"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/model/system"
	"github.com/darkkaiser/dnf-profile-server/internal/service/notification"
	"github.com/darkkaiser/dnf-profile-server/internal/service/probe"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// BrowserProbe 브라우저 상태 점검 결과를 제공하는 인터페이스입니다.
type BrowserProbe interface {
	Enabled() bool
	Status() probe.Status
}

// Handler 시스템 엔드포인트 핸들러 (생존 확인, 헬스체크, 버전 정보)
type Handler struct {
	notificationHealth notification.HealthChecker

	browserProbe BrowserProbe

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(notificationHealth notification.HealthChecker, browserProbe BrowserProbe, buildInfo version.Info) *Handler {
	if notificationHealth == nil {
		panic(constants.PanicMsgNotificationSenderRequired)
	}
	if browserProbe == nil {
		panic(constants.PanicMsgHealthProbeRequired)
	}

	return &Handler{
		notificationHealth: notificationHealth,

		browserProbe: browserProbe,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// LivenessHandler godoc
// @Summary 서버 생존 확인
// @Description 서버 프로세스가 요청을 받을 수 있는 상태인지 확인합니다.
// @Tags System
// @Produce plain
// @Success 200 {string} string "dnf-profile-server is running"
// @Router / [get]
func (h *Handler) LivenessHandler(c echo.Context) error {
	return c.String(http.StatusOK, constants.MsgLiveness)
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성의 상태를 확인합니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 외부 의존성별 상태 (browser, notification_service)
// @Description
// @Description browser 상태는 요청 시점에 브라우저를 실행하지 않고 마지막 주기 점검 결과를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyBrowser:             h.browserStatus(),
		constants.DependencyNotificationService: h.notificationStatus(),
	}

	// 점검하지 않은(unknown) 의존성은 전체 상태에 영향을 주지 않습니다.
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status == constants.HealthStatusUnhealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) browserStatus() system.DependencyStatus {
	if !h.browserProbe.Enabled() {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnknown,
			Message: constants.MsgDepStatusDisabled,
		}
	}

	s := h.browserProbe.Status()
	if !s.Checked {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnknown,
			Message: constants.MsgDepStatusNotChecked,
		}
	}

	dep := system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: s.Latency.Milliseconds(),
		CheckedAt: s.CheckedAt.Format(time.RFC3339),
		Message:   s.Version,
	}
	if !s.Healthy {
		dep.Status = constants.HealthStatusUnhealthy
		dep.Message = s.Error
	}

	return dep
}

func (h *Handler) notificationStatus() system.DependencyStatus {
	if !h.notificationHealth.Enabled() {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnknown,
			Message: constants.MsgDepStatusDisabled,
		}
	}

	if err := h.notificationHealth.Health(); err != nil {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		Platform:    fmt.Sprintf("%s/%s", h.buildInfo.OS, h.buildInfo.Arch),
		DirtyBuild:  h.buildInfo.DirtyBuild,
	})
}
