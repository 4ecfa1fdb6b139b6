// Package api 프로필 조회 HTTP API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/dnf-profile-server/docs"
	"github.com/darkkaiser/dnf-profile-server/internal/config"
	"github.com/darkkaiser/dnf-profile-server/internal/pkg/version"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/handler/profile"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/handler/system"
	"github.com/darkkaiser/dnf-profile-server/internal/service/notification"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 프로필 조회 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start()로 시작하면 별도의 고루틴에서 HTTP/HTTPS 서버를 실행하며, serviceStopCtx가 취소되면
// 진행 중인 요청을 constants.DefaultShutdownTimeout 동안 기다린 뒤 서버를 종료합니다.
// 서버가 예기치 않게 종료되면 운영자에게 알림을 보냅니다.
type Service struct {
	appConfig *config.AppConfig

	profileService profile.ProfileService

	notificationService notification.SenderHealthChecker

	browserProbe system.BrowserProbe

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, profileService profile.ProfileService, notificationService notification.SenderHealthChecker, browserProbe system.BrowserProbe, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if profileService == nil {
		panic(constants.PanicMsgProfileServiceRequired)
	}
	if notificationService == nil {
		panic(constants.PanicMsgNotificationSenderRequired)
	}
	if browserProbe == nil {
		panic(constants.PanicMsgHealthProbeRequired)
	}

	return &Service{
		appConfig: appConfig,

		profileService: profileService,

		notificationService: notificationService,

		browserProbe: browserProbe,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// 서비스가 이미 실행 중이면 serviceStopWG.Done()을 호출하고 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러와 미들웨어, 라우트가 모두 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.notificationService, s.browserProbe, s.buildInfo)
	profileHandler := profile.NewHandler(s.profileService, s.notificationService)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		AllowOrigins:   s.appConfig.API.CORS.AllowOrigins,
		RequestTimeout: s.appConfig.Browser.RequestTimeout,
	})

	RegisterRoutes(e, systemHandler, profileHandler)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작합니다. 서버가 종료될 때까지 블로킹됩니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.API.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
		"tls":  s.appConfig.API.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if s.appConfig.API.TLSServer {
		err = e.StartTLS(fmt.Sprintf(":%d", port), s.appConfig.API.TLSCertFile, s.appConfig.API.TLSKeyFile)
	} else {
		err = e.Start(fmt.Sprintf(":%d", port))
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 에러를 처리합니다.
// http.ErrServerClosed는 정상 종료이며, 그 외의 에러는 로깅 후 운영자에게 알립니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	message := constants.LogMsgServiceHTTPServerFatalError
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error(message)

	s.notificationService.NotifyDefaultWithError(fmt.Sprintf("%s\n\n%s", message, err))
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우입니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
