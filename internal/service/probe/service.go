// Package probe 헤드리스 브라우저를 실행할 수 있는지 주기적으로 점검합니다.
//
// 점검 결과는 /health 엔드포인트에서 조회되며, 상태가 바뀌면(정상 -> 실패, 실패 -> 정상) 운영자에게 알림을 보냅니다.
package probe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/config"
	"github.com/darkkaiser/dnf-profile-server/internal/pkg/mark"
	"github.com/darkkaiser/dnf-profile-server/internal/service/browser"
	"github.com/darkkaiser/dnf-profile-server/internal/service/notification"
	"github.com/darkkaiser/dnf-profile-server/pkg/cronx"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/robfig/cron/v3"
)

const component = "probe.service"

// Status 마지막 브라우저 상태 점검 결과입니다.
type Status struct {
	// Checked 점검이 한 번이라도 수행되었는지 여부
	Checked bool

	Healthy bool

	// Version 점검에 성공했을 때의 브라우저 버전
	Version string

	// Error 점검에 실패했을 때의 에러 메시지
	Error string

	CheckedAt time.Time

	// Latency 점검에 걸린 시간
	Latency time.Duration
}

// Service 브라우저 상태 점검 서비스입니다.
type Service struct {
	probe config.HealthProbeConfig

	timeout time.Duration

	launcher browser.Launcher

	notificationSender notification.Sender

	cron *cron.Cron

	statusMu sync.RWMutex
	status   Status

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, launcher browser.Launcher, notificationSender notification.Sender) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}
	if launcher == nil {
		panic("browser.Launcher는 필수입니다")
	}
	if notificationSender == nil {
		panic("NotificationSender는 필수입니다")
	}

	return &Service{
		probe: appConfig.HealthProbe,

		timeout: appConfig.Browser.RequestTimeout,

		launcher: launcher,

		notificationSender: notificationSender,
	}
}

// Start 설정된 스케줄로 상태 점검을 시작합니다. 상태 점검이 비활성화되어 있으면 아무 작업도 하지 않습니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("브라우저 상태 점검 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("브라우저 상태 점검 서비스가 이미 시작됨!!!")
		return nil
	}

	if !s.probe.Enabled {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Info("브라우저 상태 점검이 비활성화되어 있어 서비스를 시작하지 않습니다")
		return nil
	}

	// SkipIfStillRunning: 이전 점검이 끝나지 않았으면 이번 점검은 건너뜁니다.
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := s.cron.AddFunc(s.probe.TimeSpec, func() { s.Run(serviceStopCtx) }); err != nil {
		defer serviceStopWG.Done()
		s.cron = nil
		return fmt.Errorf("브라우저 상태 점검 스케줄 등록에 실패하였습니다(time_spec=%q): %w", s.probe.TimeSpec, err)
	}

	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.probe.TimeSpec,
	}).Info("브라우저 상태 점검 서비스 시작됨")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

func (s *Service) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("브라우저 상태 점검 서비스 중지중...")

	// 실행 중인 점검이 끝날 때까지 대기합니다.
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("브라우저 상태 점검 서비스 중지됨")
}

// Enabled 상태 점검이 설정에서 활성화되어 있는지 반환합니다.
func (s *Service) Enabled() bool {
	return s.probe.Enabled
}

// Status 마지막 점검 결과를 반환합니다.
func (s *Service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()

	return s.status
}

// Run 브라우저 상태를 한 번 점검하고 결과를 저장합니다.
func (s *Service) Run(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	version, err := browser.Probe(ctx, s.launcher)

	current := Status{
		Checked:   true,
		Healthy:   err == nil,
		Version:   version,
		CheckedAt: time.Now(),
		Latency:   time.Since(start),
	}
	if err != nil {
		current.Error = err.Error()
	}

	s.statusMu.Lock()
	previous := s.status
	s.status = current
	s.statusMu.Unlock()

	s.report(previous, current, err)

	return current
}

// report 점검 결과를 로깅하고, 상태가 바뀐 경우에만 알림을 보냅니다. 첫 점검은 이전 상태를 정상으로 간주합니다.
func (s *Service) report(previous, current Status, err error) {
	wasHealthy := !previous.Checked || previous.Healthy

	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error":      err,
			"latency_ms": current.Latency.Milliseconds(),
		}).Error("브라우저 상태 점검에 실패하였습니다")

		if wasHealthy {
			s.notificationSender.NotifyDefaultWithError(fmt.Sprintf("%s 브라우저 상태 점검에 실패하였습니다.\n\n%s", mark.Warning, err))
		}
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"version":    current.Version,
		"latency_ms": current.Latency.Milliseconds(),
	}).Debug("브라우저 상태 점검 성공")

	if !wasHealthy {
		s.notificationSender.NotifyDefault(fmt.Sprintf("%s 브라우저 상태 점검이 정상으로 복구되었습니다. (%s)", mark.Recovered, current.Version))
	}
}
