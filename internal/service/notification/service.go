package notification

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/config"
	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const component = "notification.service"

const (
	// queueSize 발송 대기 중인 알림 메시지의 최대 개수입니다. 가득 차면 새 메시지는 버려집니다.
	queueSize = 100

	// httpClientTimeout 텔레그램 API 호출의 최대 대기 시간입니다.
	httpClientTimeout = 30 * time.Second

	// shutdownDrainTimeout 서비스 종료 시 큐에 남은 메시지를 발송하기 위해 기다리는 최대 시간입니다.
	shutdownDrainTimeout = 5 * time.Second

	// 텔레그램은 같은 채팅방에 초당 1건 정도의 발송을 권장합니다.
	defaultRateLimit = 1
	defaultRateBurst = 5
)

type request struct {
	message       string
	errorOccurred bool
}

// Service 텔레그램으로 알림 메시지를 발송하는 서비스입니다.
//
// 설정에서 텔레그램 알림이 비활성화되어 있으면 모든 발송 요청을 무시합니다.
type Service struct {
	telegram config.TelegramConfig
	debug    bool

	newBot botFactory
	bot    botClient

	limiter *rate.Limiter

	requestC chan request

	running   bool
	runningMu sync.RWMutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	return newService(appConfig, newTelegramBot)
}

func newService(appConfig *config.AppConfig, newBot botFactory) *Service {
	return &Service{
		telegram: appConfig.Notifier.Telegram,
		debug:    appConfig.Debug,

		newBot: newBot,

		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateBurst),
	}
}

// Start 알림 서비스를 시작합니다.
//
// 텔레그램 알림이 비활성화되어 있으면 아무 작업도 하지 않고 serviceStopWG를 완료 처리합니다.
// 봇 클라이언트 생성에 실패하면 에러를 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("알림 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("알림 서비스가 이미 시작됨!!!")
		return nil
	}

	if !s.telegram.Enabled {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Info("텔레그램 알림이 비활성화되어 있어 알림 서비스를 시작하지 않습니다")
		return nil
	}

	bot, err := s.newBot(s.telegram.BotToken, s.debug)
	if err != nil {
		defer serviceStopWG.Done()
		return err
	}
	if bot == nil {
		defer serviceStopWG.Done()
		return ErrBotNotInitialized
	}

	s.bot = bot
	s.requestC = make(chan request, queueSize)
	s.running = true

	go s.run(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": s.telegram.ChatID,
	}).Info("알림 서비스 시작됨")

	return nil
}

func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	for {
		select {
		case <-serviceStopCtx.Done():
			s.shutdown()
			return

		case req := <-s.requestC:
			s.send(serviceStopCtx, req)
		}
	}
}

// shutdown 새 요청을 막고 큐에 남은 메시지를 제한 시간 안에서 발송합니다.
func (s *Service) shutdown() {
	applog.WithComponent(component).Info("알림 서비스 중지중...")

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownDrainTimeout)
	defer cancel()

	for {
		select {
		case req := <-s.requestC:
			s.send(ctx, req)
		default:
			applog.WithComponent(component).Info("알림 서비스 중지됨")
			return
		}
	}
}

func (s *Service) send(ctx context.Context, req request) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"panic": r,
			}).Error("알림 메시지 발송 중 패닉이 발생하였습니다")
		}
	}()

	if err := s.limiter.Wait(ctx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("발송 대기 중 취소되어 알림 메시지를 버립니다")
		return
	}

	for _, chunk := range splitMessage(buildMessage(req.message, req.errorOccurred), messageMaxLength) {
		msg := tgbotapi.NewMessage(s.telegram.ChatID, chunk)
		msg.ParseMode = tgbotapi.ModeHTML

		if _, err := s.bot.Send(msg); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"chat_id": s.telegram.ChatID,
				"error":   err,
			}).Error("텔레그램 메시지 발송에 실패하였습니다")
			return
		}
	}
}

// NotifyDefault 일반 알림 메시지를 발송 큐에 적재합니다.
func (s *Service) NotifyDefault(message string) bool {
	return s.enqueue(message, false)
}

// NotifyDefaultWithError 오류 알림 메시지를 발송 큐에 적재합니다.
func (s *Service) NotifyDefaultWithError(message string) bool {
	return s.enqueue(message, true)
}

func (s *Service) enqueue(message string, errorOccurred bool) bool {
	if !s.telegram.Enabled {
		return false
	}

	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	if !s.running {
		applog.WithComponent(component).Warn("알림 서비스가 실행 중이 아니어서 메시지를 발송할 수 없습니다")
		return false
	}

	select {
	case s.requestC <- request{message: message, errorOccurred: errorOccurred}:
		return true
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"queue_size": queueSize,
		}).Warn("알림 발송 큐가 가득 차서 메시지를 버립니다")
		return false
	}
}

// Enabled 텔레그램 알림이 설정에서 활성화되어 있는지 반환합니다.
func (s *Service) Enabled() bool {
	return s.telegram.Enabled
}

// Health 알림 서비스의 상태를 반환합니다. 비활성화된 경우 항상 nil입니다.
func (s *Service) Health() error {
	if !s.telegram.Enabled {
		return nil
	}

	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	if !s.running {
		return ErrServiceNotRunning
	}
	if s.bot == nil {
		return apperrors.Wrap(ErrBotNotInitialized, apperrors.Unavailable, "알림 서비스를 사용할 수 없습니다")
	}

	return nil
}
