package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/config"
	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Sent() []tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]tgbotapi.MessageConfig(nil), b.sent...)
}

func newTestAppConfig(enabled bool) *config.AppConfig {
	return &config.AppConfig{
		Notifier: config.NotifierConfig{
			Telegram: config.TelegramConfig{
				Enabled:  enabled,
				BotToken: "123456789:ABCdefGhIJKlmNoPQRsTUVwxyZ",
				ChatID:   42,
			},
		},
	}
}

func newTestService(enabled bool, bot botClient, botErr error) *Service {
	return newService(newTestAppConfig(enabled), func(string, bool) (botClient, error) {
		return bot, botErr
	})
}

func TestNewService_PanicsOnNilConfig(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "AppConfig는 필수입니다", func() { NewService(nil) })
}

func TestService_Disabled(t *testing.T) {
	t.Parallel()

	s := newTestService(false, &fakeBot{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	wg.Wait()

	assert.False(t, s.Enabled())
	assert.NoError(t, s.Health())
	assert.False(t, s.NotifyDefault("무시됨"))
	assert.False(t, s.NotifyDefaultWithError("무시됨"))
}

func TestService_NotStarted(t *testing.T) {
	t.Parallel()

	s := newTestService(true, &fakeBot{}, nil)

	assert.True(t, s.Enabled())
	assert.ErrorIs(t, s.Health(), ErrServiceNotRunning)
	assert.False(t, s.NotifyDefault("발송 불가"))
}

func TestService_Start(t *testing.T) {
	t.Parallel()

	t.Run("성공: 알림 메시지 발송", func(t *testing.T) {
		t.Parallel()

		bot := &fakeBot{}
		s := newTestService(true, bot, nil)

		ctx, cancel := context.WithCancel(context.Background())
		wg := &sync.WaitGroup{}
		wg.Add(1)
		require.NoError(t, s.Start(ctx, wg))

		assert.NoError(t, s.Health())
		assert.True(t, s.NotifyDefaultWithError("Internal error"))

		require.Eventually(t, func() bool { return len(bot.Sent()) == 1 }, 2*time.Second, 10*time.Millisecond)

		msg := bot.Sent()[0]
		assert.EqualValues(t, 42, msg.ChatID)
		assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
		assert.Contains(t, msg.Text, "Internal error")

		cancel()
		wg.Wait()

		assert.ErrorIs(t, s.Health(), ErrServiceNotRunning)
		assert.False(t, s.NotifyDefault("종료 후"))
	})

	t.Run("성공: 중복 시작은 무시", func(t *testing.T) {
		t.Parallel()

		s := newTestService(true, &fakeBot{}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		wg := &sync.WaitGroup{}
		wg.Add(2)
		require.NoError(t, s.Start(ctx, wg))
		require.NoError(t, s.Start(ctx, wg))

		cancel()
		wg.Wait()
	})

	t.Run("실패: 봇 초기화 실패", func(t *testing.T) {
		t.Parallel()

		s := newTestService(true, nil, apperrors.New(apperrors.InvalidInput, "unauthorized"))

		wg := &sync.WaitGroup{}
		wg.Add(1)
		err := s.Start(context.Background(), wg)
		wg.Wait()

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		assert.ErrorIs(t, s.Health(), ErrServiceNotRunning)
	})

	t.Run("실패: 봇 클라이언트 없음", func(t *testing.T) {
		t.Parallel()

		s := newTestService(true, nil, nil)

		wg := &sync.WaitGroup{}
		wg.Add(1)
		err := s.Start(context.Background(), wg)
		wg.Wait()

		assert.ErrorIs(t, err, ErrBotNotInitialized)
	})
}

func TestService_ShutdownDrainsQueue(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	s := newTestService(true, bot, nil)

	// run 고루틴 없이 큐만 채운 뒤 shutdown이 남은 메시지를 발송하는지 확인합니다.
	s.bot = bot
	s.requestC = make(chan request, queueSize)
	s.running = true

	require.True(t, s.NotifyDefault("첫 번째"))
	require.True(t, s.NotifyDefault("두 번째"))

	s.shutdown()

	sent := bot.Sent()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].Text, "첫 번째")
	assert.Contains(t, sent[1].Text, "두 번째")
}
