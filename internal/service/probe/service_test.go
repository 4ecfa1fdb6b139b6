package probe

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/config"
	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	"github.com/darkkaiser/dnf-profile-server/internal/pkg/mark"
	"github.com/darkkaiser/dnf-profile-server/internal/service/browser/mocks"
	notificationmocks "github.com/darkkaiser/dnf-profile-server/internal/service/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestAppConfig(enabled bool, timeSpec string) *config.AppConfig {
	return &config.AppConfig{
		Browser: config.BrowserConfig{
			RequestTimeout: time.Second,
		},
		HealthProbe: config.HealthProbeConfig{
			Enabled:  enabled,
			TimeSpec: timeSpec,
		},
	}
}

func TestNewService_Panics(t *testing.T) {
	t.Parallel()

	launcher := mocks.NewMockLauncher(mocks.Page{})
	sender := notificationmocks.NewMockSender()

	assert.PanicsWithValue(t, "AppConfig는 필수입니다", func() { NewService(nil, launcher, sender) })
	assert.PanicsWithValue(t, "browser.Launcher는 필수입니다", func() { NewService(newTestAppConfig(true, "@every 1s"), nil, sender) })
	assert.PanicsWithValue(t, "NotificationSender는 필수입니다", func() { NewService(newTestAppConfig(true, "@every 1s"), launcher, nil) })
}

func TestService_Run(t *testing.T) {
	t.Parallel()

	t.Run("성공: 점검 결과 저장", func(t *testing.T) {
		t.Parallel()

		launcher := mocks.NewMockLauncher(mocks.Page{})
		sender := notificationmocks.NewMockSender()
		s := NewService(newTestAppConfig(true, "@every 1s"), launcher, sender)

		assert.False(t, s.Status().Checked)

		status := s.Run(context.Background())

		assert.True(t, status.Checked)
		assert.True(t, status.Healthy)
		assert.Equal(t, "HeadlessChrome/mock", status.Version)
		assert.Empty(t, status.Error)
		assert.Equal(t, status, s.Status())
		assert.EqualValues(t, 0, launcher.Active())
		assert.Empty(t, sender.Messages())
		assert.Empty(t, sender.ErrorMessages())
	})

	t.Run("성공: 상태 변경 시에만 알림", func(t *testing.T) {
		t.Parallel()

		launcher := mocks.NewMockLauncher(mocks.Page{AcquireErr: apperrors.New(apperrors.System, "chrome not found")})
		sender := notificationmocks.NewMockSender()
		s := NewService(newTestAppConfig(true, "@every 1s"), launcher, sender)

		// 정상 -> 실패: 한 번만 알림
		status := s.Run(context.Background())
		assert.False(t, status.Healthy)
		assert.Contains(t, status.Error, "chrome not found")
		s.Run(context.Background())

		require.Len(t, sender.ErrorMessages(), 1)
		assert.Contains(t, sender.ErrorMessages()[0], mark.Warning.String())

		// 실패 -> 정상: 복구 알림
		launcher.Page.AcquireErr = nil
		status = s.Run(context.Background())
		assert.True(t, status.Healthy)
		s.Run(context.Background())

		require.Len(t, sender.Messages(), 1)
		assert.Contains(t, sender.Messages()[0], mark.Recovered.String())
		assert.Len(t, sender.ErrorMessages(), 1)
	})

	t.Run("실패: 점검 제한 시간 초과 후에도 브라우저 해제", func(t *testing.T) {
		t.Parallel()

		launcher := mocks.NewMockLauncher(mocks.Page{NavigateFunc: mocks.BlockUntilDone})
		sender := notificationmocks.NewMockSender()
		cfg := newTestAppConfig(true, "@every 1s")
		cfg.Browser.RequestTimeout = 10 * time.Millisecond
		s := NewService(cfg, launcher, sender)

		status := s.Run(context.Background())

		assert.False(t, status.Healthy)
		assert.EqualValues(t, 1, launcher.Acquired())
		assert.EqualValues(t, 0, launcher.Active())
	})
}

func TestService_Start(t *testing.T) {
	t.Parallel()

	t.Run("성공: 비활성화 상태", func(t *testing.T) {
		t.Parallel()

		s := NewService(newTestAppConfig(false, ""), mocks.NewMockLauncher(mocks.Page{}), notificationmocks.NewMockSender())

		wg := &sync.WaitGroup{}
		wg.Add(1)
		require.NoError(t, s.Start(context.Background(), wg))
		wg.Wait()

		assert.False(t, s.Enabled())
	})

	t.Run("성공: 스케줄에 따라 점검 실행", func(t *testing.T) {
		t.Parallel()

		launcher := mocks.NewMockLauncher(mocks.Page{})
		s := NewService(newTestAppConfig(true, "@every 1s"), launcher, notificationmocks.NewMockSender())

		ctx, cancel := context.WithCancel(context.Background())
		wg := &sync.WaitGroup{}
		wg.Add(1)
		require.NoError(t, s.Start(ctx, wg))

		require.Eventually(t, func() bool { return s.Status().Checked }, 3*time.Second, 50*time.Millisecond)

		cancel()
		wg.Wait()

		assert.True(t, s.Status().Healthy)
		assert.EqualValues(t, 0, launcher.Active())
	})

	t.Run("실패: 잘못된 스케줄", func(t *testing.T) {
		t.Parallel()

		s := NewService(newTestAppConfig(true, "invalid"), mocks.NewMockLauncher(mocks.Page{}), notificationmocks.NewMockSender())

		wg := &sync.WaitGroup{}
		wg.Add(1)
		err := s.Start(context.Background(), wg)
		wg.Wait()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid")
	})
}
