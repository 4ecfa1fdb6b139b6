package browser

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/config"
	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorOptions(t *testing.T) {
	t.Parallel()

	base := len(allocatorOptions(config.BrowserConfig{}))

	tests := []struct {
		name  string
		cfg   config.BrowserConfig
		extra int
	}{
		{name: "기본 옵션", cfg: config.BrowserConfig{Headless: true}, extra: 0},
		{name: "GPU 비활성화", cfg: config.BrowserConfig{DisableGPU: true}, extra: 1},
		{name: "UserAgent와 실행 경로", cfg: config.BrowserConfig{UserAgent: "ua", ExecPath: "/usr/bin/chromium"}, extra: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Len(t, allocatorOptions(tt.cfg), base+tt.extra)
		})
	}
}

func TestWrapStepError(t *testing.T) {
	t.Parallel()

	t.Run("제한 시간 초과는 Timeout", func(t *testing.T) {
		t.Parallel()

		err := wrapStepError(fmt.Errorf("navigate: %w", context.DeadlineExceeded), apperrors.ExecutionFailed, "페이지 이동 실패")
		assert.Equal(t, apperrors.Timeout, apperrors.UnderlyingType(err))
		assert.Contains(t, err.Error(), "제한 시간 초과")
	})

	t.Run("그 외는 지정된 타입", func(t *testing.T) {
		t.Parallel()

		err := wrapStepError(errors.New("net::ERR_NAME_NOT_RESOLVED"), apperrors.ExecutionFailed, "페이지 이동 실패")
		assert.Equal(t, apperrors.ExecutionFailed, apperrors.UnderlyingType(err))
	})
}

func TestNewPageNotReadyError(t *testing.T) {
	t.Parallel()

	err := newPageNotReadyError("#content-container", context.DeadlineExceeded)

	require.ErrorIs(t, err, ErrPageNotReady)
	assert.Equal(t, apperrors.Unavailable, apperrors.UnderlyingType(err))
	assert.Contains(t, err.Error(), "#content-container")
}

func TestNewElementNotFoundError(t *testing.T) {
	t.Parallel()

	err := newElementNotFoundError(".adv-stat")

	require.ErrorIs(t, err, ErrElementNotFound)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestChromeSession_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	cancelCount := 0
	s := &chromeSession{
		ctx:         ctx,
		cancel:      func() { cancelCount++; cancel() },
		allocCancel: func() {},
	}
	cancel()

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
	assert.Equal(t, 1, cancelCount)
}
