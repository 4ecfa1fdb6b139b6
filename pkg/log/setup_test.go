package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobalState 테스트 간 Setup의 전역 상태를 초기화합니다.
func resetGlobalState() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil
	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("x"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{"성공: 기본값", Options{Name: "app"}, ""},
		{"실패: Name 누락", Options{Dir: "logs"}, "애플리케이션 식별자(Name)가 설정되지 않았습니다"},
		{"실패: Dir이 파일", Options{Name: "app", Dir: tempFile}, "이미 파일로 존재합니다"},
		{"실패: 음수 MaxAge", Options{Name: "app", MaxAge: -1}, "0 이상이어야 합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestSetup(t *testing.T) {
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	dir := t.TempDir()
	opts := NewProductionOptions("setup-test")
	opts.Dir = dir

	c, err := Setup(opts)
	require.NoError(t, err)

	WithComponentAndFields("test", Fields{"key": "value"}).Info("info-message")
	WithComponent("test").Error("error-message")
	WithComponent("test").Debug("debug-message")

	t.Run("재호출 시 동일한 Closer 반환", func(t *testing.T) {
		again, err := Setup(Options{})
		require.NoError(t, err)
		assert.Same(t, c, again)
	})

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "두 번째 Close는 nil을 반환해야 합니다")

	mainLog, err := os.ReadFile(filepath.Join(dir, "setup-test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "info-message")
	assert.Contains(t, string(mainLog), "error-message")
	assert.NotContains(t, string(mainLog), "debug-message")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "setup-test.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "error-message")
	assert.NotContains(t, string(criticalLog), "info-message")
}

func TestSetup_InvalidOptions(t *testing.T) {
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	_, err := Setup(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "유효하지 않은 로그 설정")
}

type errCloser struct{ err error }

func (c errCloser) Close() error { return c.err }

func TestCloser_JoinsErrors(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b")
	c := &closer{closers: []io.Closer{errCloser{errA}, nil, errCloser{errB}}, hook: &hook{}}

	err := c.Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.True(t, c.hook.closed)
	assert.NoError(t, c.Close())
}

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	fields := Fields{"component": "overridden", "url": "https://example.com"}
	entry := WithComponentAndFields("profile.service", fields)

	assert.Equal(t, "profile.service", entry.Data["component"])
	assert.Equal(t, "https://example.com", entry.Data["url"])
	assert.Equal(t, "overridden", fields["component"], "입력 맵은 변경되지 않아야 합니다")
}
