package log

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func newTestHook() (*hook, *safeBuffer, *safeBuffer, *safeBuffer) {
	main, critical, verbose := &safeBuffer{}, &safeBuffer{}, &safeBuffer{}
	return &hook{
		mainWriter:     main,
		criticalWriter: critical,
		verboseWriter:  verbose,
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}, main, critical, verbose
}

func fire(t *testing.T, h *hook, level Level, msg string) error {
	t.Helper()
	return h.Fire(&Entry{Logger: logrus.New(), Level: level, Message: msg, Data: Fields{}})
}

func TestHook_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error → main, critical", ErrorLevel, true, true, false},
		{"Warn → main", WarnLevel, true, false, false},
		{"Info → main", InfoLevel, true, false, false},
		{"Debug → verbose", DebugLevel, false, false, true},
		{"Trace → verbose", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, main, critical, verbose := newTestHook()
			require.NoError(t, fire(t, h, tt.level, "routed-message"))

			assert.Equal(t, tt.wantMain, bytes.Contains([]byte(main.String()), []byte("routed-message")))
			assert.Equal(t, tt.wantCritical, bytes.Contains([]byte(critical.String()), []byte("routed-message")))
			assert.Equal(t, tt.wantVerbose, bytes.Contains([]byte(verbose.String()), []byte("routed-message")))
		})
	}
}

func TestHook_CriticalFailureStillWritesMain(t *testing.T) {
	t.Parallel()

	h, main, _, _ := newTestHook()
	h.criticalWriter = failWriter{}

	err := fire(t, h, ErrorLevel, "must-reach-main")

	assert.EqualError(t, err, "disk full")
	assert.Contains(t, main.String(), "must-reach-main")
}

func TestHook_ClosedDropsEntries(t *testing.T) {
	t.Parallel()

	h, main, _, _ := newTestHook()
	h.Close()

	require.NoError(t, fire(t, h, InfoLevel, "dropped"))
	assert.Empty(t, main.String())
}

func TestHook_ConsoleReceivesAllLevels(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newTestHook()
	console := &safeBuffer{}
	h.consoleWriter = console

	require.NoError(t, fire(t, h, TraceLevel, "trace-line"))
	require.NoError(t, fire(t, h, ErrorLevel, "error-line"))

	assert.Contains(t, console.String(), "trace-line")
	assert.Contains(t, console.String(), "error-line")
}
