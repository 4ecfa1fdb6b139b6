// Package mocks 테스트에서 실제 Chrome 없이 browser.Launcher와 browser.Session을 대체하는 구현체를 제공합니다.
package mocks

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/dnf-profile-server/internal/service/browser"
)

// PNGSignature 캡처 결과로 반환되는 기본 PNG 시그니처 바이트입니다.
var PNGSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Page 세션이 흉내낼 페이지 동작을 정의합니다.
//
// 각 함수 필드가 nil이면 성공으로 동작합니다. HTML은 Snapshot이 반환할 문서입니다.
type Page struct {
	HTML string

	AcquireErr    error
	NavigateFunc  func(ctx context.Context, url string) error
	WaitReadyFunc func(ctx context.Context, selector string) error
	ScreenshotErr error
	Screenshot    []byte
}

// MockLauncher 획득/해제 횟수를 기록하는 Launcher 구현체입니다.
type MockLauncher struct {
	Page Page

	acquired atomic.Int64
	released atomic.Int64

	mu   sync.Mutex
	urls []string
}

// NewMockLauncher 지정된 페이지 동작으로 MockLauncher를 생성합니다.
func NewMockLauncher(page Page) *MockLauncher {
	return &MockLauncher{Page: page}
}

func (m *MockLauncher) Acquire(ctx context.Context) (browser.Session, error) {
	if m.Page.AcquireErr != nil {
		return nil, m.Page.AcquireErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.acquired.Add(1)
	return &mockSession{launcher: m}, nil
}

// Acquired 지금까지 성공한 획득 횟수입니다.
func (m *MockLauncher) Acquired() int64 { return m.acquired.Load() }

// Released 지금까지 해제된 세션 수입니다. 같은 세션을 여러 번 Close 해도 한 번만 셉니다.
func (m *MockLauncher) Released() int64 { return m.released.Load() }

// Active 획득 후 아직 해제되지 않은 세션 수입니다.
func (m *MockLauncher) Active() int64 { return m.acquired.Load() - m.released.Load() }

// URLs Navigate로 요청된 URL 목록입니다.
func (m *MockLauncher) URLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.urls...)
}

type mockSession struct {
	launcher  *MockLauncher
	closeOnce sync.Once
}

func (s *mockSession) Navigate(ctx context.Context, url string) error {
	s.launcher.mu.Lock()
	s.launcher.urls = append(s.launcher.urls, url)
	s.launcher.mu.Unlock()

	if f := s.launcher.Page.NavigateFunc; f != nil {
		return f(ctx, url)
	}
	return nil
}

func (s *mockSession) WaitReady(ctx context.Context, selector string) error {
	if f := s.launcher.Page.WaitReadyFunc; f != nil {
		return f(ctx, selector)
	}
	return nil
}

func (s *mockSession) Snapshot(_ context.Context) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(s.launcher.Page.HTML))
}

func (s *mockSession) Screenshot(_ context.Context, _ string) ([]byte, error) {
	if s.launcher.Page.ScreenshotErr != nil {
		return nil, s.launcher.Page.ScreenshotErr
	}
	if s.launcher.Page.Screenshot != nil {
		return s.launcher.Page.Screenshot, nil
	}
	return PNGSignature, nil
}

func (s *mockSession) Version(_ context.Context) (string, error) {
	return "HeadlessChrome/mock", nil
}

func (s *mockSession) Close() error {
	s.closeOnce.Do(func() {
		s.launcher.released.Add(1)
	})
	return nil
}

// BlockUntilDone 호출자 ctx가 끝날 때까지 대기한 뒤 그 에러를 반환합니다. 제한 시간 초과를 흉내낼 때 사용합니다.
func BlockUntilDone(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}
