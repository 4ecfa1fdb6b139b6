// Package mocks 테스트용 알림 발송 구현체를 제공합니다.
package mocks

import (
	"sync"
)

// MockSender 발송 요청을 메모리에 기록하는 notification.SenderHealthChecker 구현체입니다.
type MockSender struct {
	mu sync.Mutex

	// HealthErr Health가 반환할 에러입니다.
	HealthErr error

	// Disabled true이면 Enabled가 false를 반환합니다.
	Disabled bool

	messages      []string
	errorMessages []string
}

// NewMockSender MockSender를 생성합니다.
func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) NotifyDefault(message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, message)
	return true
}

func (m *MockSender) NotifyDefaultWithError(message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorMessages = append(m.errorMessages, message)
	return true
}

func (m *MockSender) Enabled() bool {
	return !m.Disabled
}

func (m *MockSender) Health() error {
	return m.HealthErr
}

// Messages NotifyDefault로 전달된 메시지 목록입니다.
func (m *MockSender) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.messages...)
}

// ErrorMessages NotifyDefaultWithError로 전달된 메시지 목록입니다.
func (m *MockSender) ErrorMessages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.errorMessages...)
}
