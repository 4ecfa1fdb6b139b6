// Package log logrus 기반의 애플리케이션 로깅 패키지입니다.
//
// 모든 로그는 component 필드로 발생 위치를 식별합니다.
//
//	applog.WithComponentAndFields("profile.service", applog.Fields{
//	    "url": url,
//	}).Debug("페이지 이동 시작")
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// fields에 component 키가 있더라도 인자로 받은 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}

// WithFields logrus.WithFields의 별칭입니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// StandardLogger 전역 Logger 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetLevel 전역 로그 레벨을 설정합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetOutput 전역 Logger의 출력 대상을 설정합니다. (주로 테스트에서 사용)
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 Logger의 포맷터를 설정합니다. (주로 테스트에서 사용)
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}
