// Package browser 요청 단위로 헤드리스 브라우저를 실행하고 페이지 이동, 준비 대기, DOM 스냅샷,
// 영역 캡처 기능을 제공합니다.
//
// 브라우저 프로세스는 요청 사이에 공유하지 않습니다. 모든 호출부는 With를 통해 브라우저를
// 획득하며, With는 콜백이 어떻게 종료되든(정상, 에러, 패닉) 정확히 한 번 브라우저를 해제합니다.
//
//	err := browser.With(ctx, launcher, func(s browser.Session) error {
//	    if err := s.Navigate(ctx, url); err != nil {
//	        return err
//	    }
//	    return s.WaitReady(ctx, "#content-container")
//	})
package browser

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
)

const component = "browser"

// Launcher 새로운 브라우저 세션을 획득합니다.
type Launcher interface {
	// Acquire 브라우저를 실행하고 세션을 반환합니다. 반환된 세션은 반드시 Close 해야 합니다.
	Acquire(ctx context.Context) (Session, error)
}

// Session 하나의 브라우저 프로세스(탭 1개)에 대한 조작을 제공합니다.
type Session interface {
	// Navigate 지정된 URL로 이동하고 페이지 로드가 끝날 때까지 대기합니다.
	Navigate(ctx context.Context, url string) error

	// WaitReady 셀렉터에 일치하는 요소가 준비될 때까지 대기합니다.
	// 제한 시간 내에 준비되지 않으면 ErrPageNotReady를 감싼 에러를 반환합니다.
	WaitReady(ctx context.Context, selector string) error

	// Snapshot 현재 페이지의 DOM을 goquery 문서로 반환합니다.
	Snapshot(ctx context.Context) (*goquery.Document, error)

	// Screenshot 셀렉터에 일치하는 첫 번째 요소를 PNG로 캡처합니다. 셀렉터가 비어있으면 페이지 전체를 캡처합니다.
	// 요소가 없으면 ErrElementNotFound를 감싼 에러를 반환합니다.
	Screenshot(ctx context.Context, selector string) ([]byte, error)

	// Version 브라우저 제품 버전 문자열을 반환합니다.
	Version(ctx context.Context) (string, error)

	// Close 브라우저 프로세스를 종료합니다. 여러 번 호출해도 안전합니다.
	Close() error
}

// With 브라우저를 획득하여 fn을 실행하고, 어떤 경로로 종료되든 정확히 한 번 해제합니다.
func With(ctx context.Context, l Launcher, fn func(Session) error) error {
	s, err := l.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Warn("브라우저 종료 중 오류가 발생하였습니다")
		}
	}()

	return fn(s)
}

// Probe 브라우저를 실행하여 빈 페이지를 열고 버전 문자열을 반환합니다. 상태 점검에 사용합니다.
func Probe(ctx context.Context, l Launcher) (string, error) {
	var version string
	err := With(ctx, l, func(s Session) error {
		if err := s.Navigate(ctx, "about:blank"); err != nil {
			return err
		}

		v, err := s.Version(ctx)
		if err != nil {
			return err
		}
		version = v
		return nil
	})

	return version, err
}
