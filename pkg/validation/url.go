package validation

import (
	"fmt"
	"net/url"
)

// ValidateSiteURL 스크래핑 대상 페이지의 URL이 http/https 절대 URL인지 검증합니다.
// 쿼리 파라미터는 요청마다 덧붙이므로 기본 URL에 쿼리가 포함되어 있으면 거부합니다.
func ValidateSiteURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL이 비어있습니다")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("잘못된 URL 형식입니다 (input=%q): %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL은 http 또는 https 스키마를 사용해야 합니다 (input=%q)", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("URL에 호스트가 없습니다 (input=%q)", rawURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("기본 URL에는 쿼리 또는 프래그먼트를 포함할 수 없습니다 (input=%q)", rawURL)
	}

	return nil
}
