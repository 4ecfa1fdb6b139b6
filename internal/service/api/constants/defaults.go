package constants

import "time"

// HTTP 서버 설정 기본값 상수입니다.
const (
	// DefaultReadTimeout 요청 본문을 읽는 최대 시간
	DefaultReadTimeout = 15 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더를 읽는 최대 시간. 헤더를 매우 느리게 보내는 연결이 소켓을 점유하지 못하게 합니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답을 쓰는 최대 시간. 브라우저 조회가 끝난 뒤에야 응답을 쓰기 시작하므로
	// 요청 제한 시간보다 길어야 합니다. 요청 제한 시간이 길게 설정되면 WriteTimeoutGrace만큼 더 늘어납니다.
	DefaultWriteTimeout = 120 * time.Second

	// WriteTimeoutGrace 요청 컨텍스트 마감 이후 오류 응답을 쓰기까지 확보하는 최소 시간
	WriteTimeoutGrace = 10 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 유휴 제한 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRequestTimeout 요청 처리 제한 시간이 지정되지 않았을 때 적용되는 값
	DefaultRequestTimeout = 60 * time.Second

	// RequestTimeoutGrace 브라우저 요청 제한 시간에 더해지는 HTTP 요청 제한 시간의 여유분.
	// 브라우저 단계의 제한 시간이 먼저 만료되어야 정상적인 오류 응답을 만들 수 있습니다.
	RequestTimeoutGrace = 5 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second
)

// 요청 제한 기본값 상수입니다.
const (
	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수. 요청마다 브라우저 프로세스가 실행되므로 낮게 유지합니다.
	DefaultRateLimitPerSecond = 2

	// DefaultRateLimitBurst IP당 순간 최대 허용 요청 수
	DefaultRateLimitBurst = 5

	// DefaultMaxBodySize 요청 본문 최대 크기. 모든 엔드포인트가 GET이므로 작게 제한합니다.
	DefaultMaxBodySize = "16K"
)
