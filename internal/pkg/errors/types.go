package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
//
// API 계층은 이 값을 보고 응답 유형(400 / 200 no-data / 500)을 결정하므로,
// 새로운 타입을 추가할 때는 httputil의 매핑도 함께 확인해야 합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 예상하지 못한 상태)
	Internal

	// System 시스템 자원 오류 (브라우저 프로세스 실행 실패, 파일 I/O 등)
	System

	// InvalidInput 잘못된 입력값 (요청 파라미터 누락, 설정값 오류)
	InvalidInput

	// NotFound 찾는 데이터가 페이지에 존재하지 않음
	NotFound

	// ExecutionFailed 브라우저 자동화 단계의 실행 실패
	ExecutionFailed

	// ParsingFailed DOM 스냅샷 또는 데이터 해석 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 대상 페이지 또는 의존 서비스가 일시적으로 사용 불가
	Unavailable
)
