package constants

// 클라이언트에게 반환되는 메시지 상수입니다.
//
// 기존 클라이언트가 문자열을 그대로 비교하므로 영문 메시지를 변경하지 않습니다.
const (
	// ErrMsgMissingParams 400: 필수 파라미터 누락
	ErrMsgMissingParams = "Missing params"

	// ErrMsgNoData 200: 페이지는 열렸으나 추출된 값이 없음
	ErrMsgNoData = "No data found"

	// ErrMsgInternal 500: 예상하지 못한 오류 (상세 내용은 노출하지 않음)
	ErrMsgInternal = "Internal error"

	// ErrMsgTooManyRequests 429: 요청 속도 제한 초과
	ErrMsgTooManyRequests = "Too many requests"

	// ErrMsgNotFound 404: 등록되지 않은 경로
	ErrMsgNotFound = "Not found"

	// MsgLiveness GET / 응답 문자열
	MsgLiveness = "dnf-profile-server is running"
)
