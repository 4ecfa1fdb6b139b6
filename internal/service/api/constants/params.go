package constants

// SensitiveQueryParams 로그 기록 시 값을 마스킹해야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
