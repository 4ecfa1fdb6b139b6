package response

// ErrorResponse API 실패 응답
type ErrorResponse struct {
	// Success 항상 false
	Success bool `json:"success" example:"false"`

	// Message 실패 사유 (Missing params, No data found, Internal error 등)
	Message string `json:"message" example:"No data found"`
}

// NewErrorResponse 지정된 메시지로 ErrorResponse를 생성합니다.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
