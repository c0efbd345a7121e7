package response

// ErrorResponse API 오류 응답
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드 (예: 400, 429, 503)
	ResultCode int `json:"result_code"`

	// Message 에러 메시지
	Message string `json:"message"`
}
