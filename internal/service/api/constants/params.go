package constants

// URL 파라미터 키 상수입니다.
const (
	// QueryParamCount 한 번에 발급할 ID 개수
	QueryParamCount = "count"

	// QueryParamFormat 경로로 전달된 ID의 표기 형식 (decimal, base62)
	QueryParamFormat = "format"

	// PathParamID 해석할 ID
	PathParamID = "id"
)

// ID 표기 형식
const (
	FormatDecimal = "decimal"
	FormatBase62  = "base62"
)

// HTTP 헤더 키 상수입니다.
const (
	// RetryAfter 요청 제한 초과 시 재시도 권장 시간(초)
	RetryAfter = "Retry-After"
)
