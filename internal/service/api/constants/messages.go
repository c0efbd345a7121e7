package constants

// 응답 본문의 message 필드에 담기는 문구
const (
	// 400 Bad Request
	ErrMsgBadRequest          = "잘못된 요청입니다"
	ErrMsgInvalidCount        = "count는 1 이상 %d 이하의 정수여야 합니다"
	ErrMsgInvalidID           = "올바르지 않은 ID입니다: %s"
	ErrMsgUnsupportedIDFormat = "지원하지 않는 ID 형식입니다: %s (decimal 또는 base62)"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 503 Service Unavailable
	ErrMsgClockRegression = "서버 시계 이상으로 ID를 발급할 수 없습니다. 잠시 후 다시 시도해주세요"
)

// 로그 메시지
const (
	LogMsgServiceStarting       = "서비스 시작 진입: API 서비스 초기화 프로세스를 시작합니다"
	LogMsgServiceStarted        = "서비스 시작 완료: API 서비스가 요청 수신을 준비하고 있습니다"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 실행 중입니다 (중복 호출)"
	LogMsgServiceStopping       = "종료 절차 진입: API 서비스 중지 시그널을 수신했습니다"
	LogMsgServiceStopped        = "API 서비스 종료 완료"
	LogMsgServiceUnexpectedExit = "HTTP 서버가 종료 신호 없이 먼저 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "HTTP 서버 리스닝 시작"
	LogMsgServiceHTTPServerStopped       = "HTTP 서버 정상 종료"
	LogMsgServiceHTTPServerShutdownError = "HTTP 서버 Graceful Shutdown 중 오류가 발생했습니다"
	LogMsgServiceHTTPServerFatalError    = "HTTP 서버 기동 실패: 포트 바인딩 등 치명적인 오류가 발생했습니다"

	LogMsgHTTPAccess         = "HTTP 요청"
	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
	LogMsgRateLimitExceeded  = "요청 제한 초과: 클라이언트 IP의 토큰이 소진되었습니다"
	LogMsgPanicRecovered     = "패닉 복구: 핸들러에서 발생한 panic을 500 응답으로 전환했습니다"

	LogMsgHealthCheck = "헬스체크 요청"
	LogMsgVersionInfo = "버전 정보 요청"
)
