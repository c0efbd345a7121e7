package constants

// 로그 항목의 component 필드 값
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
)
