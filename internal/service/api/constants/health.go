package constants

// /health 응답의 status 값
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// DependencyIDIssuer /health 응답의 dependencies 맵에서 ID 발급기 항목의 키
const DependencyIDIssuer = "id_issuer"

// MsgDepStatusHealthy 정상 상태인 의존성의 message 값
const MsgDepStatusHealthy = "정상적으로 ID를 발급하고 있습니다"
