package system

// DependencyStatus 내부 의존성 헬스체크 결과
type DependencyStatus struct {
	// 헬스체크 상태: healthy, unhealthy
	Status string `json:"status"`
	// 상태 상세 정보 또는 에러 메시지
	Message string `json:"message,omitempty"`
}
