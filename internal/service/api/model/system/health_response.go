package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 헬스체크 상태: healthy, unhealthy
	Status string `json:"status"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime"`
	// 이 프로세스가 사용하는 노드 ID
	NodeID int64 `json:"node_id"`
	// 의존성별 헬스체크 결과 (키: 의존성 이름)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
