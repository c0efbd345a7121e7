// Package model v1 API의 응답 모델을 정의합니다.
package model

// IssueResponse ID 발급 응답
//
// ID는 JavaScript 등에서 53비트를 넘는 정수가 손상되지 않도록 10진수 문자열로 직렬화됩니다.
type IssueResponse struct {
	NodeID int64    `json:"node_id"`
	IDs    []string `json:"ids"`
}

// DecodeResponse ID 분해 결과 응답
type DecodeResponse struct {
	ID        string `json:"id"`
	Base62    string `json:"base62"`
	Timestamp int64  `json:"timestamp"` // Epoch 이후 경과 밀리초
	UnixMilli int64  `json:"unix_ms"`
	Time      string `json:"time"` // RFC3339 (UTC, 밀리초 포함)
	NodeID    int64  `json:"node_id"`
	Sequence  int64  `json:"sequence"`
}
