package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultReadTimeout 요청 본문까지 읽는 데 허용되는 최대 시간
	DefaultReadTimeout = 10 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더를 읽는 데 허용되는 최대 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 5 * time.Second

	// DefaultWriteTimeout 응답 쓰기에 허용되는 최대 시간
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문 최대 크기. ID 발급 API는 본문을 사용하지 않습니다.
	DefaultMaxBodySize = "64K"

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second
)
