package contract

import (
	"github.com/darkkaiser/snowflake-server/pkg/snowflake"
)

// IDIssuer ID 발급 기능을 제공하는 인터페이스입니다.
// API 핸들러와 같은 클라이언트는 이 인터페이스를 통해 발급 서비스를 사용합니다.
type IDIssuer interface {
	// Next 새로운 ID 하나를 발급합니다.
	//
	// 반환값:
	//   - error: 시계 역행이 감지되면 apperrors.System 타입의 에러 (재시도하지 않습니다)
	Next() (snowflake.ID, error)

	// NextBatch n개의 ID를 연속으로 발급합니다. 반환된 ID는 오름차순입니다.
	//
	// 반환값:
	//   - error: n이 1 미만이면 apperrors.InvalidInput, 시계 역행이면 apperrors.System
	NextBatch(n int) ([]snowflake.ID, error)

	// NodeID 발급에 사용되는 노드 ID를 반환합니다.
	NodeID() int64
}

// IssuerHealthChecker 발급 서비스의 상태를 확인하는 인터페이스입니다.
type IssuerHealthChecker interface {
	// Health 서비스가 정상적으로 ID를 발급할 수 있는 상태인지 확인합니다.
	//
	// 반환값:
	//   - error: 정상이면 nil, 시계 역행이 관측된 이후에는 apperrors.Unavailable 타입의 에러
	Health() error
}

// StatsProvider 생성기의 누적 통계를 제공하는 인터페이스입니다.
type StatsProvider interface {
	NodeID() int64
	Stats() snowflake.Stats
}
