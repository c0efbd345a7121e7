package mocks

import (
	"github.com/darkkaiser/snowflake-server/internal/service/contract"
	"github.com/darkkaiser/snowflake-server/pkg/snowflake"
	"github.com/stretchr/testify/mock"
)

// MockStatsProvider는 contract.StatsProvider 인터페이스의 Mock 구현체입니다.
type MockStatsProvider struct {
	mock.Mock
}

var _ contract.StatsProvider = (*MockStatsProvider)(nil)

func (m *MockStatsProvider) NodeID() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

// Stats 호출 순서대로 등록된 통계 스냅샷을 반환합니다.
func (m *MockStatsProvider) Stats() snowflake.Stats {
	args := m.Called()
	return args.Get(0).(snowflake.Stats)
}
