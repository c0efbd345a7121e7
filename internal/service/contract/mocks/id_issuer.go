package mocks

import (
	"github.com/darkkaiser/snowflake-server/internal/service/contract"
	"github.com/darkkaiser/snowflake-server/pkg/snowflake"
	"github.com/stretchr/testify/mock"
)

// MockIDIssuer는 contract.IDIssuer와 contract.IssuerHealthChecker 인터페이스의 Mock 구현체입니다.
// 테스트 환경에서 예측 가능한 ID와 에러를 반환하기 위해 사용됩니다.
type MockIDIssuer struct {
	mock.Mock
}

var (
	_ contract.IDIssuer            = (*MockIDIssuer)(nil)
	_ contract.IssuerHealthChecker = (*MockIDIssuer)(nil)
)

// Next 지정된 Mock 동작에 따라 ID를 반환합니다.
func (m *MockIDIssuer) Next() (snowflake.ID, error) {
	args := m.Called()
	return args.Get(0).(snowflake.ID), args.Error(1)
}

// NextBatch 지정된 Mock 동작에 따라 ID 목록을 반환합니다.
func (m *MockIDIssuer) NextBatch(n int) ([]snowflake.ID, error) {
	args := m.Called(n)
	ids, _ := args.Get(0).([]snowflake.ID)
	return ids, args.Error(1)
}

func (m *MockIDIssuer) NodeID() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockIDIssuer) Health() error {
	args := m.Called()
	return args.Error(0)
}
