package log

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCloser io.Closer의 Mock 구현체입니다.
type MockCloser struct {
	mock.Mock
}

func (m *MockCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockSyncCloser Sync()를 함께 제공하는 io.Closer의 Mock 구현체입니다.
type MockSyncCloser struct {
	MockCloser
}

func (m *MockSyncCloser) Sync() error {
	args := m.Called()
	return args.Error(0)
}

func TestCloser_Close(t *testing.T) {
	t.Run("성공: 모든 리소스가 정상적으로 닫힘", func(t *testing.T) {
		m1 := new(MockCloser)
		m2 := new(MockSyncCloser)
		h := &hook{}

		m1.On("Close").Return(nil)
		m2.On("Sync").Return(nil)
		m2.On("Close").Return(nil)

		c := &closer{closers: []io.Closer{m1, nil, m2}, hook: h}

		require.NoError(t, c.Close())
		assert.True(t, h.closed)
		m1.AssertExpectations(t)
		m2.AssertExpectations(t)
	})

	t.Run("실패: 일부 리소스 닫기 실패 시에도 나머지는 시도함", func(t *testing.T) {
		errFail1 := errors.New("fail 1")
		errFail2 := errors.New("fail 2")

		m1 := new(MockCloser)
		m2 := new(MockCloser)
		m3 := new(MockCloser)
		m1.On("Close").Return(errFail1)
		m2.On("Close").Return(nil)
		m3.On("Close").Return(errFail2)

		c := &closer{closers: []io.Closer{m1, m2, m3}}

		err := c.Close()
		assert.ErrorIs(t, err, errFail1)
		assert.ErrorIs(t, err, errFail2)
		m1.AssertExpectations(t)
		m2.AssertExpectations(t)
		m3.AssertExpectations(t)
	})

	t.Run("멱등성: 두 번째 호출은 아무것도 하지 않음", func(t *testing.T) {
		m := new(MockCloser)
		m.On("Close").Return(nil).Once()

		c := &closer{closers: []io.Closer{m}}

		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
		m.AssertNumberOfCalls(t, "Close", 1)
	})
}
