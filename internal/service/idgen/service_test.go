package idgen

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/darkkaiser/snowflake-server/internal/config"
	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
	"github.com/darkkaiser/snowflake-server/internal/service/contract"
	"github.com/darkkaiser/snowflake-server/pkg/snowflake"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain runs tests and checks for goroutine leaks.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestConfig(nodeID *int64) *config.AppConfig {
	return &config.AppConfig{
		Generator: config.GeneratorConfig{NodeID: nodeID},
	}
}

func int64Ptr(v int64) *int64 { return &v }

// manualClock 테스트가 직접 값을 바꾸는 시계를 반환합니다.
func manualClock(start int64) (*atomic.Int64, snowflake.Option) {
	now := &atomic.Int64{}
	now.Store(start)
	return now, snowflake.WithClock(snowflake.ClockFunc(now.Load))
}

// =============================================================================
// NewService Tests
// =============================================================================

func TestNewService(t *testing.T) {
	t.Run("설정된 노드 ID 사용", func(t *testing.T) {
		s, err := NewService(newTestConfig(int64Ptr(17)))
		require.NoError(t, err)
		assert.Equal(t, int64(17), s.NodeID())
	})

	t.Run("노드 ID 미설정 시 무작위 할당 및 경고", func(t *testing.T) {
		hook := test.NewGlobal()
		defer hook.Reset()

		s, err := NewService(newTestConfig(nil))
		require.NoError(t, err)
		assert.LessOrEqual(t, s.NodeID(), snowflake.MaxNodeID)

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Equal(t, s.NodeID(), hook.LastEntry().Data["node_id"])
	})

	t.Run("범위를 벗어난 노드 ID", func(t *testing.T) {
		s, err := NewService(newTestConfig(int64Ptr(1024)))
		require.Error(t, err)
		assert.Nil(t, s)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

		var cfgErr *snowflake.ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("nil 설정은 패닉", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = NewService(nil) })
	})
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestService_StartAndStop(t *testing.T) {
	s, err := NewService(newTestConfig(int64Ptr(3)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// 중복 호출은 WaitGroup을 즉시 정리하고 nil을 반환합니다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	_, err = s.Next()
	require.NoError(t, err)

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("서비스가 종료되지 않았습니다")
	}

	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	assert.False(t, s.running)
}

// =============================================================================
// Issue Tests
// =============================================================================

func TestService_Next(t *testing.T) {
	now, clockOpt := manualClock(snowflake.Epoch + 1000)
	s, err := NewService(newTestConfig(int64Ptr(5)), clockOpt)
	require.NoError(t, err)

	first, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.NodeID())
	assert.Equal(t, int64(1000), first.Timestamp())

	now.Add(1)
	second, err := s.Next()
	require.NoError(t, err)
	assert.Greater(t, second, first)

	assert.NoError(t, s.Health())
	assert.Equal(t, uint64(2), s.Stats().Generated)
}

func TestService_NextBatch(t *testing.T) {
	s, err := NewService(newTestConfig(int64Ptr(5)))
	require.NoError(t, err)

	t.Run("정상 발급", func(t *testing.T) {
		ids, err := s.NextBatch(100)
		require.NoError(t, err)
		require.Len(t, ids, 100)
		for i := 1; i < len(ids); i++ {
			assert.Greater(t, ids[i], ids[i-1])
		}
	})

	t.Run("잘못된 개수는 InvalidInput", func(t *testing.T) {
		ids, err := s.NextBatch(0)
		assert.Nil(t, ids)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		assert.ErrorIs(t, err, snowflake.ErrInvalidBatchSize)

		ids, err = s.NextBatch(snowflake.MaxBatchSize + 1)
		assert.Nil(t, ids)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

		// 입력 오류는 서비스 상태에 영향을 주지 않습니다.
		assert.NoError(t, s.Health())
	})
}

func TestService_ClockRegressionMarksUnhealthy(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	now, clockOpt := manualClock(snowflake.Epoch + 1000)
	s, err := NewService(newTestConfig(int64Ptr(9)), clockOpt)
	require.NoError(t, err)

	_, err = s.Next()
	require.NoError(t, err)

	now.Store(snowflake.Epoch + 975)

	id, err := s.Next()
	require.Error(t, err)
	assert.Equal(t, snowflake.ID(0), id)
	assert.True(t, apperrors.Is(err, apperrors.System))

	var regErr *snowflake.ClockRegressionError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, 25*time.Millisecond, regErr.Delta())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, int64(25), entry.Data["delta_ms"])
	assert.Equal(t, int64(9), entry.Data["node_id"])

	healthErr := s.Health()
	require.Error(t, healthErr)
	assert.True(t, apperrors.Is(healthErr, apperrors.Unavailable))
	assert.True(t, errors.Is(healthErr, contract.ErrIssuerFaulted))
	assert.Contains(t, healthErr.Error(), "25ms")

	t.Run("배치 발급도 같은 방식으로 실패", func(t *testing.T) {
		ids, err := s.NextBatch(3)
		assert.Nil(t, ids)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})

	t.Run("시계가 회복되면 발급은 재개되지만 상태는 유지", func(t *testing.T) {
		now.Store(snowflake.Epoch + 1001)
		_, err := s.Next()
		require.NoError(t, err)
		assert.Error(t, s.Health())
	})

	assert.Equal(t, uint64(2), s.Stats().ClockRegressions)
}

func TestService_ConcurrentNext(t *testing.T) {
	s, err := NewService(newTestConfig(int64Ptr(1)))
	require.NoError(t, err)

	const workers = 8
	const perWorker = 1000

	var mu sync.Mutex
	seen := make(map[snowflake.ID]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id, err := s.Next()
				if err != nil {
					t.Errorf("Next 실패: %v", err)
					return
				}
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
