package snowflake

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

const (
	// Epoch 타임스탬프 필드의 기준 시각입니다. (2026-01-01T00:00:00Z, Unix 밀리초)
	//
	// 동시에 존재할 수 있는 모든 생성기 인스턴스가 반드시 같은 값을 사용해야
	// 노드 간 ID의 시간 순서가 유지되므로 설정으로 변경할 수 없습니다.
	Epoch int64 = 1767225600000

	// TimestampBits 타임스탬프 필드의 비트 수
	TimestampBits = 41

	// NodeIDBits 노드 ID 필드의 비트 수
	NodeIDBits = 10

	// SequenceBits 시퀀스 필드의 비트 수
	SequenceBits = 12

	// MaxTimestamp 타임스탬프 필드가 표현할 수 있는 최댓값 (약 69년)
	MaxTimestamp int64 = 1<<TimestampBits - 1

	// MaxNodeID 노드 ID의 최댓값 (1023)
	MaxNodeID int64 = 1<<NodeIDBits - 1

	// MaxSequence 시퀀스의 최댓값 (4095)
	MaxSequence int64 = 1<<SequenceBits - 1

	// MaxBatchSize NextIDs 한 번으로 발급할 수 있는 최대 개수입니다. 1밀리초 분량의 시퀀스와 같습니다.
	MaxBatchSize = 1 << SequenceBits

	nodeIDShift    = SequenceBits
	timestampShift = NodeIDBits + SequenceBits
)

// Option Generator 생성 시 선택적으로 적용할 설정입니다.
type Option func(*Generator)

// WithClock 생성기가 참조할 시계를 지정합니다. nil이면 무시됩니다.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// Stats 생성기의 누적 동작 통계입니다.
type Stats struct {
	Generated         uint64 // 발급된 ID 수
	SequenceExhausted uint64 // 시퀀스 소진으로 다음 밀리초까지 대기한 횟수
	ClockRegressions  uint64 // 시계 역행이 감지되어 발급에 실패한 횟수
}

// Generator 스노우플레이크 방식의 64비트 ID 생성기입니다.
//
// 하나의 인스턴스는 여러 고루틴에서 동시에 사용해도 안전합니다.
// 상태((lastTimeMillis, sequence))는 인스턴스가 단독으로 소유하며 mu를 보유한 상태에서만 변경됩니다.
type Generator struct {
	nodeID int64
	clock  Clock

	mu             sync.Mutex
	lastTimeMillis int64 // 마지막으로 ID를 발급한 시각 (Unix 밀리초)
	sequence       int64 // lastTimeMillis 내에서 마지막으로 사용한 시퀀스

	generated         atomic.Uint64
	sequenceExhausted atomic.Uint64
	clockRegressions  atomic.Uint64
}

// New 지정된 노드 ID를 사용하는 Generator를 생성합니다.
//
// 노드 ID가 [0, MaxNodeID] 범위를 벗어나면 *ConfigurationError를 반환합니다.
func New(nodeID int64, opts ...Option) (*Generator, error) {
	if nodeID < 0 || nodeID > MaxNodeID {
		return nil, &ConfigurationError{Field: "node_id", Value: nodeID, Min: 0, Max: MaxNodeID}
	}

	g := &Generator{
		nodeID: nodeID,
		clock:  SystemClock(),

		// Epoch 이전의 시각은 시계 역행으로 취급합니다.
		lastTimeMillis: Epoch,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// NewRandom 무작위로 추출한 노드 ID를 사용하는 Generator를 생성합니다.
//
// 독립적으로 기동된 인스턴스끼리 같은 노드 ID를 뽑을 확률이 남아 있으므로,
// 다중 인스턴스 운영 환경에서는 New 또는 NewWithSource로 조정된 노드 ID를 지정해야 합니다.
func NewRandom(opts ...Option) (*Generator, error) {
	return NewWithSource(RandomNodeID, opts...)
}

// NewWithSource src가 결정한 노드 ID로 Generator를 생성합니다. src가 nil이면 RandomNodeID를 사용합니다.
func NewWithSource(src NodeIDSource, opts ...Option) (*Generator, error) {
	if src == nil {
		src = RandomNodeID
	}

	nodeID, err := src()
	if err != nil {
		return nil, fmt.Errorf("snowflake: 노드 ID를 할당하지 못했습니다: %w", err)
	}

	return New(nodeID, opts...)
}

// NodeID 이 생성기에 할당된 노드 ID를 반환합니다.
func (g *Generator) NodeID() int64 {
	return g.nodeID
}

// Stats 누적 통계의 스냅샷을 반환합니다. 생성기의 잠금을 획득하지 않습니다.
func (g *Generator) Stats() Stats {
	return Stats{
		Generated:         g.generated.Load(),
		SequenceExhausted: g.sequenceExhausted.Load(),
		ClockRegressions:  g.clockRegressions.Load(),
	}
}

// NextID 새로운 ID를 발급합니다.
//
// 동작 방식:
//  1. 현재 시각(now)을 밀리초 단위로 읽습니다.
//  2. now가 직전 발급 시각보다 과거이면 *ClockRegressionError를 반환합니다. (상태 변경 없음)
//  3. now가 직전 발급 시각과 같으면 시퀀스를 1 증가시킵니다.
//     4096개를 모두 사용하여 시퀀스가 0으로 돌아오면, 시계가 다음 밀리초로 넘어갈 때까지 대기합니다.
//  4. now가 직전 발급 시각보다 이후이면 시퀀스를 0으로 초기화합니다.
//  5. now - Epoch가 MaxTimestamp를 넘으면 ErrTimestampOverflow를 반환합니다. (2095년 무렵, 상태 변경 없음)
//  6. (now - Epoch) | 노드 ID | 시퀀스 를 조합하여 반환합니다.
//
// 시퀀스 소진 시의 대기는 sleep이 아닌 스핀(시계 재조회 반복)이므로 최대 약 1ms 동안 CPU를 점유합니다.
// 스핀 중에는 runtime.Gosched()로 다른 고루틴에 실행 기회를 양보합니다.
func (g *Generator) NextID() (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.nextLocked()
}

// NextIDs n개의 ID를 한 번의 잠금 구간에서 연속으로 발급합니다.
//
// 발급하는 동안 다른 NextID 호출은 대기하므로 n은 MaxBatchSize로 제한됩니다.
// 최악의 경우 잠금 보유 시간은 약 1ms(시퀀스 소진 대기 1회)입니다.
// 도중에 시계 역행이 감지되면 이미 발급한 ID를 버리고 에러만 반환합니다.
func (g *Generator) NextIDs(n int) ([]ID, error) {
	if n <= 0 || n > MaxBatchSize {
		return nil, ErrInvalidBatchSize
	}

	ids := make([]ID, n)

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range ids {
		id, err := g.nextLocked()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}

// nextLocked g.mu를 보유한 상태에서 호출되어야 합니다.
func (g *Generator) nextLocked() (ID, error) {
	now := g.clock.NowMilli()

	if now < g.lastTimeMillis {
		g.clockRegressions.Add(1)
		return 0, &ClockRegressionError{Last: g.lastTimeMillis, Now: now}
	}

	prevSequence := g.sequence
	if now == g.lastTimeMillis {
		g.sequence = (g.sequence + 1) & MaxSequence
		if g.sequence == 0 {
			g.sequenceExhausted.Add(1)
			now = g.waitNextMillis()
		}
	} else {
		g.sequence = 0
	}

	if now-Epoch > MaxTimestamp {
		// 상태를 변경하지 않으므로 시계가 정상 범위로 돌아오면 발급이 재개됩니다.
		g.sequence = prevSequence
		return 0, ErrTimestampOverflow
	}

	g.lastTimeMillis = now
	g.generated.Add(1)

	return compose(now-Epoch, g.nodeID, g.sequence), nil
}

// waitNextMillis 시계가 lastTimeMillis보다 큰 밀리초를 반환할 때까지 스핀하며 대기합니다.
func (g *Generator) waitNextMillis() int64 {
	now := g.clock.NowMilli()
	for now <= g.lastTimeMillis {
		runtime.Gosched()
		now = g.clock.NowMilli()
	}
	return now
}
