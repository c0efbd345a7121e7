// Package idgen 애플리케이션 설정에 따라 스노우플레이크 생성기를 구성하고,
// 발급 실패(시계 역행)를 기록하여 서비스 상태로 노출하는 ID 발급 서비스를 제공합니다.
package idgen

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/darkkaiser/snowflake-server/internal/config"
	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
	"github.com/darkkaiser/snowflake-server/internal/service/contract"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/darkkaiser/snowflake-server/pkg/snowflake"
)

// component ID 발급 서비스의 로깅용 컴포넌트 이름
const component = "idgen.service"

// Service 프로세스 전체에서 공유되는 단일 Generator를 소유하는 ID 발급 서비스입니다.
type Service struct {
	generator *snowflake.Generator

	// lastRegressionMs 마지막으로 관측된 시계 역행의 크기(ms)입니다. 0이면 역행이 관측된 적이 없습니다.
	lastRegressionMs atomic.Int64

	running   bool
	runningMu sync.Mutex
}

var (
	_ contract.IDIssuer            = (*Service)(nil)
	_ contract.IssuerHealthChecker = (*Service)(nil)
	_ contract.StatsProvider       = (*Service)(nil)
)

// NewService 설정에 지정된 노드 ID로 ID 발급 서비스를 생성합니다.
// 노드 ID가 설정되지 않았으면 무작위로 할당하고 경고를 남깁니다.
func NewService(appConfig *config.AppConfig, opts ...snowflake.Option) (*Service, error) {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	var (
		g   *snowflake.Generator
		err error
	)
	if appConfig.Generator.HasNodeID() {
		g, err = snowflake.New(*appConfig.Generator.NodeID, opts...)
	} else {
		g, err = snowflake.NewRandom(opts...)
		if err == nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"node_id": g.NodeID(),
			}).Warn("노드 ID가 설정되지 않아 무작위로 할당했습니다. 여러 인스턴스를 운영한다면 인스턴스마다 고유한 노드 ID를 지정하세요")
		}
	}
	if err != nil {
		var cfgErr *snowflake.ConfigurationError
		if errors.As(err, &cfgErr) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, "ID 생성기 설정이 올바르지 않습니다")
		}
		return nil, apperrors.Wrap(err, apperrors.System, "ID 생성기를 초기화하지 못했습니다")
	}

	return &Service{generator: g}, nil
}

// Start 서비스를 시작합니다. 생성기는 NewService 시점에 이미 준비되어 있으므로,
// 여기서는 할당 결과를 기록하고 종료 신호를 기다렸다가 최종 통계를 남깁니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("ID 발급 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"node_id": s.generator.NodeID(),
		"epoch":   snowflake.Epoch,
	}).Info("ID 발급 서비스 시작됨")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.runningMu.Lock()
		s.running = false
		s.runningMu.Unlock()

		stats := s.generator.Stats()
		applog.WithComponentAndFields(component, applog.Fields{
			"node_id":            s.generator.NodeID(),
			"generated":          stats.Generated,
			"sequence_exhausted": stats.SequenceExhausted,
			"clock_regressions":  stats.ClockRegressions,
		}).Info("ID 발급 서비스 중지됨")
	}()

	return nil
}

// Next 새로운 ID 하나를 발급합니다.
func (s *Service) Next() (snowflake.ID, error) {
	id, err := s.generator.NextID()
	if err != nil {
		return 0, s.handleError(err)
	}
	return id, nil
}

// NextBatch n개의 ID를 연속으로 발급합니다.
func (s *Service) NextBatch(n int) ([]snowflake.ID, error) {
	ids, err := s.generator.NextIDs(n)
	if err != nil {
		return nil, s.handleError(err)
	}
	return ids, nil
}

// handleError 생성기 에러를 애플리케이션 에러 타입으로 변환합니다.
// 시계 역행은 재시도하지 않고 서비스를 비정상 상태로 표시합니다.
func (s *Service) handleError(err error) error {
	if errors.Is(err, snowflake.ErrInvalidBatchSize) {
		return apperrors.Wrap(err, apperrors.InvalidInput, "발급 개수가 허용 범위를 벗어났습니다")
	}

	var regErr *snowflake.ClockRegressionError
	if errors.As(err, &regErr) {
		deltaMs := regErr.Delta().Milliseconds()
		s.lastRegressionMs.Store(deltaMs)

		applog.WithComponentAndFields(component, applog.Fields{
			"node_id":  s.generator.NodeID(),
			"delta_ms": deltaMs,
			"error":    err,
		}).Error("시스템 시계 역행이 감지되어 ID 발급을 거부했습니다")

		return apperrors.Wrapf(err, apperrors.System, "시스템 시계가 %dms 뒤로 이동하여 ID를 발급할 수 없습니다", deltaMs)
	}

	return apperrors.Wrap(err, apperrors.Internal, "ID 발급 중 예기치 않은 오류가 발생했습니다")
}

// Health 시계 역행이 한 번이라도 관측되었으면 contract.ErrIssuerFaulted를 감싼 에러를 반환합니다.
//
// 역행 이후 시계가 회복되면 발급 자체는 다시 성공하지만, 운영자가 호스트 시계를 점검할 수 있도록
// 상태는 프로세스가 재시작될 때까지 유지됩니다.
func (s *Service) Health() error {
	if d := s.lastRegressionMs.Load(); d > 0 {
		return apperrors.Wrapf(contract.ErrIssuerFaulted, apperrors.Unavailable, "마지막 시계 역행 크기: %dms", d)
	}
	return nil
}

// NodeID 발급에 사용되는 노드 ID를 반환합니다.
func (s *Service) NodeID() int64 {
	return s.generator.NodeID()
}

// Stats 생성기의 누적 통계를 반환합니다.
func (s *Service) Stats() snowflake.Stats {
	return s.generator.Stats()
}
