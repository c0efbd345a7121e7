// Package reporter ID 발급 통계를 주기적으로 로그에 기록하는 서비스를 제공합니다.
package reporter

import (
	"context"
	"sync"

	"github.com/darkkaiser/snowflake-server/internal/config"
	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
	"github.com/darkkaiser/snowflake-server/internal/service/contract"
	"github.com/darkkaiser/snowflake-server/pkg/cronx"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/darkkaiser/snowflake-server/pkg/snowflake"
	"github.com/robfig/cron/v3"
)

// component Reporter 서비스의 로깅용 컴포넌트 이름
const component = "reporter"

// Reporter 설정된 Cron 주기마다 직전 리포트 이후 증가한 발급 통계를 로그로 남기는 서비스입니다.
type Reporter struct {
	reportConfig config.ReportConfig

	statsProvider contract.StatsProvider

	cron *cron.Cron

	// last 직전 리포트 시점의 누적 통계 스냅샷입니다.
	last   snowflake.Stats
	lastMu sync.Mutex

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Reporter 서비스 인스턴스를 생성합니다.
func NewService(reportConfig config.ReportConfig, statsProvider contract.StatsProvider) *Reporter {
	if statsProvider == nil {
		panic("StatsProvider는 필수입니다")
	}

	return &Reporter{
		reportConfig: reportConfig,

		statsProvider: statsProvider,
	}
}

// Start 리포트 작업을 Cron 엔진에 등록하고 스케줄러를 시작합니다.
//
// 리포트가 비활성화되어 있으면 아무 작업도 등록하지 않고 즉시 serviceStopWG.Done()을 호출합니다.
func (r *Reporter) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Reporter 서비스 초기화 프로세스를 시작합니다")

	if !r.reportConfig.Enabled {
		serviceStopWG.Done()
		applog.WithComponent(component).Info("통계 리포트가 비활성화되어 있어 Reporter 서비스를 시작하지 않습니다")
		return nil
	}

	if r.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Reporter 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	r.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := r.cron.AddFunc(r.reportConfig.TimeSpec, r.report); err != nil {
		r.cron = nil
		serviceStopWG.Done()
		return apperrors.Wrapf(err, apperrors.InvalidInput, "통계 리포트 스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec: %s)", r.reportConfig.TimeSpec)
	}

	// 첫 리포트는 서비스 시작 이후 증가분만 보고합니다.
	r.lastMu.Lock()
	r.last = r.statsProvider.Stats()
	r.lastMu.Unlock()

	r.cron.Start()
	r.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": r.reportConfig.TimeSpec,
	}).Info("서비스 시작 완료: Reporter 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		r.stop()
	}()

	return nil
}

// stop 실행 중인 스케줄러를 중지하고, 진행 중인 리포트가 끝날 때까지 기다립니다.
func (r *Reporter) stop() {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	if !r.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Reporter 서비스 중지 시그널을 수신했습니다")

	if r.cron != nil {
		<-r.cron.Stop().Done()
	}

	r.cron = nil
	r.running = false

	applog.WithComponent(component).Info("Reporter 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// report 직전 리포트 이후의 통계 증가분을 계산하여 로그로 남깁니다.
// 해당 구간에 시계 역행이 있었다면 WARN 레벨로 기록합니다.
func (r *Reporter) report() {
	current := r.statsProvider.Stats()

	r.lastMu.Lock()
	delta := snowflake.Stats{
		Generated:         current.Generated - r.last.Generated,
		SequenceExhausted: current.SequenceExhausted - r.last.SequenceExhausted,
		ClockRegressions:  current.ClockRegressions - r.last.ClockRegressions,
	}
	r.last = current
	r.lastMu.Unlock()

	entry := applog.WithComponentAndFields(component, applog.Fields{
		"node_id":            r.statsProvider.NodeID(),
		"generated":          delta.Generated,
		"sequence_exhausted": delta.SequenceExhausted,
		"clock_regressions":  delta.ClockRegressions,
		"total_generated":    current.Generated,
	})

	if delta.ClockRegressions > 0 {
		entry.Warn("ID 발급 통계: 리포트 구간 중 시계 역행이 감지되었습니다")
		return
	}
	entry.Info("ID 발급 통계")
}
