package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/darkkaiser/snowflake-server/internal/config"
	"github.com/darkkaiser/snowflake-server/internal/pkg/version"
	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	"github.com/darkkaiser/snowflake-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/snowflake-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/snowflake-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/snowflake-server/internal/service/contract"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Issuer API 서비스가 사용하는 ID 발급 서비스입니다.
type Issuer interface {
	contract.IDIssuer
	contract.IssuerHealthChecker
}

// Service ID 발급 HTTP API 서버의 생명주기를 관리하는 서비스입니다.
//
// 서비스는 고루틴으로 실행되며 context 취소로 종료됩니다.
// 종료 시에는 처리 중인 요청을 최대 5초간 기다립니다.
type Service struct {
	appConfig *config.AppConfig

	issuer Issuer

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, issuer Issuer, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if issuer == nil {
		panic(constants.PanicMsgIDIssuerRequired)
	}

	return &Service{
		appConfig: appConfig,

		issuer: issuer,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.issuer, s.issuer.NodeID(), s.buildInfo)
	v1Handler := v1handler.New(s.issuer, s.appConfig.API.MaxBatchSize)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:             s.appConfig.Debug,
		RequestsPerSecond: s.appConfig.API.RateLimit.RequestsPerSecond,
		Burst:             s.appConfig.API.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer HTTP 서버를 시작하고, 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.API.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
// http.ErrServerClosed는 Graceful Shutdown의 정상 결과입니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호(또는 서버 조기 종료)를 기다린 뒤 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우 Shutdown 없이 상태만 정리합니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
