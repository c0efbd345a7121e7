package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/snowflake-server/internal/config"
	"github.com/darkkaiser/snowflake-server/internal/pkg/version"
	"github.com/darkkaiser/snowflake-server/internal/service"
	"github.com/darkkaiser/snowflake-server/internal/service/api"
	"github.com/darkkaiser/snowflake-server/internal/service/idgen"
	"github.com/darkkaiser/snowflake-server/internal/service/reporter"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

const (
	banner = `
  ____                      __ _       _
 / ___| _ __   _____      _/ _| | __ _| | _____
 \___ \| '_ \ / _ \ \ /\ / / |_| |/ _' | |/ / _ \
  ___) | | | | (_) \ V  V /|  _| | (_| |   <  __/
 |____/|_| |_|\___/ \_/\_/ |_| |_|\__,_|_|\_\___|
                                              %s
                                   developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성하고 초기화한다.
	idgenService, err := idgen.NewService(appConfig)
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("ID 생성기 초기화 실패")

		appLogCloser.Close()
		os.Exit(1)
	}
	reporterService := reporter.NewService(appConfig.Report, idgenService)
	apiService := api.NewService(appConfig, idgenService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{idgenService, reporterService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponentAndFields("main", log.Fields{
		"node_id": idgenService.NodeID(),
		"port":    appConfig.API.ListenPort,
	}).Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 시그널 수신: 모든 서비스를 중지합니다")
	cancel()
	serviceStopWG.Wait()
}
