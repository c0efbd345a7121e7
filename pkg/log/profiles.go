package log

// callerPathPrefix 호출 위치 출력 시 생략할 모듈 경로
const callerPathPrefix = "github.com/darkkaiser/snowflake-server"

// NewProductionOptions 운영 환경용 설정을 반환합니다.
// 콘솔 출력 없이 파일로만 기록하며, ERROR 이상은 critical 파일에 따로 모아 시계 역행 같은 장애를 빠르게 찾을 수 있게 합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:              appName,
		Level:             InfoLevel,
		MaxAge:            30,
		MaxSizeMB:         100,
		MaxBackups:        20,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		ReportCaller:      true,
		CallerPathPrefix:  callerPathPrefix,
	}
}

// NewDevelopmentOptions 개발 환경용 설정을 반환합니다. 모든 레벨을 콘솔에도 출력하고 파일은 짧게 보관합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            TraceLevel,
		MaxAge:           1,
		MaxSizeMB:        50,
		MaxBackups:       5,
		EnableConsoleLog: true,
		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}
