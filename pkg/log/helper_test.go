package log

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// resetForTest Setup이 바꿔 놓은 패키지 상태와 logrus 전역 설정을 기본값으로 되돌립니다.
func resetForTest() {
	setupOnce, globalCloser, globalSetupErr = sync.Once{}, nil, nil

	std := logrus.StandardLogger()
	std.ReplaceHooks(logrus.LevelHooks{})
	std.SetOutput(os.Stdout)
	std.SetLevel(logrus.InfoLevel)
	std.SetReportCaller(false)
	std.SetFormatter(new(logrus.TextFormatter))
}
