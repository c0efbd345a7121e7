package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 기본 확장자
	fileExt = "log"

	// 로그 저장 경로가 지정되지 않았을 때 사용하는 디렉토리
	defaultDir = "logs"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100 // 로그 파일 하나당 최대 크기 (단위: MB)
	defaultMaxBackups = 20  // 로테이션 된 로그 파일의 최대 보관 개수
)

var (
	// Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 초기화 결과입니다. Setup 재호출 시 동일한 값을 그대로 반환합니다.
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화하고 설정된 옵션에 따라 파일/콘솔 출력을 구성합니다.
//
// 주의:
//   - main 함수 도입부에서 호출해야 합니다. 두 번째 이후의 호출은 최초 호출의 결과를 그대로 반환합니다.
//   - 반환된 Closer는 반드시 defer를 통해 닫아야 버퍼에 남은 로그가 유실되지 않습니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 실제 포맷팅은 hook에서 수행하므로 기본 출력 경로의 포맷팅 비용을 없앱니다.
	logrus.SetFormatter(discardFormatter{})
	logrus.SetOutput(io.Discard)

	logDir := opts.Dir
	if logDir == "" {
		logDir = defaultDir
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	newWriter := func(suffix string) *lumberjack.Logger {
		return newRotatingWriter(logDir, opts, suffix)
	}

	h := &hook{
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}

	mainLogger := newWriter("")
	h.mainWriter = mainLogger
	closers := []io.Closer{mainLogger}

	if opts.EnableCriticalLog {
		criticalLogger := newWriter("critical")
		h.criticalWriter = criticalLogger
		closers = append(closers, criticalLogger)
	}
	if opts.EnableVerboseLog {
		verboseLogger := newWriter("verbose")
		h.verboseWriter = verboseLogger
		closers = append(closers, verboseLogger)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그로 os.Exit가 호출되기 직전에 버퍼를 디스크에 기록합니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// newRotatingWriter opts의 로테이션 정책을 따르는 lumberjack 로거를 생성합니다.
// suffix가 비어 있으면 메인 로그 파일(<name>.log), 아니면 <name>.<suffix>.log 파일을 사용합니다.
func newRotatingWriter(dir string, opts Options, suffix string) *lumberjack.Logger {
	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	name := opts.Name + "." + fileExt
	if suffix != "" {
		name = opts.Name + "." + suffix + "." + fileExt
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   false,
		LocalTime:  true,
	}
}

// newTextFormatter 파일/콘솔 출력에 사용할 포맷터를 생성합니다.
func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}
