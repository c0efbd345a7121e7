package log

import (
	"errors"
	"fmt"
	"os"
)

// Options Setup에 전달하는 로거 구성 값입니다. 프로필 함수(NewProductionOptions 등)로 만든 뒤 필요한 항목만 바꿔 씁니다.
type Options struct {
	// Name 로그 파일명 접두어 (<Name>.log, <Name>.critical.log, ...)
	Name string
	// Dir 로그 파일 디렉토리. 비어 있으면 ./logs
	Dir   string
	Level Level

	// 로테이션 정책. 0이면 MaxSizeMB/MaxBackups는 기본값을, MaxAge는 무기한 보관을 뜻합니다.
	MaxAge     int
	MaxSizeMB  int
	MaxBackups int

	// EnableCriticalLog ERROR 이상을 <Name>.critical.log에도 기록합니다.
	EnableCriticalLog bool
	// EnableVerboseLog DEBUG 이하를 메인 파일 대신 <Name>.verbose.log에 기록합니다.
	EnableVerboseLog bool
	EnableConsoleLog bool

	ReportCaller     bool
	CallerPathPrefix string
}

// Validate 필수 항목 누락과 음수 로테이션 값을 검사합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return errors.New("로그 파일명에 사용할 Name이 비어 있습니다")
	}

	if opts.Dir != "" {
		if fi, err := os.Stat(opts.Dir); err == nil && !fi.IsDir() {
			return fmt.Errorf("로그 디렉토리 %q가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{"MaxAge", opts.MaxAge},
		{"MaxSizeMB", opts.MaxSizeMB},
		{"MaxBackups", opts.MaxBackups},
	} {
		if f.value < 0 {
			return fmt.Errorf("%s는 음수일 수 없습니다 (값: %d)", f.name, f.value)
		}
	}

	return nil
}
