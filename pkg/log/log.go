// Package log logrus 기반의 전역 로깅 설정과 헬퍼를 제공합니다.
//
// Setup으로 한 번 초기화한 뒤에는 logrus 표준 로거를 그대로 사용하며,
// 모든 로그에는 WithComponent로 발생 위치(component 필드)를 남깁니다.
//
//	closer, err := log.Setup(log.NewProductionOptions("snowflake-server"))
//	if err != nil {
//	    ...
//	}
//	defer closer.Close()
//
//	log.WithComponent("idgen").WithField("node_id", 7).Info("ID 생성기 준비 완료")
package log

import (
	"github.com/sirupsen/logrus"
)

// 공통 필드 키
const (
	FieldComponent = "component"
	FieldError     = "error"
)

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(FieldComponent, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// fields에 component 키가 있더라도 인자로 전달된 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields[FieldComponent] = component
	return logrus.WithFields(newFields)
}

// SetDebugMode Debug 모드에 따라 로그 레벨을 설정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}
