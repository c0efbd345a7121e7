package log

import "github.com/sirupsen/logrus"

// 호출부가 logrus를 직접 import하지 않도록 자주 쓰는 타입과 레벨을 다시 내보냅니다.
type (
	Level     = logrus.Level
	Fields    = logrus.Fields
	Entry     = logrus.Entry
	Logger    = logrus.Logger
	Formatter = logrus.Formatter
)

// 레벨 상수. 이 서버에서는 시계 역행이 ERROR, 노드 ID 무작위 할당이 WARN에 해당합니다.
const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

var AllLevels = logrus.AllLevels
