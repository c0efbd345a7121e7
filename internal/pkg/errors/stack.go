package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip runtime.Callers, captureStack, newAppError, New/Wrap 계열 함수를 건너뛰어
// 에러를 생성한 호출 지점이 첫 프레임이 되도록 합니다.
const defaultCallerSkip = 4

// StackFrame 호출 스택의 한 프레임입니다. File은 디렉토리를 제외한 파일명입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

// maxStackFrames 에러 하나에 기록하는 최대 프레임 수
const maxStackFrames = 5

// captureStack 현재 실행 위치의 스택 정보를 수집하여 반환합니다.
func captureStack(skip int) []StackFrame {
	var pc [maxStackFrames]uintptr
	n := runtime.Callers(skip, pc[:])

	if n == 0 {
		return nil
	}

	frames := make([]StackFrame, 0, n)
	iter := runtime.CallersFrames(pc[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = iter.Next()
		frames = append(frames, StackFrame{File: filepath.Base(f.File), Line: f.Line, Function: f.Function})
	}
	return frames
}
