// Package errors 애플리케이션 내부에서 사용하는 타입 기반 에러를 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며, Wrap으로 컨텍스트를 누적하더라도
// 원인 에러(예: *snowflake.ClockRegressionError)는 표준 errors.As로 그대로 꺼낼 수 있습니다.
//
//	id, err := generator.NextID()
//	if err != nil {
//	    return errors.Wrap(err, errors.System, "ID 발급에 실패하였습니다")
//	}
//
// # ErrorType 선택 가이드
//
//   - Internal: 애플리케이션 내부 로직 오류 (버그로 간주)
//   - System: 호스트 시계 역행, 파일 I/O 등 인프라 수준의 장애
//   - InvalidInput: 설정값 또는 요청 파라미터 검증 실패 (노드 ID 범위 초과 포함)
//   - Conflict: 상태 충돌 (이미 시작된 서비스의 재시작 등)
//   - NotFound: 요청한 리소스를 찾을 수 없음
//   - Unavailable: 서비스 일시적 사용 불가 (시계 장애 이후의 헬스체크 등)
//
// HTTP 응답 코드나 로그 레벨을 결정할 때는 가장 안쪽 AppError의 타입을 반환하는
// UnderlyingType을 사용합니다.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError ErrorType과 메시지, 원인 에러, 생성 시점의 호출 스택을 함께 담는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(defaultCallerSkip),
	}
}

func (e *AppError) Type() ErrorType { return e.errType }
func (e *AppError) Message() string { return e.message }
func (e *AppError) Stack() []StackFrame { return e.stack }
func (e *AppError) Unwrap() error { return e.cause }

// Error "[타입] 메시지" 형식의 문자열을 반환하며, 원인 에러가 있으면 ": 원인"을 덧붙입니다.
func (e *AppError) Error() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(e.errType.String())
	sb.WriteString("] ")
	sb.WriteString(e.message)
	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}
	return sb.String()
}

// Format %+v로 출력하면 에러 체인을 따라 각 단계의 메시지와 스택 트레이스를 여러 줄로 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		e.writeDetail(s)
	case verb == 'v' || verb == 's':
		io.WriteString(s, e.Error())
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *AppError) writeDetail(s fmt.State) {
	fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	// 안쪽에 다른 AppError가 있으면 스택은 그쪽에서 출력합니다.
	var inner *AppError
	if !errors.As(e.cause, &inner) {
		writeStack(s, e.stack)
	}

	if e.cause == nil {
		return
	}

	io.WriteString(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, 'v')
		return
	}
	fmt.Fprintf(s, "\t%v", e.cause)
}

func writeStack(w io.Writer, stack []StackFrame) {
	if len(stack) == 0 {
		return
	}

	io.WriteString(w, "\nStack trace:")
	for _, frame := range stack {
		fn := frame.Function
		if i := strings.LastIndexByte(fn, '/'); i >= 0 {
			fn = fn[i+1:]
		}
		fmt.Fprintf(w, "\n\t%s:%d %s", frame.File, frame.Line, fn)
	}
}

// New errType으로 분류된 새 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap err에 분류와 메시지를 덧씌웁니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

// Is 체인 안의 AppError 중 하나라도 errType이면 true를 반환합니다.
func Is(err error, errType ErrorType) bool {
	found := false
	walk(err, func(e *AppError) bool {
		found = e.errType == errType
		return !found
	})
	return found
}

// As errors.As와 같습니다. 패키지 이름이 표준 errors와 겹치는 호출부의 편의를 위해 둡니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause Unwrap을 끝까지 따라가 가장 안쪽의 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 ErrorType을 반환합니다.
// 체인에 AppError가 없거나 err이 nil이면 Unknown을 반환합니다.
//
//	err := Wrap(New(InvalidInput, "count 파라미터 오류"), Internal, "요청 처리 실패")
//	UnderlyingType(err) // InvalidInput
func UnderlyingType(err error) ErrorType {
	t := Unknown
	walk(err, func(e *AppError) bool {
		t = e.errType
		return true
	})
	return t
}

// walk 체인의 AppError마다 visit을 호출합니다. visit이 false를 반환하면 중단합니다.
func walk(err error, visit func(*AppError) bool) {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*AppError); ok && !visit(e) {
			return
		}
	}
}
