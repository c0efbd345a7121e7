package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (호스트 시계, 파일, 네트워크 등)
	System

	// InvalidInput 잘못된 입력값 (설정값 또는 요청 파라미터 검증 실패)
	InvalidInput

	// Conflict 리소스 충돌 (서비스 중복 시작 등)
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	InvalidInput: "InvalidInput",
	Conflict:     "Conflict",
	NotFound:     "NotFound",
	Unavailable:  "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
