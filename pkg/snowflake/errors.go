package snowflake

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidBatchSize NextIDs에 [1, MaxBatchSize] 범위를 벗어난 개수가 요청되었을 때 반환됩니다.
	ErrInvalidBatchSize = errors.New("snowflake: 배치 크기는 1 이상 4096 이하여야 합니다")

	// ErrTimestampOverflow 현재 시각이 타임스탬프 필드로 표현할 수 있는 범위(Epoch 이후 약 69년)를 넘었을 때 반환됩니다.
	// 그대로 발급하면 부호 비트가 설정되므로 발급을 거부합니다.
	ErrTimestampOverflow = errors.New("snowflake: 현재 시각이 타임스탬프 필드의 표현 범위를 벗어났습니다")

	// ErrInvalidID 문자열을 ID로 해석할 수 없을 때 반환됩니다.
	ErrInvalidID = errors.New("snowflake: 올바르지 않은 ID 형식입니다")
)

// ConfigurationError 생성기 또는 ID 필드에 허용 범위를 벗어난 값이 지정되었을 때 반환됩니다.
//
// 생성 시점(배포 설정)의 오류이므로 재시도로 해결되지 않으며, 호출 측에서는 기동을 중단해야 합니다.
type ConfigurationError struct {
	Field string // 범위를 벗어난 필드 이름 (예: "node_id")
	Value int64  // 지정된 값
	Min   int64  // 허용 최솟값
	Max   int64  // 허용 최댓값
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("snowflake: %s 값(%d)이 허용 범위 [%d, %d]를 벗어났습니다", e.Field, e.Value, e.Min, e.Max)
}

// ClockRegressionError 호스트 시계가 직전 ID 발급 시각보다 과거로 이동했을 때 반환됩니다.
//
// 이 상황에서 ID를 계속 발급하면 단조 증가 보장이 깨지거나 중복 ID가 발생할 수 있으므로
// 생성기는 재시도나 대기 없이 즉시 실패합니다.
type ClockRegressionError struct {
	Last int64 // 마지막으로 ID를 발급한 시각 (Unix 밀리초)
	Now  int64 // 이번 호출에서 관측된 시각 (Unix 밀리초)
}

// Delta 시계가 뒤로 이동한 크기를 반환합니다.
func (e *ClockRegressionError) Delta() time.Duration {
	return time.Duration(e.Last-e.Now) * time.Millisecond
}

func (e *ClockRegressionError) Error() string {
	return fmt.Sprintf("snowflake: 시스템 시계가 %dms 뒤로 이동했습니다 (last=%d, now=%d)", e.Last-e.Now, e.Last, e.Now)
}
