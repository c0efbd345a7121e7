package snowflake

import "time"

// Clock 생성기가 참조하는 밀리초 단위 벽시계입니다.
//
// 테스트에서는 시각을 고정하거나 임의로 되돌려 시퀀스 소진, 시계 역행 상황을 재현할 수 있습니다.
type Clock interface {
	// NowMilli 현재 시각을 Unix 밀리초로 반환합니다.
	NowMilli() int64
}

// ClockFunc 일반 함수를 Clock으로 사용할 수 있게 해주는 어댑터입니다.
type ClockFunc func() int64

// NowMilli f()를 호출합니다.
func (f ClockFunc) NowMilli() int64 {
	return f()
}

type systemClock struct{}

func (systemClock) NowMilli() int64 {
	return time.Now().UnixMilli()
}

// SystemClock 호스트의 벽시계(time.Now)를 사용하는 Clock을 반환합니다.
func SystemClock() Clock {
	return systemClock{}
}
