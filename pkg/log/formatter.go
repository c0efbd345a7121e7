package log

import "github.com/sirupsen/logrus"

// discardFormatter 기본 출력으로는 아무것도 쓰지 않는 포맷터입니다.
//
// 실제 기록은 hook이 채널별 포맷터로 수행하며, logrus가 버려질 출력을 위해
// 엔트리를 직렬화하지 않도록 기본 포맷터를 이것으로 교체합니다.
type discardFormatter struct{}

func (discardFormatter) Format(*logrus.Entry) ([]byte, error) {
	return nil, nil
}
