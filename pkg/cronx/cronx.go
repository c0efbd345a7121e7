// Package cronx 애플리케이션 전역에서 사용하는 Cron 표현식 규칙을 정의합니다.
package cronx

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 애플리케이션의 표준 Cron 표현식 파서를 반환합니다.
//
// 초 단위를 포함하는 6필드 확장 형식과 Descriptor(@every, @daily 등)를 지원하며,
// 표준 5필드 형식은 지원하지 않습니다.
//
//   - "0 */5 * * * *" : 매 5분 0초마다 실행
//   - "@every 1m"     : 1분 간격으로 실행
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate spec이 StandardParser로 해석 가능한 표현식인지 검사합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(strings.TrimSpace(spec)); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
