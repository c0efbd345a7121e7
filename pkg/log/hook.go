package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 하나의 로그 이벤트를 여러 출력 채널로 분배합니다.
//
//   - ERROR 이상: critical + main
//   - INFO, WARN: main
//   - DEBUG 이하: verbose (main에는 기록하지 않음)
//   - console: 레벨과 관계없이 모두 기록
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex // 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어
	closed bool
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 이벤트를 포맷팅한 뒤 레벨에 맞는 Writer로 기록합니다.
// 한 채널의 쓰기 실패가 다른 채널의 기록을 막지 않으며, 첫 번째 에러만 반환합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, channel string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 파일 쓰기 실패: %v\n", channel, err)
		}
	}

	if entry.Level >= DebugLevel {
		write(h.verboseWriter, "Verbose")
		return firstErr
	}

	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "Critical")
	}
	write(h.mainWriter, "Main")

	return firstErr
}

// Close 이후의 모든 로그 기록 요청을 무시하도록 Hook을 종료 상태로 전환합니다.
// 진행 중인 Fire 호출이 모두 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
