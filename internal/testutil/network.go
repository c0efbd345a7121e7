// Package testutil 여러 패키지의 테스트에서 공통으로 사용하는 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"time"
)

// GetFreePort 루프백 주소에서 임시로 리스너를 열어 OS가 배정한 빈 포트 번호를 반환합니다.
//
// 리스너는 반환 전에 닫히므로, 드물게 다른 프로세스가 같은 포트를 먼저 점유할 수 있습니다.
func GetFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("빈 포트 확보 실패: %w", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForServer port로 TCP 연결이 성공할 때까지 주기적으로 재시도합니다.
func WaitForServer(port int, timeout time.Duration) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	deadline := time.After(timeout)
	for {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			return conn.Close()
		}

		select {
		case <-deadline:
			return fmt.Errorf("%s에서 %v 동안 서버 응답이 없습니다: %w", addr, timeout, err)
		case <-ticker.C:
		}
	}
}
