// Package snowflake 중앙 코디네이터 없이 전역적으로 고유하고 시간 순서를 따르는 64비트 ID를 생성합니다.
//
// # ID 구조
//
// 하나의 ID는 다음과 같이 4개의 필드로 구성됩니다. (상위 비트 → 하위 비트)
//
//	| 1 bit 예약(항상 0) | 41 bit 타임스탬프 | 10 bit 노드 ID | 12 bit 시퀀스 |
//
//   - 타임스탬프: Epoch(2026-01-01T00:00:00Z) 이후 경과한 밀리초 (약 69년 표현 가능)
//   - 노드 ID: ID를 발급한 생성기 인스턴스의 식별자 (0 ~ 1023)
//   - 시퀀스: 동일 밀리초 내에서 발급된 ID를 구분하는 카운터 (0 ~ 4095)
//
// 최상위 비트는 항상 0이므로 모든 ID는 부호 있는 int64로 손실 없이 표현됩니다.
//
// # 보장 사항
//
// 하나의 Generator 인스턴스에 대해 다음이 보장됩니다:
//   - 유일성: 동시에 호출하더라도 같은 ID가 두 번 발급되지 않습니다.
//   - 단조 증가: 시계가 앞으로만 흐르는 한, 나중에 발급된 ID가 항상 더 큽니다.
//   - 처리량 상한: 노드당 밀리초마다 최대 4096개 (초당 4,096,000개)
//
// 서로 다른 인스턴스 간의 유일성은 노드 ID 분할에만 의존합니다.
// 동일한 노드 ID를 가진 두 인스턴스가 동시에 동작하면 ID가 충돌할 수 있으며,
// 이는 생성기가 아닌 배포 설정(노드 ID 할당)으로 방지해야 합니다.
//
// # 시계 이상 처리
//
// 시퀀스가 소진되면(같은 밀리초에 4096개 발급) 다음 밀리초가 될 때까지 시계를 다시 읽으며 대기합니다.
// 반대로 시계가 뒤로 이동한 것이 감지되면 ClockRegressionError를 즉시 반환하며, 스스로 복구를 시도하지 않습니다.
//
// # 사용법
//
//	g, err := snowflake.New(7)
//	if err != nil {
//	    return err // *snowflake.ConfigurationError
//	}
//
//	id, err := g.NextID()
//	if err != nil {
//	    var regression *snowflake.ClockRegressionError
//	    if errors.As(err, &regression) {
//	        // 호스트 시계 장애: 요청 실패 처리 또는 프로세스 종료를 결정합니다.
//	    }
//	}
//
//	fmt.Println(id.String(), id.Base62(), id.NodeID(), id.Time())
package snowflake
