// Package service 애플리케이션을 구성하는 장기 실행 서비스들의 공통 생명주기 규약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 별도의 고루틴에서 실행되며 Context 취소로 종료되는 서비스입니다.
type Service interface {
	// Start 서비스를 시작합니다.
	//
	// 호출 측은 Start 호출 전에 serviceStopWG.Add(1)을 수행해야 하며,
	// 서비스는 완전히 종료된 시점(또는 시작에 실패한 시점)에 serviceStopWG.Done()을 정확히 한 번 호출합니다.
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
