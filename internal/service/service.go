// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 공유 Context로 종료 신호를 받고 WaitGroup으로 종료 완료를 알리는 서비스입니다.
//
// Start를 호출하기 전에 호출자가 serviceStopWG.Add(1)을 수행하며, 서비스는 종료가 끝나면
// (시작하지 않고 반환하는 경우 포함) 정확히 한 번 Done을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
