// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
package handler

import (
	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	"github.com/darkkaiser/snowflake-server/internal/service/contract"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler v1 API 요청을 검증하고 ID 발급 서비스에 연결하는 핸들러입니다.
type Handler struct {
	issuer contract.IDIssuer

	// maxBatchSize 한 번의 요청으로 발급할 수 있는 최대 ID 개수
	maxBatchSize int
}

// New Handler 인스턴스를 생성합니다.
func New(issuer contract.IDIssuer, maxBatchSize int) *Handler {
	if issuer == nil {
		panic(constants.PanicMsgIDIssuerRequired)
	}
	if maxBatchSize < 1 {
		maxBatchSize = 1
	}

	return &Handler{
		issuer:       issuer,
		maxBatchSize: maxBatchSize,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
