// Package v1 ID 발급 API의 v1 버전 라우트를 정의합니다.
//
// 엔드포인트:
//   - POST /api/v1/ids       - ID 발급 (count 쿼리 파라미터로 개수 지정)
//   - GET  /api/v1/ids/:id   - ID 분해 (format 쿼리 파라미터로 decimal/base62 지정)
package v1

import (
	"github.com/darkkaiser/snowflake-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.POST("/ids", h.IssueIDsHandler)
	v1Group.GET("/ids/:id", h.DecodeIDHandler)
}
