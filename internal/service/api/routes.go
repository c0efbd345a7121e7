package api

import (
	"github.com/darkkaiser/snowflake-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes API 서비스의 전역 라우트(/health, /version)를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}
