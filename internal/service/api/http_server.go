package api

import (
	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	"github.com/darkkaiser/snowflake-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/snowflake-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// RequestsPerSecond, Burst 클라이언트 IP별 요청 제한
	RequestsPerSecond int
	Burst             int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery: 가장 먼저 적용되어야 다른 미들웨어의 panic도 복구할 수 있습니다.
//  2. RequestID: 로깅 미들웨어보다 먼저 적용되어야 로그에 request_id가 포함됩니다.
//  3. Server 헤더 제거
//  4. HTTPLogger: RateLimiting 앞에 두어 429 응답도 기록합니다.
//  5. RateLimiting: IP 기반 요청 제한
//  6. BodyLimit: 요청 본문 크기 제한 (초과 시 413)
//  7. Secure: X-Content-Type-Options 등 보안 헤더
//
// 라우트는 포함되지 않으며, 반환된 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimiting(cfg.RequestsPerSecond, cfg.Burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.Secure())

	return e
}
