package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HTTPLogger 요청 하나가 끝날 때마다 접근 로그를 한 줄 남기는 미들웨어를 반환합니다.
//
// 핸들러 에러는 여기서 c.Error로 응답까지 마무리하므로 status 필드에는 클라이언트가 실제로 받은 코드가 기록됩니다.
// 5xx는 ERROR, 4xx는 WARN, 나머지는 INFO 레벨입니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			logAccess(c, time.Since(start))

			return nil
		}
	}
}

func logAccess(c echo.Context, latency time.Duration) {
	req, res := c.Request(), c.Response()

	bytesIn := req.Header.Get(echo.HeaderContentLength)
	if bytesIn == "" {
		bytesIn = "0"
	}

	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	entry := applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
		"method":        req.Method,
		"path":          path,
		"uri":           req.RequestURI,
		"host":          req.Host,
		"protocol":      req.Proto,
		"remote_ip":     c.RealIP(),
		"user_agent":    req.UserAgent(),
		"status":        res.Status,
		"bytes_in":      bytesIn,
		"bytes_out":     strconv.FormatInt(res.Size, 10),
		"latency":       strconv.FormatInt(latency.Microseconds(), 10),
		"latency_human": latency.String(),
		"request_id":    res.Header().Get(echo.HeaderXRequestID),
	})

	switch {
	case res.Status >= http.StatusInternalServerError:
		entry.Error(constants.LogMsgHTTPAccess)
	case res.Status >= http.StatusBadRequest:
		entry.Warn(constants.LogMsgHTTPAccess)
	default:
		entry.Info(constants.LogMsgHTTPAccess)
	}
}
