package middleware

import (
	"fmt"
	"runtime"

	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const stackBufferSize = 4 << 10

// PanicRecovery 핸들러 체인에서 발생한 panic을 에러로 바꿔 Echo 에러 핸들러(500 응답)로 넘기는 미들웨어를 반환합니다.
// 고루틴 스택은 최대 4KB까지 로그에 남깁니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					c.Error(recoveredError(c, r))
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func recoveredError(c echo.Context, r any) error {
	err, ok := r.(error)
	if !ok {
		err = apperrors.New(apperrors.Internal, fmt.Sprint(r))
	}

	buf := make([]byte, stackBufferSize)
	buf = buf[:runtime.Stack(buf, false)]

	fields := applog.Fields{
		"error": err,
		"stack": string(buf),
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		fields["request_id"] = id
	}
	applog.WithComponentAndFields(constants.ComponentMiddleware, fields).Error(constants.LogMsgPanicRecovered)

	return err
}
