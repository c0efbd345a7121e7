package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name         string
		panicPayload any
		requestID    string
		wantError    string
	}{
		{name: "문자열 패닉", panicPayload: "치명적인 오류 발생", wantError: "치명적인 오류 발생"},
		{name: "에러 패닉", panicPayload: errors.New("시퀀스 상태 손상"), wantError: "시퀀스 상태 손상"},
		{name: "Request ID 포함", panicPayload: "x", requestID: "req-123", wantError: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewGlobal()
			defer hook.Reset()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.requestID != "" {
				c.Response().Header().Set(echo.HeaderXRequestID, tt.requestID)
			}

			h := PanicRecovery()(func(echo.Context) error {
				panic(tt.panicPayload)
			})

			require.NotPanics(t, func() { _ = h(c) })
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var entry *logrus.Entry
			for _, en := range hook.AllEntries() {
				if en.Data["component"] == constants.ComponentMiddleware && en.Level == logrus.ErrorLevel {
					entry = en
				}
			}
			require.NotNil(t, entry, "패닉 복구 로그가 기록되어야 합니다")
			assert.Contains(t, entry.Data["error"].(error).Error(), tt.wantError)
			assert.NotEmpty(t, entry.Data["stack"])
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, entry.Data["request_id"])
			} else {
				assert.NotContains(t, entry.Data, "request_id")
			}
		})
	}
}

func TestPanicRecovery_NoPanicPassesThrough(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
