package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	"github.com/darkkaiser/snowflake-server/internal/service/api/httputil"
	"github.com/darkkaiser/snowflake-server/internal/service/api/v1/model"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/darkkaiser/snowflake-server/pkg/snowflake"
	"github.com/labstack/echo/v4"
)

// timeLayout 분해 결과의 time 필드 형식 (UTC, 밀리초 포함 RFC3339)
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// IssueIDsHandler ID를 발급합니다.
//
//	POST /api/v1/ids?count=N
//
// count를 생략하면 1개를 발급하며, 1 이상 maxBatchSize 이하만 허용합니다.
// 시계 역행으로 발급이 거부되면 503으로 응답하고 재시도는 클라이언트에 맡깁니다.
func (h *Handler) IssueIDsHandler(c echo.Context) error {
	count := 1
	if raw := strings.TrimSpace(c.QueryParam(constants.QueryParamCount)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.maxBatchSize {
			return NewErrInvalidCount(h.maxBatchSize)
		}
		count = n
	}

	ids, err := h.issuer.NextBatch(count)
	if err != nil {
		return h.mapIssueError(c, err)
	}

	resp := model.IssueResponse{
		NodeID: h.issuer.NodeID(),
		IDs:    make([]string, len(ids)),
	}
	for i, id := range ids {
		resp.IDs[i] = id.String()
	}

	h.log(c).WithFields(applog.Fields{
		"count": count,
	}).Debug("ID 발급 완료")

	return c.JSON(http.StatusOK, resp)
}

// mapIssueError 발급 서비스의 에러를 HTTP 에러로 변환합니다.
func (h *Handler) mapIssueError(c echo.Context, err error) error {
	var regErr *snowflake.ClockRegressionError
	switch {
	case errors.As(err, &regErr):
		c.Response().Header().Set(constants.RetryAfter, "1")
		return NewErrClockRegression()

	case apperrors.Is(err, apperrors.InvalidInput):
		return NewErrInvalidCount(h.maxBatchSize)

	default:
		h.log(c).WithField(applog.FieldError, err).Error("ID 발급 중 예기치 않은 오류가 발생했습니다")
		return httputil.NewInternalServerError(constants.ErrMsgInternalServer)
	}
}

// DecodeIDHandler ID를 구성 필드로 분해합니다.
//
//	GET /api/v1/ids/:id?format=decimal|base62
//
// format을 생략하면 10진수로 해석합니다.
func (h *Handler) DecodeIDHandler(c echo.Context) error {
	raw := c.Param(constants.PathParamID)

	var (
		id  snowflake.ID
		err error
	)
	switch format := strings.ToLower(c.QueryParam(constants.QueryParamFormat)); format {
	case "", constants.FormatDecimal:
		id, err = snowflake.ParseString(raw)
	case constants.FormatBase62:
		id, err = snowflake.ParseBase62(raw)
	default:
		return NewErrUnsupportedFormat(format)
	}
	if err != nil {
		return NewErrInvalidID(raw)
	}

	parts := id.Components()

	return c.JSON(http.StatusOK, model.DecodeResponse{
		ID:        id.String(),
		Base62:    id.Base62(),
		Timestamp: parts.Timestamp,
		UnixMilli: id.UnixMilli(),
		Time:      id.Time().UTC().Format(timeLayout),
		NodeID:    parts.NodeID,
		Sequence:  parts.Sequence,
	})
}
