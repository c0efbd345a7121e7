package handler

import (
	"fmt"

	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	"github.com/darkkaiser/snowflake-server/internal/service/api/httputil"
)

// NewErrInvalidCount count 파라미터가 정수가 아니거나 허용 범위를 벗어났을 때 발생하는 에러를 생성합니다.
func NewErrInvalidCount(maxBatchSize int) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgInvalidCount, maxBatchSize))
}

// NewErrInvalidID 경로로 전달된 ID를 해석할 수 없을 때 발생하는 에러를 생성합니다.
func NewErrInvalidID(raw string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgInvalidID, raw))
}

// NewErrUnsupportedFormat format 파라미터가 지원하지 않는 값일 때 발생하는 에러를 생성합니다.
func NewErrUnsupportedFormat(format string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgUnsupportedIDFormat, format))
}

// NewErrClockRegression 시계 역행으로 발급이 거부되었을 때 발생하는 에러를 생성합니다.
// 같은 요청을 나중에 재시도할 수 있으므로 503으로 응답합니다.
func NewErrClockRegression() error {
	return httputil.NewServiceUnavailableError(constants.ErrMsgClockRegression)
}
