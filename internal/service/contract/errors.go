package contract

import (
	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
)

var (
	// ErrIssuerFaulted 시계 역행이 관측되어 발급 서비스가 비정상 상태로 전환되었을 때 Health가 감싸서 반환하는 에러입니다.
	ErrIssuerFaulted = apperrors.New(apperrors.Unavailable, "시스템 시계 역행이 감지되어 ID 발급 서비스가 비정상 상태입니다")
)
