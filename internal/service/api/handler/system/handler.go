// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/snowflake-server/internal/pkg/version"
	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	"github.com/darkkaiser/snowflake-server/internal/service/api/model/system"
	"github.com/darkkaiser/snowflake-server/internal/service/contract"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	healthChecker contract.IssuerHealthChecker
	nodeID        int64

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(healthChecker contract.IssuerHealthChecker, nodeID int64, buildInfo version.Info) *Handler {
	if healthChecker == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Handler{
		healthChecker: healthChecker,
		nodeID:        nodeID,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler 서버와 ID 발급 서비스의 상태를 반환합니다.
//
// 시계 역행이 관측된 이후에는 status가 unhealthy가 되지만, 모니터링 시스템이 응답 본문을
// 읽을 수 있도록 상태 코드는 항상 200입니다.
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := make(map[string]system.DependencyStatus, 1)
	if err := h.healthChecker.Health(); err != nil {
		deps[constants.DependencyIDIssuer] = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	} else {
		deps[constants.DependencyIDIssuer] = system.DependencyStatus{
			Status:  constants.HealthStatusHealthy,
			Message: constants.MsgDepStatusHealthy,
		}
	}

	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		NodeID:       h.nodeID,
		Dependencies: deps,
	})
}

// VersionHandler 서버의 빌드 정보를 반환합니다.
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	goVersion := h.buildInfo.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   goVersion,
	})
}
