// Package config 애플리케이션 설정을 로드하고 검증합니다.
//
// 설정은 다음 순서로 병합되며, 뒤에 오는 소스가 앞의 값을 덮어씁니다.
//
//  1. 코드에 정의된 기본값 (newDefaultConfig)
//  2. JSON 설정 파일 (기본: snowflake-server.json)
//  3. SNOWFLAKE_ 접두사를 가진 환경 변수 (예: SNOWFLAKE_GENERATOR__NODE_ID=7)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
	"github.com/darkkaiser/snowflake-server/pkg/snowflake"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "snowflake-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	EnvPrefix = "SNOWFLAKE_"

	// DefaultListenPort HTTP API 서버의 기본 포트
	DefaultListenPort = 2080

	// DefaultMaxBatchSize 한 번의 API 요청으로 발급할 수 있는 기본 최대 ID 개수
	DefaultMaxBatchSize = 1000

	// DefaultRequestsPerSecond, DefaultBurst IP별 요청 제한의 기본값
	DefaultRequestsPerSecond = 200
	DefaultBurst             = 400

	// DefaultReportTimeSpec 생성기 통계를 로그로 남기는 기본 주기
	DefaultReportTimeSpec = "@every 1m"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Generator GeneratorConfig `json:"generator"`
	API       APIConfig       `json:"api"`
	Report    ReportConfig    `json:"report"`
}

// GeneratorConfig ID 생성기 설정
type GeneratorConfig struct {
	// NodeID 이 프로세스가 사용할 노드 ID입니다.
	// 동시에 동작하는 모든 인스턴스가 서로 다른 값을 가져야 하며, 생략하면 무작위로 할당됩니다.
	NodeID *int64 `json:"node_id,omitempty" validate:"omitnil,min=0,max=1023"`
}

// HasNodeID 노드 ID가 명시적으로 설정되었는지 여부를 반환합니다.
func (c *GeneratorConfig) HasNodeID() bool {
	return c.NodeID != nil
}

// APIConfig ID 발급 HTTP API 서버 설정
type APIConfig struct {
	ListenPort   int             `json:"listen_port" validate:"min=1,max=65535"`
	MaxBatchSize int             `json:"max_batch_size" validate:"min=1,max=4096"`
	RateLimit    RateLimitConfig `json:"rate_limit"`
}

// RateLimitConfig 클라이언트 IP별 요청 제한 설정
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"min=1"`
}

// ReportConfig 생성기 통계 리포트 설정
type ReportConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
}

// newDefaultConfig 설정 파일과 환경 변수가 덮어쓰기 전의 기본값을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		API: APIConfig{
			ListenPort:   DefaultListenPort,
			MaxBatchSize: DefaultMaxBatchSize,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRequestsPerSecond,
				Burst:             DefaultBurst,
			},
		},
		Report: ReportConfig{
			Enabled:  true,
			TimeSpec: DefaultReportTimeSpec,
		},
	}
}

// validate 설정 로드 직후 각 항목의 값이 허용 범위 안에 있는지 검증합니다.
func (c *AppConfig) validate() error {
	return checkStruct(newValidator(), c)
}

// VerifyRecommendations 강제 사항은 아니지만 운영 안정성을 위해 권장되는 설정 준수 여부를 진단하고
// 경고 메시지 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if !c.Generator.HasNodeID() {
		warnings = append(warnings, fmt.Sprintf("노드 ID(generator.node_id)가 설정되지 않아 0~%d 범위에서 무작위로 할당됩니다. 여러 인스턴스를 동시에 운영하는 경우 ID가 충돌할 수 있으므로 인스턴스마다 고유한 값을 지정하세요", snowflake.MaxNodeID))
	}

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.API.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.ListenPort))
	}

	return warnings
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (구조체에 없는 필드가 있으면 실패)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &appConfig,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 설정 키 경로로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)로 바뀝니다.
//
//	SNOWFLAKE_GENERATOR__NODE_ID -> generator.node_id
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
