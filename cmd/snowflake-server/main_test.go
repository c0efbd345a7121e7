package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/snowflake-server/internal/config"
	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
	"github.com/darkkaiser/snowflake-server/internal/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 메타데이터 및 상수 검증 (Metadata & Constants Validation)
// =============================================================================

// TestAppMetadata는 애플리케이션의 기본 메타데이터 설정이 올바른지 검증합니다.
func TestAppMetadata(t *testing.T) {
	t.Parallel()

	t.Run("AppVersion 검증", func(t *testing.T) {
		t.Parallel()
		assert.NotEmpty(t, version.Version(), "애플리케이션 버전(Version)은 비어있을 수 없습니다")
	})

	t.Run("AppName 검증", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "snowflake-server", config.AppName)
		assert.NotContains(t, config.AppName, " ", "애플리케이션 이름에는 공백이 포함될 수 없습니다")
	})

	t.Run("ConfigFileName 검증", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "snowflake-server.json", config.DefaultFilename)
	})
}

// =============================================================================
// 배너 검증 (Banner Validation)
// =============================================================================

// TestBanner는 서버 시작 시 출력되는 배너의 형식과 내용이 올바른지 검증합니다.
func TestBanner(t *testing.T) {
	t.Parallel()

	t.Run("템플릿 형식 검증", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, banner, "%s", "배너 템플릿에는 버전 포맷팅을 위한 '%s'가 포함되어야 합니다")
		assert.Contains(t, banner, "DarkKaiser")
	})

	t.Run("출력 포맷팅 검증", func(t *testing.T) {
		t.Parallel()
		v := version.Version()
		output := fmt.Sprintf(banner, v)
		assert.Contains(t, output, v)
		assert.NotContains(t, output, "%s", "최종 출력된 배너에는 포맷 지정자가 남아있지 않아야 합니다")
	})
}

// =============================================================================
// 설정 로드 통합 테스트 (Configuration Loading Integration Test)
// =============================================================================

// TestLoadAppConfig는 설정 파일 로드 로직을 Table-Driven 방식으로 검증합니다.
func TestLoadAppConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fileContent string
		wantErrType apperrors.ErrorType
		wantErr     bool
		validate    func(*testing.T, *config.AppConfig)
	}{
		{
			name: "Success_ValidConfig",
			fileContent: `{
				"debug": true,
				"generator": { "node_id": 17 },
				"api": { "listen_port": 18080, "max_batch_size": 100 },
				"report": { "enabled": false }
			}`,
			validate: func(t *testing.T, c *config.AppConfig) {
				assert.True(t, c.Debug)
				require.True(t, c.Generator.HasNodeID())
				assert.Equal(t, int64(17), *c.Generator.NodeID)
				assert.Equal(t, 18080, c.API.ListenPort)
				assert.Empty(t, c.VerifyRecommendations())
			},
		},
		{
			name:        "Success_EmptyJSONUsesDefaults",
			fileContent: `{}`,
			validate: func(t *testing.T, c *config.AppConfig) {
				assert.False(t, c.Generator.HasNodeID())
				assert.Len(t, c.VerifyRecommendations(), 1)
			},
		},
		{
			name:        "Error_InvalidJSON",
			fileContent: `{"debug": true, "broken_json...`,
			wantErr:     true,
			wantErrType: apperrors.InvalidInput,
		},
		{
			name:        "Error_NodeIDOutOfRange",
			fileContent: `{"generator": {"node_id": 1024}}`,
			wantErr:     true,
			wantErrType: apperrors.InvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.LoadWithFile(createTempConfigFile(t, tt.fileContent))

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, tt.wantErrType), "에러 타입: %v", err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

// TestLoadAppConfig_FileNotFound는 파일이 존재하지 않는 경우를 별도로 테스트합니다.
func TestLoadAppConfig_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWithFile(filepath.Join(t.TempDir(), "ghost_config.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, apperrors.Is(err, apperrors.System))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// createTempConfigFile은 t.TempDir()을 사용하여 임시 설정 파일을 생성합니다.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644), "임시 파일 생성 실패")

	return filePath
}
