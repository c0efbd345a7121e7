package log

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Options Validation
// =============================================================================

func TestOptions_Validate(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"정상", Options{Name: "app", Dir: dir}, ""},
		{"Name 누락", Options{}, "Name"},
		{"Dir가 파일", Options{Name: "app", Dir: filePath}, "파일로 존재"},
		{"음수 MaxAge", Options{Name: "app", MaxAge: -1}, "MaxAge"},
		{"음수 MaxSizeMB", Options{Name: "app", MaxSizeMB: -1}, "MaxSizeMB"},
		{"음수 MaxBackups", Options{Name: "app", MaxBackups: -1}, "MaxBackups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfiles(t *testing.T) {
	prod := NewProductionOptions("snowflake-server")
	assert.Equal(t, "snowflake-server", prod.Name)
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)
	assert.NoError(t, prod.Validate())

	dev := NewDevelopmentOptions("snowflake-server")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
	assert.NoError(t, dev.Validate())
}

// =============================================================================
// Setup
// =============================================================================

func TestSetup_CreatesLogFiles(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	dir := t.TempDir()
	closer, err := Setup(Options{
		Name:              "snowflake-test",
		Dir:               dir,
		Level:             TraceLevel,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, closer)

	WithComponent("idgen").Info("info message")
	WithComponent("idgen").Error("error message")
	WithComponent("idgen").Debug("debug message")

	require.NoError(t, closer.Close())

	mainLog := readFile(t, filepath.Join(dir, "snowflake-test.log"))
	criticalLog := readFile(t, filepath.Join(dir, "snowflake-test.critical.log"))
	verboseLog := readFile(t, filepath.Join(dir, "snowflake-test.verbose.log"))

	assert.Contains(t, mainLog, "info message")
	assert.Contains(t, mainLog, "error message")
	assert.NotContains(t, mainLog, "debug message")
	assert.Contains(t, mainLog, "component=idgen")

	assert.Contains(t, criticalLog, "error message")
	assert.NotContains(t, criticalLog, "info message")

	assert.Contains(t, verboseLog, "debug message")
	assert.NotContains(t, verboseLog, "info message")
}

func TestSetup_Idempotent(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	dir := t.TempDir()
	first, err := Setup(Options{Name: "first", Dir: dir})
	require.NoError(t, err)
	defer first.Close()

	second, err := Setup(Options{Name: "second", Dir: dir})
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, statErr := os.Stat(filepath.Join(dir, "second.log"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSetup_InvalidOptions(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	closer, err := Setup(Options{})
	require.Error(t, err)
	assert.Nil(t, closer)

	// 실패한 결과도 그대로 유지됩니다.
	_, err = Setup(Options{Name: "ok", Dir: t.TempDir()})
	assert.Error(t, err)
}

func TestSetup_DefaultLevel(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	closer, err := Setup(Options{Name: "lvl", Dir: t.TempDir()})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, InfoLevel, logrus.GetLevel())
}

// =============================================================================
// Helpers
// =============================================================================

func TestWithComponentAndFields(t *testing.T) {
	fields := Fields{"node_id": 7, FieldComponent: "overridden"}
	entry := WithComponentAndFields("idgen", fields)

	assert.Equal(t, "idgen", entry.Data[FieldComponent])
	assert.Equal(t, 7, entry.Data["node_id"])
	assert.Equal(t, "overridden", fields[FieldComponent], "원본 맵은 변경되지 않아야 합니다")
}

func TestSetDebugMode(t *testing.T) {
	t.Cleanup(resetForTest)

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, logrus.GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, logrus.GetLevel())

	assert.Same(t, logrus.StandardLogger(), StandardLogger())
}

func TestNewTextFormatter_CallerPathPrefix(t *testing.T) {
	f := newTextFormatter(callerPathPrefix)
	require.NotNil(t, f.CallerPrettyfier)

	fn, _ := f.CallerPrettyfier(&runtime.Frame{
		Function: "github.com/darkkaiser/snowflake-server/internal/service/idgen.(*Service).Next",
		Line:     42,
	})
	assert.Equal(t, ".../internal/service/idgen.(*Service).Next(line:42)", fn)
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}
