package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedGroups(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "claimshield-test")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("APP_OPERATOR_EMAIL", "ops@example.com")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/claims")
	t.Setenv("OCR_API_KEY", "ocr-key")
	t.Setenv("OCR_ENGINE", "1")
	t.Setenv("LLM_API_KEY", "llm-key")
	t.Setenv("LLM_MODEL", "test-model")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "claimshield-test", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "ops@example.com", cfg.App.OperatorEmail)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/claims", cfg.Storage.DB.DSN)
	assert.Equal(t, "ocr-key", cfg.OCR.APIKey)
	assert.Equal(t, 1, cfg.OCR.Engine)
	assert.Equal(t, "llm-key", cfg.LLM.APIKey)
	assert.Equal(t, "test-model", cfg.LLM.Model)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestLoadDotEnv_LoadsFileIntoEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("OCR_API_KEY=from-file\n"), 0o600))

	t.Setenv("OCR_API_KEY", "") // isolate from the outer environment
	os.Unsetenv("OCR_API_KEY")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("OCR_API_KEY"))
}

func TestLoadDotEnv_MissingDefaultFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnv_MissingExplicitFileIsAnError(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}
