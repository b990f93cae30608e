package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origMax := os.Getenv("PDFLIGHT_MAX_MB")
	defer os.Setenv("PDFLIGHT_MAX_MB", origMax)

	os.Setenv("PDFLIGHT_MAX_MB", "5")
	os.Setenv("PDFLIGHT_DEFAULT_PRESET", "screen")
	os.Setenv("PDFLIGHT_OCR_DEFAULT", "1")
	os.Setenv("PDFLIGHT_TOOL_TIMEOUT_SEC", "60")
	defer func() {
		os.Unsetenv("PDFLIGHT_DEFAULT_PRESET")
		os.Unsetenv("PDFLIGHT_OCR_DEFAULT")
		os.Unsetenv("PDFLIGHT_TOOL_TIMEOUT_SEC")
	}()

	cfg := Load()

	assert.Equal(t, 5, cfg.Pipeline.MaxMB)
	assert.Equal(t, int64(5<<20), cfg.Pipeline.MaxUploadBytes())
	assert.Equal(t, "screen", cfg.Pipeline.DefaultPreset)
	assert.True(t, cfg.Pipeline.OCRDefault)
	assert.Equal(t, 60*time.Second, cfg.Pipeline.ToolTimeout)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PDFLIGHT_MAX_MB", "PDFLIGHT_DEFAULT_PRESET", "PDFLIGHT_OCR_DEFAULT",
		"PDFLIGHT_GS_BIN", "PDFLIGHT_QPDF_BIN", "PDFLIGHT_OCRMYPDF_BIN",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, 30, cfg.Pipeline.MaxMB)
	assert.Equal(t, "ebook", cfg.Pipeline.DefaultPreset)
	assert.False(t, cfg.Pipeline.OCRDefault)
	assert.Equal(t, "gs", cfg.Pipeline.GSBin)
	assert.Equal(t, "qpdf", cfg.Pipeline.QPDFBin)
	assert.Equal(t, "ocrmypdf", cfg.Pipeline.OCRmyPDFBin)
	assert.Positive(t, cfg.Pipeline.MaxConcurrent)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "1")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "0")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.False(t, getEnvBool(key, false))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
