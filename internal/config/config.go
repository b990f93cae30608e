package config

import (
	"os"
	"runtime"
	"strconv"
	"time"
)

// PipelineConfig holds everything the lighten pipeline needs to run:
// upload limits, user-facing defaults, and the external tool binaries.
type PipelineConfig struct {
	// MaxMB is the maximum accepted upload size in MiB.
	MaxMB int
	// DefaultPreset is used when the request does not name a preset.
	DefaultPreset string
	// OCRDefault is used when the request does not carry an ocr field.
	OCRDefault bool
	// OCRLangs is the language hint list passed to the OCR tool ("ita+eng").
	OCRLangs string

	// External tool binaries; resolved via PATH unless absolute.
	GSBin       string
	QPDFBin     string
	OCRmyPDFBin string

	// MaxConcurrent bounds how many external pipelines may run at once.
	MaxConcurrent int
	// ToolTimeout bounds a single external tool invocation.
	ToolTimeout time.Duration
}

// MaxUploadBytes returns the upload cap in bytes.
func (p PipelineConfig) MaxUploadBytes() int64 {
	return int64(p.MaxMB) << 20
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup and passed
// explicitly to the components that need it.
type AppConfig struct {
	Port     string
	Pipeline PipelineConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "8080"),
		Pipeline: PipelineConfig{
			MaxMB:         getEnvInt("PDFLIGHT_MAX_MB", 30),
			DefaultPreset: getEnv("PDFLIGHT_DEFAULT_PRESET", "ebook"),
			OCRDefault:    getEnvBool("PDFLIGHT_OCR_DEFAULT", false),
			OCRLangs:      getEnv("PDFLIGHT_OCR_LANGS", "ita+eng"),
			GSBin:         getEnv("PDFLIGHT_GS_BIN", "gs"),
			QPDFBin:       getEnv("PDFLIGHT_QPDF_BIN", "qpdf"),
			OCRmyPDFBin:   getEnv("PDFLIGHT_OCRMYPDF_BIN", "ocrmypdf"),
			MaxConcurrent: getEnvInt("PDFLIGHT_MAX_CONCURRENT", runtime.NumCPU()),
			ToolTimeout:   time.Duration(getEnvInt("PDFLIGHT_TOOL_TIMEOUT_SEC", 300)) * time.Second,
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
