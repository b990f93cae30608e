package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pdflight/internal/config"
	"pdflight/internal/model"
)

var (
	// ErrInvalidPreset means the preset field is not one of
	// screen/ebook/printer/prepress.
	ErrInvalidPreset = errors.New("invalid preset")
	// ErrInvalidOCR means the ocr field is present but not 0 or 1.
	// Validation is strict here: a malformed primary field is rejected
	// rather than silently defaulted.
	ErrInvalidOCR = errors.New("invalid ocr value (use 0 or 1)")
	// ErrPayloadTooLarge means the upload exceeds the configured maximum.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// Secondary field defaults. These options are cosmetic and only meaningful
// when ocr=1, so malformed values fall back instead of failing the request.
const (
	defaultAutorotate = 0
	defaultDeskew     = 0
	defaultClean      = 1
	defaultOversample = 2
)

// ParseOptions validates and normalizes raw request fields into an immutable
// Options value.
//
// Policy: preset and ocr are validated strictly (bad values are errors),
// while the secondary fields fall back to documented defaults. Oversample is
// clamped to [1,4] regardless of input. When ocr=0, autorotate and deskew
// are forced off: they belong to the OCR sub-pipeline.
func ParseOptions(raw model.RawOptions, cfg config.PipelineConfig) (model.Options, error) {
	presetStr := strings.ToLower(strings.TrimSpace(raw.Preset))
	if presetStr == "" {
		presetStr = cfg.DefaultPreset
	}
	preset, ok := model.ParsePreset(presetStr)
	if !ok {
		return model.Options{}, fmt.Errorf("%w: %q", ErrInvalidPreset, presetStr)
	}

	ocr := cfg.OCRDefault
	if s := strings.TrimSpace(raw.OCR); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || (n != 0 && n != 1) {
			return model.Options{}, fmt.Errorf("%w: %q", ErrInvalidOCR, s)
		}
		ocr = n == 1
	}

	opts := model.Options{
		Preset:     preset,
		OCR:        ocr,
		Autorotate: intField(raw.Autorotate, defaultAutorotate) != 0,
		Deskew:     intField(raw.Deskew, defaultDeskew) != 0,
		Clean:      intField(raw.Clean, defaultClean) != 0,
		Oversample: clamp(intField(raw.Oversample, defaultOversample), 1, 4),
	}

	if !opts.OCR {
		opts.Autorotate = false
		opts.Deskew = false
	}
	return opts, nil
}

// intField coerces a raw form value to int, falling back to def when the
// field is absent or malformed.
func intField(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
