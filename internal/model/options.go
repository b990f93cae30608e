package model

// RawOptions carries the unvalidated form/query fields of a lighten request
// exactly as the client sent them. Empty string means "field absent".
type RawOptions struct {
	Preset     string
	OCR        string
	Autorotate string
	Deskew     string
	Clean      string
	Oversample string
}

// Options is a validated, normalized lighten request. It is immutable after
// normalization: handlers and the pipeline only read from it.
//
// Autorotate and Deskew are guaranteed false when OCR is false; they only
// affect the OCR sub-pipeline.
type Options struct {
	Preset     Preset
	OCR        bool
	Autorotate bool
	Deskew     bool
	Clean      bool
	Oversample int // 1..4, mapped to an OCR oversample DPI
}

// Result is the outcome of a completed pipeline run. The PDF bytes are read
// from the workspace before it is destroyed.
type Result struct {
	Data     []byte `json:"-"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	// OCRApplied and Optimized record which optional stage ran; they are
	// mutually exclusive.
	OCRApplied bool `json:"ocr_applied"`
	Optimized  bool `json:"optimized"`
}
