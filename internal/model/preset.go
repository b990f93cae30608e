package model

import "strings"

// Preset is a named quality/compression profile forwarded to Ghostscript.
type Preset string

const (
	PresetScreen   Preset = "screen"
	PresetEbook    Preset = "ebook"
	PresetPrinter  Preset = "printer"
	PresetPrepress Preset = "prepress"
)

// ParsePreset normalizes (trim + lowercase) and validates a preset name.
func ParsePreset(s string) (Preset, bool) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PresetScreen, PresetEbook, PresetPrinter, PresetPrepress:
		return p, true
	}
	return "", false
}

// GSSetting returns the -dPDFSETTINGS value for this preset.
func (p Preset) GSSetting() string {
	return "/" + string(p)
}
