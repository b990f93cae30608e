package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pdflight/internal/model"
)

func TestGSArgs(t *testing.T) {
	args := gsArgs(model.PresetScreen, "/tmp/in.pdf", "/tmp/out.pdf")

	assert.Contains(t, args, "-dPDFSETTINGS=/screen")
	assert.Contains(t, args, "-sDEVICE=pdfwrite")
	assert.Contains(t, args, "-dSAFER")
	assert.Contains(t, args, "-dNOPAUSE")
	assert.Contains(t, args, "-dBATCH")
	assert.Contains(t, args, "-sOutputFile=/tmp/out.pdf")
	assert.Equal(t, "/tmp/in.pdf", args[len(args)-1])
}

func TestQPDFArgs(t *testing.T) {
	args := qpdfArgs("/tmp/in.pdf", "/tmp/out.pdf")

	assert.Equal(t, []string{
		"--object-streams=generate",
		"--stream-data=compress",
		"/tmp/in.pdf",
		"/tmp/out.pdf",
	}, args)
}

func TestOCRArgsForce(t *testing.T) {
	opts := model.Options{
		OCR:        true,
		Autorotate: true,
		Deskew:     true,
		Clean:      true,
		Oversample: 3,
	}
	args := ocrArgs(opts, true, "ita+eng", "/tmp/in.pdf", "/tmp/out.pdf")

	assert.Contains(t, args, "--force-ocr")
	assert.Contains(t, args, "ita+eng")
	assert.Contains(t, args, "--rotate-pages")
	assert.Contains(t, args, "--rotate-pages-threshold")
	assert.Contains(t, args, "--deskew")
	assert.Contains(t, args, "--clean")
	assert.Contains(t, args, "--oversample")
	assert.Contains(t, args, "400")
	assert.Contains(t, args, "--optimize")
	assert.NotContains(t, args, "--skip-text")
	// input then output close the argument list
	assert.Equal(t, "/tmp/in.pdf", args[len(args)-2])
	assert.Equal(t, "/tmp/out.pdf", args[len(args)-1])
}

func TestOCRArgsSkipText(t *testing.T) {
	opts := model.Options{Clean: true, Oversample: 2}
	args := ocrArgs(opts, false, "ita+eng", "in.pdf", "out.pdf")

	assert.Contains(t, args, "--skip-text")
	assert.NotContains(t, args, "--force-ocr")
	// No OCR layer means no oversample either.
	assert.NotContains(t, args, "--oversample")
	assert.Contains(t, args, "--clean")
}

func TestOversampleDPITable(t *testing.T) {
	assert.Equal(t, map[int]int{1: 150, 2: 300, 3: 400, 4: 600}, oversampleDPI)
}

func TestDownloadName(t *testing.T) {
	cases := []struct {
		name string
		opts model.Options
		want string
	}{
		{"report.pdf", model.Options{OCR: true, Clean: true}, "report_light_ocr.pdf"},
		{"report.pdf", model.Options{OCR: false, Clean: true}, "report_light_opt.pdf"},
		{"report.pdf", model.Options{OCR: false, Clean: false}, "report_light.pdf"},
		{"dir/scan.PDF", model.Options{}, "scan_light.PDF"},
		{"", model.Options{}, "document_light"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, downloadName(tc.name, tc.opts), "input %q", tc.name)
	}
}
