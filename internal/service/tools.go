package service

import (
	"strconv"

	"pdflight/internal/model"
)

// Tool argument lists are kept as pure data builders next to their call
// sites so the exact invocations are auditable in one place.

// oversampleDPI maps the 1..4 oversample slider to an OCR oversample DPI.
var oversampleDPI = map[int]int{1: 150, 2: 300, 3: 400, 4: 600}

// gsArgs builds the Ghostscript rasterize/compress invocation: pdfwrite
// device, quality preset, sandboxed (-dSAFER) batch mode, explicit output.
func gsArgs(preset model.Preset, input, output string) []string {
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=" + preset.GSSetting(),
		"-dSAFER",
		"-dNOPAUSE", "-dBATCH",
		"-sOutputFile=" + output,
		input,
	}
}

// qpdfArgs builds the lossless structural optimization invocation: object
// stream generation plus stream compression. Never rasterizes and never
// alters layout or page content.
func qpdfArgs(input, output string) []string {
	return []string{
		"--object-streams=generate",
		"--stream-data=compress",
		input,
		output,
	}
}

// ocrArgs builds the OCRmyPDF invocation. With forceOCR a text layer is
// produced unconditionally; without it pages that already contain text are
// skipped (ocrmypdf has no true "preprocess only" mode). The pipeline never
// takes the skip-text path when OCR is disabled: qpdf handles that branch.
func ocrArgs(opts model.Options, forceOCR bool, langs, input, output string) []string {
	var args []string

	if forceOCR {
		args = append(args, "--force-ocr", "-l", langs)
	} else {
		args = append(args, "--skip-text")
	}

	if opts.Autorotate {
		args = append(args, "--rotate-pages", "--rotate-pages-threshold", "2")
	}
	if opts.Deskew {
		args = append(args, "--deskew")
	}
	if opts.Clean {
		args = append(args, "--clean")
	}

	if forceOCR {
		args = append(args, "--oversample", strconv.Itoa(oversampleDPI[opts.Oversample]))
	}

	return append(args, "--optimize", "3", input, output)
}
