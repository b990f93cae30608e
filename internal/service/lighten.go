package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pdflight/internal/command"
	"pdflight/internal/config"
	"pdflight/internal/model"
	"pdflight/internal/workspace"
)

// LightenService defines the use case of this service: run an uploaded PDF
// through the external lighten pipeline and return the resulting file.
type LightenService interface {
	// Lighten validates the raw options, guards the upload size, and runs
	// up to three external stages: Ghostscript compression (always), then
	// either OCRmyPDF (ocr=1) or qpdf structural optimization (ocr=0 and
	// clean=1), or a plain pass-through. The two optional stages are
	// mutually exclusive.
	Lighten(ctx context.Context, data []byte, filename string, raw model.RawOptions) (*model.Result, error)
}

// lightenService is a concrete implementation of LightenService.
type lightenService struct {
	cfg     config.PipelineConfig
	runner  command.Runner
	metrics *Metrics
	tracer  trace.Tracer
	// sem bounds concurrent external pipelines; the tools are CPU and
	// memory heavy, so unbounded forking under load is not acceptable.
	sem chan struct{}
}

// NewLightenService constructs a new LightenService. metrics may be nil.
func NewLightenService(cfg config.PipelineConfig, runner command.Runner, metrics *Metrics) LightenService {
	var sem chan struct{}
	if cfg.MaxConcurrent > 0 {
		sem = make(chan struct{}, cfg.MaxConcurrent)
	}
	return &lightenService{
		cfg:     cfg,
		runner:  runner,
		metrics: metrics,
		tracer:  otel.Tracer("pdflight/internal/service"),
		sem:     sem,
	}
}

func (s *lightenService) Lighten(ctx context.Context, data []byte, filename string, raw model.RawOptions) (*model.Result, error) {
	opts, err := ParseOptions(raw, s.cfg)
	if err != nil {
		return nil, err
	}

	// Upload guard: reject before any temp file or subprocess exists.
	if int64(len(data)) > s.cfg.MaxUploadBytes() {
		return nil, fmt.Errorf("%w: limit is %d MB", ErrPayloadTooLarge, s.cfg.MaxMB)
	}

	if s.sem != nil {
		select {
		case s.sem <- struct{}{}:
			defer func() { <-s.sem }()
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.metrics.pipelineStarted()
	defer s.metrics.pipelineDone()

	ctx, span := s.tracer.Start(ctx, "pipeline.lighten",
		trace.WithAttributes(
			attribute.String("pdf.preset", string(opts.Preset)),
			attribute.Bool("pdf.ocr", opts.OCR),
			attribute.Int("pdf.size", len(data)),
		))
	defer span.End()

	ws, err := workspace.New("")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	defer ws.Cleanup()

	if err := ws.WriteInput(data); err != nil {
		return nil, fmt.Errorf("write input: %w", err)
	}

	// Stage 1 (mandatory): rasterize/compress with the selected preset.
	if err := s.runStage(ctx, "ghostscript", s.cfg.GSBin,
		gsArgs(opts.Preset, ws.Input(), ws.Light()), ws.Light()); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// Stage 2: OCR and structural optimization are mutually exclusive;
	// ocrmypdf's own --optimize supersedes a separate qpdf pass.
	final := ws.Light()
	switch {
	case opts.OCR:
		if err := s.runStage(ctx, "ocrmypdf", s.cfg.OCRmyPDFBin,
			ocrArgs(opts, true, s.cfg.OCRLangs, ws.Light(), ws.Output()), ws.Output()); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		final = ws.Output()
	case opts.Clean:
		if err := s.runStage(ctx, "qpdf", s.cfg.QPDFBin,
			qpdfArgs(ws.Light(), ws.Output()), ws.Output()); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		final = ws.Output()
	}

	// Read the result before the deferred cleanup destroys the workspace.
	out, err := os.ReadFile(final)
	if err != nil {
		return nil, fmt.Errorf("read pipeline output: %w", err)
	}

	return &model.Result{
		Data:       out,
		Filename:   downloadName(filename, opts),
		Size:       int64(len(out)),
		OCRApplied: opts.OCR,
		Optimized:  !opts.OCR && opts.Clean,
	}, nil
}

// runStage invokes one external tool and verifies it actually produced the
// declared output file. Some tools report success while writing nothing, so
// the existence check runs even on exit status 0.
func (s *lightenService) runStage(ctx context.Context, tool, bin string, args []string, output string) error {
	ctx, span := s.tracer.Start(ctx, "pipeline."+tool)
	defer span.End()

	if s.cfg.ToolTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ToolTimeout)
		defer cancel()
	}

	start := time.Now()
	out, err := s.runner.Run(ctx, bin, args...)
	if err != nil {
		s.metrics.observeStage(tool, "error", time.Since(start))
		span.SetStatus(codes.Error, err.Error())
		return &command.ToolError{Tool: tool, ExitCode: -1, Detail: err.Error()}
	}
	if out.ExitCode != 0 {
		s.metrics.observeStage(tool, "error", time.Since(start))
		toolErr := command.NewToolError(tool, out)
		span.SetStatus(codes.Error, toolErr.Detail)
		return toolErr
	}

	if info, statErr := os.Stat(output); statErr != nil || info.Size() == 0 {
		s.metrics.observeStage(tool, "error", time.Since(start))
		span.SetStatus(codes.Error, "no output produced")
		return &command.ToolError{
			Tool:   tool,
			Detail: tool + " did not produce an output PDF (missing or empty)",
		}
	}

	s.metrics.observeStage(tool, "ok", time.Since(start))
	return nil
}

// downloadName derives the download filename from the original name's stem
// and extension plus a suffix reflecting which stages ran: _light always,
// then _ocr if OCR ran or _opt if structural optimization ran.
func downloadName(original string, opts model.Options) string {
	base := filepath.Base(original)
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "document"
	}

	suffix := "_light"
	if opts.OCR {
		suffix += "_ocr"
	} else if opts.Clean {
		suffix += "_opt"
	}
	return stem + suffix + ext
}
