package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"pdflight/internal/command"
	"pdflight/internal/model"
	"pdflight/internal/service"
)

// LightenPDF handles POST /api/lighten: a multipart upload (field "file")
// plus the pipeline options as form fields or query parameters. On success
// the processed PDF is streamed back as an attachment.
func LightenPDF(svc service.LightenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
		}

		raw := model.RawOptions{
			Preset:     formOrQuery(c, "preset"),
			OCR:        formOrQuery(c, "ocr"),
			Autorotate: formOrQuery(c, "autorotate"),
			Deskew:     formOrQuery(c, "deskew"),
			Clean:      formOrQuery(c, "clean"),
			Oversample: formOrQuery(c, "oversample"),
		}

		res, err := svc.Lighten(c.UserContext(), data, fh.Filename, raw)
		if err != nil {
			return translateLightenError(c, err)
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
		return c.Status(fiber.StatusOK).Send(res.Data)
	}
}

// formOrQuery reads a field from the multipart form, falling back to the
// query string; both are accepted request styles for /api/lighten.
func formOrQuery(c *fiber.Ctx, key string) string {
	if v := c.FormValue(key); v != "" {
		return v
	}
	return c.Query(key)
}

// translateLightenError maps service-layer failures to the error taxonomy:
// bad options and tool failures are 400, oversized uploads 413, everything
// else a detail-free 500.
func translateLightenError(c *fiber.Ctx, err error) error {
	var toolErr *command.ToolError
	switch {
	case errors.Is(err, service.ErrInvalidPreset):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PRESET", err.Error())
	case errors.Is(err, service.ErrInvalidOCR):
		return writeError(c, fiber.StatusBadRequest, "INVALID_OCR", err.Error())
	case errors.Is(err, service.ErrPayloadTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", err.Error())
	case errors.As(err, &toolErr):
		return writeError(c, fiber.StatusBadRequest, "TOOL_FAILED", toolErr.Detail)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
