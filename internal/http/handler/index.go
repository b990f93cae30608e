package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pdflight/internal/config"
)

// Index serves the upload form with the configured defaults pre-selected.
// The form posts to /api/lighten as multipart/form-data.
func Index(cfg config.PipelineConfig) fiber.Handler {
	page := indexPage(cfg)
	return func(c *fiber.Ctx) error {
		return c.Type("html").SendString(page)
	}
}

func indexPage(cfg config.PipelineConfig) string {
	var presets strings.Builder
	for _, p := range []string{"screen", "ebook", "printer", "prepress"} {
		selected := ""
		if p == cfg.DefaultPreset {
			selected = " selected"
		}
		fmt.Fprintf(&presets, `<option value="%s"%s>%s</option>`, p, selected, p)
	}

	ocrChecked := ""
	if cfg.OCRDefault {
		ocrChecked = " checked"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>pdflight</title>
</head>
<body>
  <h1>pdflight</h1>
  <p>Upload a PDF (max %d MB) to compress it.</p>
  <form action="/api/lighten" method="post" enctype="multipart/form-data">
    <p><input type="file" name="file" accept="application/pdf" required /></p>
    <p><label>Preset
      <select name="preset">%s</select>
    </label></p>
    <p><label><input type="checkbox" name="ocr" value="1"%s /> OCR (searchable text layer)</label></p>
    <fieldset>
      <legend>OCR options</legend>
      <p><label><input type="checkbox" name="autorotate" value="1" /> Autorotate pages</label></p>
      <p><label><input type="checkbox" name="deskew" value="1" /> Deskew</label></p>
      <p><label><input type="checkbox" name="clean" value="1" checked /> Clean</label></p>
      <p><label>Oversample <input type="range" name="oversample" min="1" max="4" value="2" /></label></p>
    </fieldset>
    <p><button type="submit">Lighten</button></p>
  </form>
</body>
</html>`, cfg.MaxMB, presets.String(), ocrChecked)
}
