package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hansaki/quizforge/internal/llm"
)

const captionSystemPrompt = "You describe images extracted from study documents. Reply with a JSON object " +
	`containing "description" (one or two sentences, concrete, naming symbols and labels visible in the image) ` +
	`and "detected_type" (one of "diagram", "formula", "table", "chart", "photo", "other").`

// Caption implements llm.Captioner via the vision-capable chat endpoint. The
// image travels inline as a data URL; extracted images are always PNG or JPEG
// by the time they reach this call.
func (c *Client) Caption(ctx context.Context, image []byte) (llm.CaptionResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("caption.start", "req_id", rid, "model", c.cfg.VisionModel, "image_bytes", len(image))

	body := map[string]any{
		"model":           c.cfg.VisionModel,
		"temperature":     0,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": captionSystemPrompt},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": "Describe this image."},
				{"type": "image_url", "image_url": map[string]any{"url": asDataURL(image)}},
			}},
		},
	}

	content, err := c.chat(ctx, rid, body)
	if err != nil {
		c.log.Error("caption.error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return llm.CaptionResult{}, err
	}

	var out llm.CaptionResult
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		// Some models reply with prose despite response_format; keep it as the description.
		out = llm.CaptionResult{Description: content}
	}
	if strings.TrimSpace(out.Description) == "" {
		c.log.Error("caption.empty", "req_id", rid, "elapsed_ms", time.Since(start).Milliseconds())
		return llm.CaptionResult{}, fmt.Errorf("empty caption")
	}

	c.log.Info("caption.ok",
		"req_id", rid,
		"detected_type", out.DetectedType,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// asDataURL inlines image bytes for the vision endpoint. PNG and JPEG share
// an 8-byte sniff: anything not starting with the PNG signature is sent as JPEG.
func asDataURL(image []byte) string {
	mt := "image/jpeg"
	if len(image) > 8 && string(image[:8]) == "\x89PNG\r\n\x1a\n" {
		mt = "image/png"
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(image)
}
