package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scores implements llm.Matcher: both text sets are embedded in one batch
// request and compared pairwise by cosine similarity. Rows follow queries,
// columns follow candidates.
func (c *Client) Scores(ctx context.Context, queries, candidates []string) ([][]float64, error) {
	if len(queries) == 0 || len(candidates) == 0 {
		return make([][]float64, len(queries)), nil
	}

	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("match.start",
		"req_id", rid,
		"model", c.cfg.EmbedModel,
		"queries", len(queries),
		"candidates", len(candidates),
	)

	inputs := make([]string, 0, len(queries)+len(candidates))
	inputs = append(inputs, queries...)
	inputs = append(inputs, candidates...)

	vecs, err := c.embed(ctx, inputs)
	if err != nil {
		c.log.Error("match.error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	if len(vecs) != len(inputs) {
		return nil, fmt.Errorf("embedding count mismatch: want %d got %d", len(inputs), len(vecs))
	}

	qv := vecs[:len(queries)]
	cv := vecs[len(queries):]
	scores := make([][]float64, len(queries))
	for i := range qv {
		row := make([]float64, len(cv))
		for j := range cv {
			row[j] = cosine(qv[i], cv[j])
		}
		scores[i] = row
	}

	c.log.Info("match.ok", "req_id", rid, "elapsed_ms", time.Since(start).Milliseconds())
	return scores, nil
}

func (c *Client) embed(ctx context.Context, inputs []string) ([][]float32, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/embeddings"
	raw, err := c.post(ctx, endpoint, map[string]any{
		"model": c.cfg.EmbedModel,
		"input": inputs,
	})
	if err != nil {
		return nil, err
	}

	var er struct {
		Data []struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &er); err != nil {
		return nil, fmt.Errorf("decode embeddings response: %w", err)
	}

	vecs := make([][]float32, len(inputs))
	for _, d := range er.Data {
		if d.Index < 0 || d.Index >= len(vecs) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		vecs[d.Index] = d.Embedding
	}
	for i, v := range vecs {
		if v == nil {
			return nil, fmt.Errorf("missing embedding for input %d", i)
		}
	}
	return vecs, nil
}

// cosine similarity of two vectors, 0 when either has zero norm.
func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
