package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"hotelmatch/internal/adapters/observability"
)

// Client implements domain.Embedder over any OpenAI-compatible embedding API
// (including local inference servers). The model is treated as an opaque
// text-to-vector function; it handles its own input truncation. For a fixed
// base URL and model name the output is deterministic, which is what lets
// catalog vectors be precomputed once and reused.
type Client struct {
	embedder embeddings.Embedder
}

// New configures the client. token may be a placeholder for local services
// that skip auth.
func New(baseURL, token, model string) (*Client, error) {
	if token == "" {
		token = "none"
	}
	llm, err := openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithToken(token),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("embedding client: %w", err)
	}
	emb, err := embeddings.NewEmbedder(llm, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("embedding client: %w", err)
	}
	return &Client{embedder: emb}, nil
}

// Embed returns the vector for one text. Vectors are widened to float64 at
// this boundary so all scoring math downstream stays in float64.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	start := time.Now()
	vecs, err := c.embedder.EmbedDocuments(ctx, []string{text})
	status := 200
	if err != nil {
		status = 0
	}
	observability.ObserveExternal("embedding", "/embeddings", status, time.Since(start))
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return nil, fmt.Errorf("embedding model returned an empty vector")
	}
	return widen(vecs[0]), nil
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
