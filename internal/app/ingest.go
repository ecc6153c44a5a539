package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"hotelmatch/internal/domain"
	"hotelmatch/internal/textnorm"
)

// EmbeddingIngestService precomputes catalog embeddings: it normalizes each
// hotel's description (spellcheck off - descriptions are long, trusted text)
// and stores the resulting vector. Queries later go through the same
// normalizer and embedder, which keeps dimensions and token space aligned.
type EmbeddingIngestService struct {
	repo       domain.CatalogRepository
	embedder   domain.Embedder
	normalizer *textnorm.Normalizer
	log        zerolog.Logger
}

func NewEmbeddingIngestService(r domain.CatalogRepository, e domain.Embedder, n *textnorm.Normalizer, log zerolog.Logger) *EmbeddingIngestService {
	return &EmbeddingIngestService{repo: r, embedder: e, normalizer: n, log: log}
}

// ListPending returns the hotels that still need an embedding.
func (s *EmbeddingIngestService) ListPending(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.ListMissingEmbeddings(ctx)
}

// EmbedHotel computes and persists the embedding for one hotel.
func (s *EmbeddingIngestService) EmbedHotel(ctx context.Context, h domain.Hotel) error {
	text := s.normalizer.Normalize(h.Description, false)
	if text == "" {
		// Embedding an empty string would still yield a vector, but it would
		// carry no signal; surface it so the row gets fixed instead.
		return fmt.Errorf("%w: hotel %d has no usable description", domain.ErrDataIntegrity, h.ID)
	}

	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("%w: hotel %d: %v", domain.ErrEmbedding, h.ID, err)
	}
	if err := s.repo.UpsertEmbedding(ctx, h.ID, vec); err != nil {
		return fmt.Errorf("upsert embedding for %d: %w", h.ID, err)
	}
	s.log.Info().Int64("id", h.ID).Int("dim", len(vec)).Msg("embedding stored")
	return nil
}
