package domain

import "context"

// Translator converts text to the target language. Failure must surface to
// the caller; the engine never falls back to the untranslated query.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Embedder maps text to a dense vector of the catalog's fixed dimensionality.
// It must be deterministic for a fixed model configuration.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// CatalogRepository is the persistence boundary for hotel rows.
type CatalogRepository interface {
	// Read paths
	ListHotels(ctx context.Context) ([]Hotel, error)
	ListMissingEmbeddings(ctx context.Context) ([]Hotel, error)

	// Write paths (ingestor only; the API process never writes)
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertEmbedding(ctx context.Context, id int64, vec []float64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
