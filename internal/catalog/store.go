package catalog

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"hotelmatch/internal/domain"
)

// Store holds the hotel catalog in memory. It is populated once at startup
// and never mutated afterwards, so concurrent readers need no locking.
// Insertion order is preserved; ranking uses it to break score ties.
type Store struct {
	hotels []domain.Hotel
	dim    int
}

// New validates the loaded records and builds the store. Records that cannot
// be scored safely (non-finite coordinates, missing embedding, embedding
// dimensionality differing from the first valid record) are excluded with a
// recorded reason rather than failing the whole load.
func New(records []domain.Hotel, log zerolog.Logger) (*Store, error) {
	s := &Store{hotels: make([]domain.Hotel, 0, len(records))}

	for _, h := range records {
		if reason := validate(h, s.dim); reason != "" {
			log.Warn().Int64("id", h.ID).Str("name", h.Name).Str("reason", reason).
				Msg("excluding catalog record")
			continue
		}
		if s.dim == 0 {
			s.dim = len(h.Embedding)
		}
		s.hotels = append(s.hotels, h)
	}

	if len(records) > 0 && len(s.hotels) == 0 {
		return nil, fmt.Errorf("%w: no valid records in catalog of %d", domain.ErrDataIntegrity, len(records))
	}
	return s, nil
}

func validate(h domain.Hotel, dim int) string {
	if !finite(h.Lat) || !finite(h.Lng) {
		return "non-finite coordinates"
	}
	if len(h.Embedding) == 0 {
		return "missing embedding"
	}
	if dim != 0 && len(h.Embedding) != dim {
		return fmt.Sprintf("embedding dimension %d, want %d", len(h.Embedding), dim)
	}
	for _, v := range h.Embedding {
		if !finite(v) {
			return "non-finite embedding value"
		}
	}
	return ""
}

// Hotels returns the backing slice. Callers must treat it as read-only.
func (s *Store) Hotels() []domain.Hotel { return s.hotels }

func (s *Store) Len() int { return len(s.hotels) }

// Dim is the embedding dimensionality shared by every stored record
// (0 for an empty catalog).
func (s *Store) Dim() int { return s.dim }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
