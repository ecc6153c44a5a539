package app

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"hotelmatch/internal/adapters/observability"
	"hotelmatch/internal/catalog"
	"hotelmatch/internal/domain"
	"hotelmatch/internal/geo"
	"hotelmatch/internal/textnorm"
	"hotelmatch/internal/vecmath"
)

// DefaultTopN is used when a caller does not ask for a specific result count.
const DefaultTopN = 5

// Weights blend the three score components. They are applied linearly as
// given; the defaults sum to 1.0 but nothing renormalizes caller-supplied
// values.
type Weights struct {
	Semantic float64
	Location float64
	SubScore float64
}

func DefaultWeights() Weights { return Weights{Semantic: 0.5, Location: 0.3, SubScore: 0.2} }

// Recommender scores the catalog against a query and location. The catalog
// is shared and read-only; every derived value below lives in request-scoped
// state, so concurrent calls never observe each other.
type Recommender struct {
	catalog    *catalog.Store
	translator domain.Translator
	embedder   domain.Embedder
	normalizer *textnorm.Normalizer
	weights    Weights
	log        zerolog.Logger
}

func NewRecommender(
	c *catalog.Store,
	tr domain.Translator,
	em domain.Embedder,
	nm *textnorm.Normalizer,
	w Weights,
	log zerolog.Logger,
) *Recommender {
	return &Recommender{catalog: c, translator: tr, embedder: em, normalizer: nm, weights: w, log: log}
}

// candidate is the per-request scoring scratch for one hotel. Discarded
// after top-N selection.
type candidate struct {
	hotel    *domain.Hotel
	semantic float64
	location float64
	subScore float64
	final    float64
}

// Recommend returns up to min(topN, catalog size) hotels ordered by the
// fused score, ties broken by catalog insertion order. The query is always
// translated to English first; translation or embedding failure fails the
// whole request - there is no silent fallback to the raw query.
func (r *Recommender) Recommend(ctx context.Context, query string, userLat, userLng float64, topN int) ([]domain.Recommendation, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: topN must be positive, got %d", domain.ErrInvalidInput, topN)
	}
	if !finite(userLat) || !finite(userLng) {
		return nil, fmt.Errorf("%w: coordinates must be finite", domain.ErrInvalidInput)
	}

	translated, err := r.translator.Translate(ctx, query, "en")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTranslation, err)
	}

	normalized := r.normalizer.Normalize(translated, true)

	queryVec, err := r.embedder.Embed(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbedding, err)
	}

	cands := r.scoreAll(queryVec, userLat, userLng)

	// Stable: equal scores keep catalog insertion order.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].final > cands[j].final })

	if topN > len(cands) {
		topN = len(cands)
	}
	out := make([]domain.Recommendation, 0, topN)
	for _, c := range cands[:topN] {
		out = append(out, project(c.hotel))
	}
	return out, nil
}

// scoreAll computes one candidate per scorable hotel, in catalog order.
// Hotels whose embedding dimension does not match the query vector, or whose
// sub-scores are incomplete, are excluded with a recorded reason.
func (r *Recommender) scoreAll(queryVec []float64, userLat, userLng float64) []candidate {
	hotels := r.catalog.Hotels()
	cands := make([]candidate, 0, len(hotels))
	for i := range hotels {
		h := &hotels[i]

		sim, err := vecmath.Cosine(queryVec, h.Embedding)
		if err != nil {
			r.exclude(h, "dimension_mismatch")
			continue
		}
		sub, ok := h.SubScores.Mean()
		if !ok {
			r.exclude(h, "missing_subscores")
			continue
		}

		c := candidate{
			hotel:    h,
			semantic: sim,
			location: geo.LocationScore(geo.Distance(userLat, userLng, h.Lat, h.Lng)),
			subScore: sub / 10,
		}
		c.final = r.weights.Semantic*c.semantic + r.weights.Location*c.location + r.weights.SubScore*c.subScore
		cands = append(cands, c)
	}
	return cands
}

func (r *Recommender) exclude(h *domain.Hotel, reason string) {
	observability.ObserveExclusion(reason)
	r.log.Warn().Int64("id", h.ID).Str("name", h.Name).Str("reason", reason).
		Msg("hotel excluded from ranking")
}

// project copies the display fields; the Images slice is cloned so callers
// can never alias the shared catalog.
func project(h *domain.Hotel) domain.Recommendation {
	imgs := make([]string, len(h.Images))
	copy(imgs, h.Images)
	return domain.Recommendation{
		Name:        h.Name,
		Rating:      h.Rating,
		BookingLink: h.BookingLink,
		Description: h.Description,
		Address:     h.Address,
		Images:      imgs,
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
