package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"hotelmatch/internal/domain"
)

// RecommendationService fronts the engine with an optional response cache.
// The engine itself never caches anything (normalized queries and query
// embeddings are request-local); only final, idempotent responses are stored
// here, so a hit cannot change any observable result.
type RecommendationService struct {
	rec      *Recommender
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewRecommendationService wires the engine; cache may be nil to disable
// response caching entirely.
func NewRecommendationService(r *Recommender, c domain.Cache, ttl time.Duration) *RecommendationService {
	return &RecommendationService{rec: r, cache: c, cacheTTL: ttl}
}

func (s *RecommendationService) Recommend(ctx context.Context, query string, userLat, userLng float64, topN int) ([]domain.Recommendation, error) {
	if s.cache == nil {
		return s.rec.Recommend(ctx, query, userLat, userLng, topN)
	}

	key := cacheKey(query, userLat, userLng, topN)
	var cached []domain.Recommendation
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	out, err := s.rec.Recommend(ctx, query, userLat, userLng, topN)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func cacheKey(query string, lat, lng float64, topN int) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%.8f|%.8f|%d", query, lat, lng, topN)))
	return "rec:" + hex.EncodeToString(sum[:])
}
