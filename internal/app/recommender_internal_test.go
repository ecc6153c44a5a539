package app

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"hotelmatch/internal/catalog"
	"hotelmatch/internal/domain"
)

func pf(f float64) *float64 { return &f }

func allSubs(v float64) domain.SubScores {
	return domain.SubScores{
		Staff: pf(v), Facilities: pf(v), Cleanliness: pf(v), Comfort: pf(v),
		Value: pf(v), Location: pf(v), WiFi: pf(v),
	}
}

// manualHaversine restates the formula independently of internal/geo so the
// expected scores below are derived from the definition, not the code under
// test.
func manualHaversine(lat1, lng1, lat2, lng2 float64) float64 {
	const r = 6371.0
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Pow(math.Sin(dLng/2), 2)
	return 2 * r * math.Asin(math.Sqrt(a))
}

func TestScoreAll_ExactBlendedScores(t *testing.T) {
	userLat, userLng := 10.0, 20.0
	queryVec := []float64{0, 1}

	hotels := []domain.Hotel{
		{ID: 1, Name: "A", Lat: 10, Lng: 21, Embedding: []float64{1, 0}, SubScores: allSubs(8)},
		{ID: 2, Name: "B", Lat: 10, Lng: 20, Embedding: []float64{0, 1}, SubScores: allSubs(9)},
		{ID: 3, Name: "C", Lat: 11, Lng: 20, Embedding: []float64{0.6, 0.8}, SubScores: allSubs(7)},
	}
	store, err := catalog.New(hotels, zerolog.Nop())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	rec := NewRecommender(store, nil, nil, nil, DefaultWeights(), zerolog.Nop())

	cands := rec.scoreAll(queryVec, userLat, userLng)
	if len(cands) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(cands))
	}

	// Manual per-hotel expectations: alpha*sim + beta*1/(1+d) + gamma*mean/10.
	simA := 0.0
	simB := 1.0
	simC := (0*0.6 + 1*0.8) / (math.Sqrt(0*0+1*1) * math.Sqrt(0.6*0.6+0.8*0.8))

	want := []float64{
		0.5*simA + 0.3*(1/(1+manualHaversine(10, 20, 10, 21))) + 0.2*(8.0/10),
		0.5*simB + 0.3*(1/(1+manualHaversine(10, 20, 10, 20))) + 0.2*(9.0/10),
		0.5*simC + 0.3*(1/(1+manualHaversine(10, 20, 11, 20))) + 0.2*(7.0/10),
	}

	for i, c := range cands {
		if diff := math.Abs(c.final - want[i]); diff > 1e-9 {
			t.Fatalf("hotel %s: final=%v want=%v (diff %v)", c.hotel.Name, c.final, want[i], diff)
		}
	}

	// B sits on the user's location: its location score must be exactly 1.
	if cands[1].location != 1.0 {
		t.Fatalf("expected location score 1 at zero distance, got %v", cands[1].location)
	}
}
