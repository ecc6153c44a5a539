package domain

// Hotel is one catalog row, loaded once at startup and read-only afterwards.
// Embedding is precomputed by the ingestor from the description text with the
// same embedder that encodes queries, so dimensions always line up.
type Hotel struct {
	ID          int64
	Name        string
	BookingLink string
	Rating      float64
	Address     string
	Description string
	Images      []string
	Lat, Lng    float64
	Embedding   []float64
	SubScores   SubScores
}

// SubScores are the fixed per-category ratings on a 0-10 scale.
// nil means the source had no value; it must never be read as 0.
type SubScores struct {
	Staff       *float64
	Facilities  *float64
	Cleanliness *float64
	Comfort     *float64
	Value       *float64
	Location    *float64
	WiFi        *float64
}

// Mean averages the category scores. ok is false when any category is
// missing, in which case the record cannot be ranked.
func (s SubScores) Mean() (float64, bool) {
	vals := []*float64{s.Staff, s.Facilities, s.Cleanliness, s.Comfort, s.Value, s.Location, s.WiFi}
	sum := 0.0
	for _, v := range vals {
		if v == nil {
			return 0, false
		}
		sum += *v
	}
	return sum / float64(len(vals)), true
}

// Recommendation is the projection returned to callers; it carries no scores
// and no reference into the shared catalog.
type Recommendation struct {
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	BookingLink string   `json:"booking_link"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Images      []string `json:"images"`
}
