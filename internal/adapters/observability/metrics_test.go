package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotelmatch/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/test", "POST", 200, 12*time.Millisecond)
	observability.ObserveExclusion("missing_subscores")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "hotelmatch_http_requests_total") {
		t.Fatalf("expected hotelmatch_http_requests_total in output")
	}
	if !strings.Contains(out, "hotelmatch_scoring_exclusions_total") {
		t.Fatalf("expected hotelmatch_scoring_exclusions_total in output")
	}
}
