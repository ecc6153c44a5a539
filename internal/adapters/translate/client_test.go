package translate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"hotelmatch/internal/adapters/translate"
)

func TestClient_Translate_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			var req struct {
				Q      string `json:"q"`
				Target string `json:"target"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Target != "en" {
				w.WriteHeader(400)
				return
			}
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{"translatedText": "hotel near the beach"})
		}
	}))
	defer ts.Close()

	cl, err := translate.New(ts.URL, "", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.Translate(ctx, "hotel cerca de la playa", "en")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "hotel near the beach" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Translate_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
	}))
	defer ts.Close()

	cl, err := translate.New(ts.URL, "bad-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.Translate(ctx, "hola", "en")
	if err == nil {
		t.Fatalf("expected error for 401")
	}
}

func TestClient_RequiresBaseURL(t *testing.T) {
	if _, err := translate.New("", "", 5); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}
