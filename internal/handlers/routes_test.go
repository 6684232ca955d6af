package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	_ "github.com/f1racepredictor/race-api/docs"
	"github.com/f1racepredictor/race-api/internal/logic"
)

func newTestRouter(limiter *RateLimiter) http.Handler {
	h := New(Config{
		Logger:     zap.NewNop(),
		Prediction: &MockPredictionService{},
		Reference:  logic.NewReferenceService(),
	})
	return h.Routes([]string{"*"}, limiter)
}

func TestRoutes_KnownEndpoints(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{"GET", "/circuits", "", http.StatusOK},
		{"GET", "/teams", "", http.StatusOK},
		{"GET", "/constructor-standings", "", http.StatusOK},
		{"POST", "/predict", `{"circuit":"Hungaroring","weather":"Dry","entries":[{"driver":"Max Verstappen","constructor":"Red Bull Racing","grid":1}]}`, http.StatusOK},
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"GET", "/swagger/doc.json", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %v, want %v (body %q)", w.Code, tt.status, w.Body.String())
			}
		})
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest("POST", "/circuits", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %v, want 405", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("405 body is not JSON: %v", err)
	}
	if body["error"] != "Method not allowed" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestRoutes_NotFound(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %v, want 404", w.Code)
	}
}

func TestRoutes_OptionsAlwaysOK(t *testing.T) {
	router := newTestRouter(nil)

	for _, path := range []string{"/circuits", "/teams", "/constructor-standings", "/predict"} {
		req := httptest.NewRequest("OPTIONS", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("OPTIONS %s = %v, want 200", path, w.Code)
		}
	}
}

func TestRoutes_RequestIDEchoed(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestRoutes_RateLimited(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	router := newTestRouter(limiter)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "10.1.2.3:5000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("burst requests got %v, want 200s", statuses[:2])
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %v, want 429", statuses[2])
	}
}
