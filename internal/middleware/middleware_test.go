package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/datosprovida/dashboard/internal/logger"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	router := chi.NewRouter()
	router.Use(logger.RequestLogging(slog.New(slog.DiscardHandler)))
	router.Use(RateLimit(1, 2))
	router.Get("/", okHandler)

	var got []int
	for range 3 {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		got = append(got, rr.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("request %d: got status %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRateLimitDisabled(t *testing.T) {
	handler := RateLimit(0, 0)(http.HandlerFunc(okHandler))

	for i := range 50 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i, rr.Code)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		environment string
		wantHSTS    bool
	}{
		{"dev", false},
		{"staging", true},
		{"prod", true},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			rr := httptest.NewRecorder()
			SecurityHeaders(tt.environment)(http.HandlerFunc(okHandler)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Errorf("X-Content-Type-Options not set")
			}
			if rr.Header().Get("X-Frame-Options") != "DENY" {
				t.Errorf("X-Frame-Options not set")
			}
			if hsts := rr.Header().Get("Strict-Transport-Security") != ""; hsts != tt.wantHSTS {
				t.Errorf("HSTS set = %v, want %v", hsts, tt.wantHSTS)
			}
		})
	}
}

func TestNewCORS(t *testing.T) {
	cors, err := NewCORS([]string{"https://datos.example.org"}, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewCORS() unexpected error: %v", err)
	}
	handler := cors(http.HandlerFunc(okHandler))

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{"allowed origin", "https://datos.example.org", "https://datos.example.org"},
		{"other origin", "https://evil.example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestNewCORSInvalidOrigin(t *testing.T) {
	if _, err := NewCORS([]string{"not a url"}, time.Hour); err == nil {
		t.Error("expected an error for an invalid origin")
	}
}
