package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/datosprovida/dashboard/internal/config"
	"github.com/datosprovida/dashboard/internal/ui/components"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		Host:           "127.0.0.1",
		Port:           3000,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    5 * time.Second,
		PublicBaseURL:  "http://localhost:3000",
		AllowedOrigins: []string{"*"},
		RateLimitRPS:   0,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(testConfig(), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewServer() unexpected error: %v", err)
	}
	return s
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantContains []string
	}{
		{
			name:       "home page",
			path:       "/",
			wantStatus: http.StatusOK,
			wantContains: []string{
				"<!doctype html>",
				"<title>Datos Provida Dashboard</title>",
				`<meta property="og:url" content="http://localhost:3000/">`,
				"Buscar",
			},
		},
		{
			name:         "liveness",
			path:         "/health/live",
			wantStatus:   http.StatusOK,
			wantContains: []string{"OK"},
		},
		{
			name:       "unknown page",
			path:       "/no-existe",
			wantStatus: http.StatusNotFound,
			wantContains: []string{
				"<title>Página no encontrada | Datos Provida</title>",
				"Volver al inicio",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			s.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rr.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", rr.Code, tt.wantStatus)
			}
			body := rr.Body.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(body, want) {
					t.Errorf("response body does not contain %q", want)
				}
			}
		})
	}
}

func TestHomePageUsesComponents(t *testing.T) {
	s := newTestServer(t)

	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rr.Body.String()

	for _, class := range []string{
		(components.CardProps{}).ClassName(),
		(components.InputProps{}).ClassName(),
		(components.ButtonProps{Variant: components.ButtonGhost}).ClassName(),
	} {
		if !strings.Contains(body, class) {
			t.Errorf("home page missing component classes %q", class)
		}
	}

	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rr.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("security headers not applied")
	}
}

func TestServeShutdown(t *testing.T) {
	s := newTestServer(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.serve(ctx, listener)
	}()

	res, err := http.Get("http://" + listener.Addr().String() + "/health/live")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || string(body) != "OK" {
		t.Errorf("liveness returned %d %q", res.StatusCode, body)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned error after shutdown: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
