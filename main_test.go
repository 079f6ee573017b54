package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"art-therapy-server/modules/art"
	"art-therapy-server/modules/common/config"
	"art-therapy-server/modules/gallery"
	"art-therapy-server/modules/imagegen"
	"art-therapy-server/modules/mood"
	"art-therapy-server/modules/prompt"
)

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	healthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != http.StatusOK || body["status"] != "healthy" || body["service"] != serviceName {
		t.Errorf("code=%d body=%v", rec.Code, body)
	}
}

func TestEnableCORS(t *testing.T) {
	called := false
	h := enableCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/gallery/abc/favorite", nil))
	if called {
		t.Error("preflight should not reach the handler")
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Errorf("preflight: code=%d methods=%q", rec.Code, rec.Header().Get("Access-Control-Allow-Methods"))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))
	if !called || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("regular request should pass through with CORS headers")
	}
}

func TestOpenStoresAndRouter(t *testing.T) {
	cfg := &config.Config{
		StorageBackend:  config.StorageSQLite,
		DatabasePath:    filepath.Join(t.TempDir(), "main.db"),
		AppEnv:          config.EnvDevelopment,
		ImageProvider:   config.ImageProviderStability,
		StabilityAPIURL: "http://127.0.0.1:1/unused",
	}

	artworks, moods, closeStore, err := openStores(cfg)
	if err != nil {
		t.Fatalf("openStores() error = %v", err)
	}
	defer closeStore()
	if artworks == nil || moods == nil {
		t.Fatal("openStores() returned nil stores")
	}

	if p := newImageProvider(cfg); p.Model() != "stable-diffusion-xl-1024-v1-0" {
		t.Errorf("default provider model = %q", p.Model())
	}
	cfg.ImageProvider = config.ImageProviderOpenAI
	cfg.OpenAIImageModel = "dall-e-3"
	if p := newImageProvider(cfg); p.Model() != "dall-e-3" {
		t.Errorf("openai provider model = %q", p.Model())
	}

	if gen := newTextGenerator(context.Background(), cfg); gen != nil {
		t.Error("text generator should be nil without an API key")
	}

	generator := imagegen.NewGenerator(newImageProvider(cfg), cfg.IsDevelopment())
	r := newRouter(
		art.NewHandler(art.NewService(prompt.NewEnhancer(nil), generator, artworks, nil, generator.Model())),
		gallery.NewHandler(gallery.NewService(artworks, false)),
		mood.NewHandler(mood.NewService(moods)),
	)

	for _, target := range []string{"/", "/health", "/gallery", "/mood/journal", "/mood/analytics", "/art/status/xyz"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, body %s", target, rec.Code, rec.Body.String())
		}
	}
}
