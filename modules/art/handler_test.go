package art

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"art-therapy-server/modules/common/model"
	"art-therapy-server/modules/common/response"
)

func newTestRouter(s *Service) *mux.Router {
	r := mux.NewRouter()
	NewHandler(s).RegisterRoutes(r)
	return r
}

func TestHandleGenerate(t *testing.T) {
	artworks := &memoryArtworks{}
	router := newTestRouter(NewService(fixedEnhancer{"A calm sea"}, stubImages{result: okImage()}, artworks, nil, "m"))

	req := httptest.NewRequest(http.MethodPost, "/art/generate", strings.NewReader(`{"emotion":"Calm","focusWord":" sea "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    Result `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Message != "Art generated successfully" || body.Data.Status != "completed" {
		t.Errorf("unexpected body: %+v", body)
	}
	if len(artworks.created) != 1 || artworks.created[0].Emotion != "calm" || artworks.created[0].FocusWord != "sea" {
		t.Errorf("input not normalized before generation: %+v", artworks.created)
	}
}

func TestHandleGenerate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		images     stubImages
		wantStatus int
		wantError  string
	}{
		{"empty input", `{}`, stubImages{result: okImage()}, http.StatusBadRequest, "Validation failed"},
		{"bad emotion", `{"emotion":"bored"}`, stubImages{result: okImage()}, http.StatusBadRequest, "Validation failed"},
		{"bad json", `{`, stubImages{result: okImage()}, http.StatusBadRequest, "Validation failed"},
		{"upstream failure", `{"emotion":"sad"}`, stubImages{err: errTest}, http.StatusInternalServerError, "Failed to generate art"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artworks := &memoryArtworks{}
			router := newTestRouter(NewService(fixedEnhancer{"p"}, tt.images, artworks, nil, "m"))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/art/generate", strings.NewReader(tt.body)))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var env response.Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Success || env.Error != tt.wantError || env.Message == "" {
				t.Errorf("unexpected envelope: %+v", env)
			}
			if len(artworks.created) != 0 {
				t.Error("no artwork should be stored on failure")
			}
		})
	}
}

func TestHandleStatus(t *testing.T) {
	statuses := newMemoryStatuses()
	statuses.history["abc"] = []string{model.StatusProcessing, model.StatusFailed}
	router := newTestRouter(NewService(fixedEnhancer{"p"}, stubImages{}, &memoryArtworks{}, statuses, "m"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/art/status/abc", nil))

	var body StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != http.StatusOK || !body.Success || body.Status != model.StatusFailed || body.RequestID != "abc" {
		t.Errorf("status=%d body=%+v", rec.Code, body)
	}
}
