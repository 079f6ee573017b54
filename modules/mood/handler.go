package mood

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"art-therapy-server/modules/common/logger"
	"art-therapy-server/modules/common/response"
	"art-therapy-server/modules/common/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/mood/journal", h.HandleCreate).Methods("POST", "OPTIONS")
	r.HandleFunc("/mood/journal", h.HandleHistory).Methods("GET")
	r.HandleFunc("/mood/analytics", h.HandleAnalytics).Methods("GET", "OPTIONS")
}

// HandleCreate - POST /mood/journal
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req validator.MoodRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		response.ValidationFailed(w, "Invalid request format")
		return
	}

	input, err := validator.ValidateMoodRequest(req)
	if err != nil {
		response.FromError(w, "Failed to save mood entry", err)
		return
	}

	logger.Infof("📝 Mood journal entry: emotion=%s intensity=%d", input.Emotion, input.Intensity)

	entry, err := h.service.Create(r.Context(), input)
	if err != nil {
		response.FromError(w, "Failed to save mood entry", err)
		return
	}

	response.Success(w, entry, "Mood entry saved successfully")
}

// HandleHistory - GET /mood/journal?limit=&offset=
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := validator.ParsePagination(r.URL.Query(), DefaultLimit)
	if err != nil {
		response.FromError(w, "Failed to retrieve mood history", err)
		return
	}

	history, err := h.service.History(r.Context(), limit, offset)
	if err != nil {
		response.FromError(w, "Failed to retrieve mood history", err)
		return
	}

	response.Success(w, history, "Mood history retrieved successfully")
}

// HandleAnalytics - GET /mood/analytics?period=week|month|year
func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = PeriodWeek
	}

	analytics, err := h.service.Analytics(r.Context(), period)
	if err != nil {
		response.FromError(w, "Failed to retrieve mood analytics", err)
		return
	}

	response.Success(w, analytics, "Mood analytics retrieved successfully")
}
