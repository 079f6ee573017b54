package art

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
	r.HandleFunc("/art/generate", h.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/art/status/{requestId}", h.HandleStatus).Methods("GET", "OPTIONS")
}

// HandleGenerate - POST /art/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req validator.ArtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationFailed(w, "Invalid request format")
		return
	}

	input, err := validator.ValidateArtRequest(req)
	if err != nil {
		response.FromError(w, "Failed to generate art", err)
		return
	}

	logger.Infof("🎨 Art generation request: emotion=%q focusWord=%q style=%q", input.Emotion, input.FocusWord, input.Style)

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.FromError(w, "Failed to generate art", err)
		return
	}

	response.Success(w, result, "Art generated successfully")
}

// HandleStatus - GET /art/status/{requestId}
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]
	response.JSON(w, http.StatusOK, h.service.Status(r.Context(), requestID))
}
