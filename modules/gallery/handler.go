package gallery

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"art-therapy-server/modules/common/model"
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
	r.HandleFunc("/gallery", h.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/gallery", h.HandleSave).Methods("POST")
	r.HandleFunc("/gallery/{artworkId}", h.HandleGet).Methods("GET", "OPTIONS")
	r.HandleFunc("/gallery/{artworkId}", h.HandleDelete).Methods("DELETE")
	r.HandleFunc("/gallery/{artworkId}/favorite", h.HandleToggleFavorite).Methods("PATCH", "OPTIONS")
}

// HandleList - GET /gallery?limit=&offset=&emotion=&dateFrom=&dateTo=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, offset, err := validator.ParsePagination(query, DefaultLimit)
	if err != nil {
		response.FromError(w, "Failed to retrieve gallery", err)
		return
	}

	filter, err := parseFilter(query.Get("emotion"), query.Get("dateFrom"), query.Get("dateTo"))
	if err != nil {
		response.FromError(w, "Failed to retrieve gallery", err)
		return
	}

	page, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		response.FromError(w, "Failed to retrieve gallery", err)
		return
	}

	response.Success(w, page, "Gallery retrieved successfully")
}

// HandleSave - POST /gallery
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req validator.ArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationFailed(w, "Invalid request format")
		return
	}

	artwork, err := validator.ValidateArtworkRequest(req)
	if err != nil {
		response.FromError(w, "Failed to save artwork", err)
		return
	}

	saved, err := h.service.Save(r.Context(), artwork)
	if err != nil {
		response.FromError(w, "Failed to save artwork", err)
		return
	}

	response.Success(w, saved, "Artwork saved to gallery")
}

// HandleGet - GET /gallery/{artworkId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	artwork, err := h.service.Get(r.Context(), mux.Vars(r)["artworkId"])
	if err != nil {
		response.FromError(w, "Failed to retrieve artwork details", err)
		return
	}

	response.Success(w, artwork, "Artwork details retrieved successfully")
}

// HandleDelete - DELETE /gallery/{artworkId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["artworkId"]); err != nil {
		response.FromError(w, "Failed to delete artwork", err)
		return
	}

	response.Success(w, nil, "Artwork deleted successfully")
}

// HandleToggleFavorite - PATCH /gallery/{artworkId}/favorite
func (h *Handler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	artwork, err := h.service.ToggleFavorite(r.Context(), mux.Vars(r)["artworkId"])
	if err != nil {
		response.FromError(w, "Failed to toggle favorite", err)
		return
	}

	response.Success(w, artwork, "Favorite status updated")
}

func parseFilter(emotion, dateFrom, dateTo string) (model.ArtworkFilter, error) {
	var filter model.ArtworkFilter

	normalized, err := validator.ValidateEmotion(emotion)
	if err != nil {
		return filter, err
	}
	filter.Emotion = normalized

	if filter.DateFrom, err = validator.ParseDate("dateFrom", dateFrom, false); err != nil {
		return filter, err
	}
	if filter.DateTo, err = validator.ParseDate("dateTo", dateTo, true); err != nil {
		return filter, err
	}

	return filter, nil
}
