package checkin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stakeit-app/stakeit-api/internal/auth"
	"github.com/stakeit-app/stakeit-api/internal/config"
	"github.com/stakeit-app/stakeit-api/internal/goal"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type checkInBody struct {
	Notes string `json:"notes"`
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, ok := goalIDFromRequest(w, r)
	if !ok {
		return
	}

	var body checkInBody
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.WithError(err).Error("Invalid request body")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	userID := uuid.MustParse(claims.UserID)
	entry, err := h.service.CheckIn(r.Context(), goalID, userID, body.Notes)
	if err != nil {
		switch {
		case errors.Is(err, goal.ErrGoalNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrGoalNotActive), errors.Is(err, ErrGoalExpired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrAlreadyCheckedIn):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.WithError(err).Error("Failed to check in")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, entry)
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, ok := goalIDFromRequest(w, r)
	if !ok {
		return
	}

	userID := uuid.MustParse(claims.UserID)
	progress, err := h.service.GetProgress(r.Context(), goalID, userID)
	if err != nil {
		if errors.Is(err, goal.ErrGoalNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, progress)
}

func goalIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
