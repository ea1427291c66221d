package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stakeit-app/stakeit-api/internal/auth"
	"github.com/stakeit-app/stakeit-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create goal")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	responses, err := h.service.List(r.Context(), userID, query.Get("category"), query.Get("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to list goals")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := goalIDFromRequest(w, r)
	if !ok {
		return
	}

	response, err := h.service.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch goal")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := goalIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(r.Context(), id, userID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrGoalNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update goal")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := goalIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete goal")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	categories, err := h.service.Categories(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, categories)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrEndDateNotFuture) ||
		errors.Is(err, ErrInvalidStake)
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return uuid.MustParse(claims.UserID), true
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
