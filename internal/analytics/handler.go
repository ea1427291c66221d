package analytics

import (
	"net/http"

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

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	summary, err := h.service.GetAnalytics(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to compute analytics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}
