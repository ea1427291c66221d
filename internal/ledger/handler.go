package ledger

import (
	"errors"
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	txns, err := h.service.ListByUser(r.Context(), userID, r.URL.Query().Get("type"))
	if err != nil {
		if errors.Is(err, ErrInvalidType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to list transactions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, txns)
}
