package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateGoalDTO struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Tags        string          `json:"tags"`
	EndDate     time.Time       `json:"end_date"`
	StakeAmount decimal.Decimal `json:"stake_amount"`
}

type UpdateGoalDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EndDate     *time.Time `json:"end_date"`
}

type GoalResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	Category           string          `json:"category,omitempty"`
	Tags               []string        `json:"tags"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	StakeAmount        decimal.Decimal `json:"stake_amount"`
	Status             GoalStatus      `json:"status"`
	UserID             uuid.UUID       `json:"user_id"`
	TotalDays          int             `json:"total_days"`
	CompletedDays      int             `json:"completed_days"`
	ProgressPercentage int             `json:"progress_percentage"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
