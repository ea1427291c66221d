package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stakeit-app/stakeit-api/internal/user"
	"gorm.io/datatypes"
)

type Goal struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `json:"description,omitempty"`
	Category    string                      `json:"category,omitempty"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	StartDate   time.Time                   `gorm:"not null" json:"start_date"`
	EndDate     time.Time                   `gorm:"not null" json:"end_date"`
	StakeAmount decimal.Decimal             `gorm:"type:numeric(12,2);not null" json:"stake_amount"`
	Status      GoalStatus                  `gorm:"type:varchar(16);not null;default:'ACTIVE'" json:"status"`
	UserID      uuid.UUID                   `gorm:"column:user_id;not null;index" json:"user_id"`
	User        user.User                   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
