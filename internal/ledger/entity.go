package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an append-only ledger row. Rows are never updated or
// deleted after creation; corrections are new compensating transactions.
type Transaction struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID         `gorm:"column:user_id;not null;index" json:"user_id"`
	GoalID    uuid.UUID         `gorm:"column:goal_id;not null;index" json:"goal_id"`
	Amount    decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type      TransactionType   `gorm:"type:varchar(16);not null" json:"type"`
	Status    TransactionStatus `gorm:"type:varchar(16);not null" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}
