package checkin

import (
	"time"

	"github.com/google/uuid"
	"github.com/stakeit-app/stakeit-api/internal/goal"
)

// ProgressLog records one check-in for a goal on one calendar day. The
// composite unique index is the source of truth for the one-per-day rule;
// concurrent inserts for the same day race on the constraint, not on an
// application-level read.
type ProgressLog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	GoalID    uuid.UUID `gorm:"column:goal_id;not null;uniqueIndex:idx_progress_goal_date" json:"goal_id"`
	Goal      goal.Goal `gorm:"foreignKey:GoalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_progress_goal_date" json:"date"`
	CheckedIn bool      `gorm:"not null" json:"checked_in"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
