package goal

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusFailed    GoalStatus = "FAILED"
	GoalStatusCancelled GoalStatus = "CANCELLED"
)

var AllStatuses = []GoalStatus{
	GoalStatusActive,
	GoalStatusCompleted,
	GoalStatusFailed,
	GoalStatusCancelled,
}

func (s GoalStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a goal in this status can never change again.
// Terminal goals accept no check-ins and are skipped by the sweeper.
func (s GoalStatus) IsTerminal() bool {
	return s == GoalStatusCompleted || s == GoalStatusFailed || s == GoalStatusCancelled
}
