package analytics

import "github.com/shopspring/decimal"

type Summary struct {
	TotalGoals     int             `json:"total_goals"`
	ActiveGoals    int             `json:"active_goals"`
	CompletedGoals int             `json:"completed_goals"`
	FailedGoals    int             `json:"failed_goals"`
	SuccessRate    int             `json:"success_rate"`
	TotalStaked    decimal.Decimal `json:"total_staked"`
	TotalRefunded  decimal.Decimal `json:"total_refunded"`
	TotalForfeited decimal.Decimal `json:"total_forfeited"`
	NetAmount      decimal.Decimal `json:"net_amount"`
}
