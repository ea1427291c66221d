package ledger

type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "DEPOSIT"
	TransactionTypeRefund  TransactionType = "REFUND"
	TransactionTypeForfeit TransactionType = "FORFEIT"
)

var AllTypes = []TransactionType{
	TransactionTypeDeposit,
	TransactionTypeRefund,
	TransactionTypeForfeit,
}

func (t TransactionType) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)
