package domain

// TransactionStatus is the closed set of processing outcomes. The numeric
// values are a stable contract with upstream game engines and must not change.
type TransactionStatus int

const (
	StatusGeneralError         TransactionStatus = 0
	StatusSuccess              TransactionStatus = 1
	StatusDuplicateTransaction TransactionStatus = 2
	StatusInsufficientFunds    TransactionStatus = 3
	StatusWalletNotFound       TransactionStatus = 4
	StatusConcurrencyConflict  TransactionStatus = 5
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusGeneralError:
		return "GENERAL_ERROR"
	case StatusSuccess:
		return "SUCCESS"
	case StatusDuplicateTransaction:
		return "DUPLICATE_TRANSACTION"
	case StatusInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	case StatusWalletNotFound:
		return "WALLET_NOT_FOUND"
	case StatusConcurrencyConflict:
		return "CONCURRENCY_CONFLICT"
	default:
		return "UNKNOWN"
	}
}

// Succeeded reports whether a processing run with this status satisfied the
// caller's intent. A duplicate is a success: the original effect already
// exists, so the replay is answered affirmatively without a new mutation.
func (s TransactionStatus) Succeeded() bool {
	return s == StatusSuccess || s == StatusDuplicateTransaction
}
