package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the durable balance record for a single player.
type Wallet struct {
	PlayerID  string          `json:"playerId"`  // Primary key (UUID)
	Balance   decimal.Decimal `json:"balance"`   // Never negative at a committed state
	CreatedAt time.Time       `json:"createdAt"` // UTC
	Version   int64           `json:"version"`   // Optimistic concurrency token, +1 per mutation
}

// BalanceUpdate describes a conditional wallet mutation. The write must only
// succeed if the stored version still equals ExpectedVersion.
type BalanceUpdate struct {
	PlayerID        string
	NewBalance      decimal.Decimal
	ExpectedVersion int64
}
