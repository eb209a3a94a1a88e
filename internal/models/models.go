package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the database representation of a player wallet row.
type Wallet struct {
	PlayerID  string          `db:"player_id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	Version   int64           `db:"version"`
}

// Transaction is the database representation of a journal row.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	ExternalID    string          `db:"external_id"`
	PlayerID      string          `db:"player_id"`
	Amount        decimal.Decimal `db:"amount"`
	Kind          string          `db:"kind"`
	CreatedAt     time.Time       `db:"created_at"`
}
