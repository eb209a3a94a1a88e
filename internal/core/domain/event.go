package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletUpdateEvent is published to the message bus after every committed
// balance mutation. Delivery is best-effort after commit, so subscribers must
// tolerate both loss and redelivery.
type WalletUpdateEvent struct {
	PlayerID   string          `json:"playerId"`
	ExternalID string          `json:"externalId"`
	Amount     decimal.Decimal `json:"amount"`
	Timestamp  time.Time       `json:"timestamp"`
}
