package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceCache is a best-effort read cache for wallet balances. A nil
// implementation is valid: callers must treat every method as optional and
// never let a cache failure surface to the player.
type BalanceCache interface {
	// GetBalance returns (balance, true) on a hit and (zero, false) on a miss.
	GetBalance(ctx context.Context, playerID string) (decimal.Decimal, bool, error)

	SetBalance(ctx context.Context, playerID string, balance decimal.Decimal) error

	// Invalidate drops the cached balance after a committed mutation.
	Invalidate(ctx context.Context, playerID string) error
}
