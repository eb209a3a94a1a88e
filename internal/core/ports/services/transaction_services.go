package services

import (
	"context"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
)

// TransactionSvcFacade is the transaction processor: the sole authority
// permitted to mutate wallet balances and append journal entries.
type TransactionSvcFacade interface {
	// ProcessTransaction validates the request, applies it exactly once and
	// returns the outcome. It never returns an error: every failure mode is
	// folded into the outcome's status code so callers always receive the
	// stable taxonomy.
	ProcessTransaction(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome

	// ListTransactions returns up to limit journal entries for the player,
	// newest first.
	ListTransactions(ctx context.Context, playerID string, limit int) ([]domain.Transaction, error)
}
