package repositories

import (
	"context"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
)

// LedgerRepositoryFacade is the store capability consumed by the transaction
// processor: the idempotency check and the single atomic unit of work that
// mutates a wallet and appends the matching journal entry.
type LedgerRepositoryFacade interface {
	// TransactionExists reports whether a journal entry with this external ID
	// has already been committed.
	TransactionExists(ctx context.Context, externalID string) (bool, error)

	// ApplyTransaction appends txn to the journal and, when update is non-nil,
	// applies the conditional balance write in the same database transaction.
	// The whole unit commits or rolls back together.
	//
	// Error contract:
	//   apperrors.ErrConflict  - the version token no longer matched; nothing was written.
	//   apperrors.ErrDuplicate - the external ID unique constraint fired; nothing was written.
	// Any other error means the unit was rolled back for infrastructure reasons.
	ApplyTransaction(ctx context.Context, txn domain.Transaction, update *domain.BalanceUpdate) error

	// FindTransactionsByPlayerID returns up to limit journal entries for the
	// player, newest first.
	FindTransactionsByPlayerID(ctx context.Context, playerID string, limit int) ([]domain.Transaction, error)
}
