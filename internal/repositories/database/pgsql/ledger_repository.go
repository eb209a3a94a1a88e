package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KamilKvasnicka/player-wallet/internal/apperrors"
	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	portsrepo "github.com/KamilKvasnicka/player-wallet/internal/core/ports/repositories"
	"github.com/KamilKvasnicka/player-wallet/internal/models"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the transaction journal.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction for DB storage
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		ExternalID:    d.ExternalID,
		PlayerID:      d.PlayerID,
		Amount:        d.Amount,
		Kind:          string(d.Kind),
		CreatedAt:     d.CreatedAt,
	}
}

// Helper to convert models.Transaction from DB to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ExternalID:    m.ExternalID,
		PlayerID:      m.PlayerID,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		CreatedAt:     m.CreatedAt,
	}
}

// TransactionExists reports whether a journal entry with this external ID has
// already been committed.
func (r *PgxLedgerRepository) TransactionExists(ctx context.Context, externalID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE external_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, externalID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check external ID %s: %w", externalID, err)
	}
	return exists, nil
}

// ApplyTransaction writes the journal entry and the conditional balance update
// in a single database transaction. The version predicate on the UPDATE is the
// optimistic lock: zero affected rows means another writer got there first.
// The unique constraint on external_id backstops duplicate requests that raced
// past the pre-check.
func (r *PgxLedgerRepository) ApplyTransaction(ctx context.Context, txn domain.Transaction, update *domain.BalanceUpdate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if err := applyTransactionInTx(ctx, tx, txn, update); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// applyTransactionInTx runs the journal INSERT before the versioned UPDATE.
// The order matters: a concurrent replay of the same external ID must block on
// the unique-index entry and surface as ErrDuplicate once the first writer
// commits. With the UPDATE first it would trip the version predicate instead
// and be misreported as a conflict.
func applyTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, update *domain.BalanceUpdate) error {
	modelTxn := toModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (transaction_id, external_id, player_id, amount, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, insertQuery,
		modelTxn.TransactionID,
		modelTxn.ExternalID,
		modelTxn.PlayerID,
		modelTxn.Amount,
		modelTxn.Kind,
		modelTxn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: transaction %s already journaled", apperrors.ErrDuplicate, modelTxn.ExternalID)
			}
		}
		return fmt.Errorf("failed to insert transaction %s: %w", modelTxn.ExternalID, err)
	}

	if update != nil {
		updateQuery := `
			UPDATE wallets
			SET balance = $2, version = version + 1
			WHERE player_id = $1 AND version = $3;
		`
		tag, err := tx.Exec(ctx, updateQuery, update.PlayerID, update.NewBalance, update.ExpectedVersion)
		if err != nil {
			return fmt.Errorf("failed to update balance for player %s: %w", update.PlayerID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: wallet for player %s changed concurrently", apperrors.ErrConflict, update.PlayerID)
		}
	}

	return nil
}

// FindTransactionsByPlayerID returns up to limit journal entries for the
// player, newest first.
func (r *PgxLedgerRepository) FindTransactionsByPlayerID(ctx context.Context, playerID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, external_id, player_id, amount, kind, created_at
		FROM transactions
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for player %s: %w", playerID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var modelTxn models.Transaction
		if err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.ExternalID,
			&modelTxn.PlayerID,
			&modelTxn.Amount,
			&modelTxn.Kind,
			&modelTxn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(modelTxn))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}

	return txns, nil
}
