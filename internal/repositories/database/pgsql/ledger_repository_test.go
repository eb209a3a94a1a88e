package pgsql

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KamilKvasnicka/player-wallet/internal/apperrors"
	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
)

// fakeTx records executed statements so the write order inside the atomic
// unit can be asserted without a live database. Unstubbed pgx.Tx methods
// panic if reached.
type fakeTx struct {
	pgx.Tx
	execs     []string
	insertErr error
	updateTag pgconn.CommandTag
	updateErr error
}

func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	switch {
	case strings.Contains(sql, "INSERT INTO transactions"):
		return pgconn.NewCommandTag("INSERT 0 1"), f.insertErr
	case strings.Contains(sql, "UPDATE wallets"):
		return f.updateTag, f.updateErr
	default:
		return pgconn.CommandTag{}, nil
	}
}

func testTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		ExternalID:    uuid.NewString(),
		PlayerID:      uuid.NewString(),
		Amount:        decimal.RequireFromString("20.00"),
		Kind:          domain.KindStake,
		CreatedAt:     time.Now().UTC(),
	}
}

func testUpdate(playerID string) *domain.BalanceUpdate {
	return &domain.BalanceUpdate{
		PlayerID:        playerID,
		NewBalance:      decimal.RequireFromString("80.00"),
		ExpectedVersion: 3,
	}
}

func TestApplyTransactionInTx_JournalInsertPrecedesBalanceUpdate(t *testing.T) {
	txn := testTransaction()
	tx := &fakeTx{updateTag: pgconn.NewCommandTag("UPDATE 1")}

	err := applyTransactionInTx(context.Background(), tx, txn, testUpdate(txn.PlayerID))

	require.NoError(t, err)
	require.Len(t, tx.execs, 2)
	assert.Contains(t, tx.execs[0], "INSERT INTO transactions")
	assert.Contains(t, tx.execs[1], "UPDATE wallets")
}

func TestApplyTransactionInTx_DuplicateDetectedBeforeBalanceWrite(t *testing.T) {
	txn := testTransaction()
	// A concurrent writer already journaled this external ID; the unique
	// index rejects the insert once that writer commits.
	tx := &fakeTx{insertErr: &pgconn.PgError{Code: "23505"}}

	err := applyTransactionInTx(context.Background(), tx, txn, testUpdate(txn.PlayerID))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
	// The balance write must never have been attempted.
	require.Len(t, tx.execs, 1)
	assert.Contains(t, tx.execs[0], "INSERT INTO transactions")
}

func TestApplyTransactionInTx_StaleVersionIsConflict(t *testing.T) {
	txn := testTransaction()
	tx := &fakeTx{updateTag: pgconn.NewCommandTag("UPDATE 0")}

	err := applyTransactionInTx(context.Background(), tx, txn, testUpdate(txn.PlayerID))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestApplyTransactionInTx_JournalOnlySkipsBalanceWrite(t *testing.T) {
	txn := testTransaction()
	txn.Kind = domain.KindFreespin
	tx := &fakeTx{}

	err := applyTransactionInTx(context.Background(), tx, txn, nil)

	require.NoError(t, err)
	require.Len(t, tx.execs, 1)
	assert.Contains(t, tx.execs[0], "INSERT INTO transactions")
}
