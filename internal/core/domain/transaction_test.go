package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
)

func TestTransactionKindBehavior(t *testing.T) {
	tests := []struct {
		kind           domain.TransactionKind
		affectsBalance bool
		sign           int
	}{
		{domain.KindDeposit, true, 1},
		{domain.KindWithdraw, true, -1},
		{domain.KindStake, true, -1},
		{domain.KindWin, true, 1},
		{domain.KindEndRound, true, 1},
		{domain.KindFreespin, false, 0},
		{domain.KindFreespinWin, true, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.affectsBalance, tt.kind.AffectsBalance())
			assert.Equal(t, tt.sign, tt.kind.Sign())
		})
	}
}

func TestTransactionKindDebits(t *testing.T) {
	assert.True(t, domain.KindWithdraw.Debits())
	assert.True(t, domain.KindStake.Debits())
	assert.False(t, domain.KindDeposit.Debits())
	assert.False(t, domain.KindWin.Debits())
	// Freespins never touch the balance, so they cannot debit.
	assert.False(t, domain.KindFreespin.Debits())
}

func TestTransactionKindValid(t *testing.T) {
	assert.False(t, domain.TransactionKind("").Valid())
	assert.False(t, domain.TransactionKind("REFUND").Valid())
	assert.False(t, domain.TransactionKind("deposit").Valid())
}

func TestStatusSucceeded(t *testing.T) {
	assert.True(t, domain.StatusSuccess.Succeeded())
	assert.True(t, domain.StatusDuplicateTransaction.Succeeded())
	assert.False(t, domain.StatusGeneralError.Succeeded())
	assert.False(t, domain.StatusInsufficientFunds.Succeeded())
	assert.False(t, domain.StatusWalletNotFound.Succeeded())
	assert.False(t, domain.StatusConcurrencyConflict.Succeeded())
}
