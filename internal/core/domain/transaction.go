package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies the balance-affecting operation a journal entry
// records. The direction of the balance change is carried by the kind, not by
// the sign of the stored amount.
type TransactionKind string

const (
	KindDeposit     TransactionKind = "DEPOSIT"
	KindWithdraw    TransactionKind = "WITHDRAW"
	KindStake       TransactionKind = "STAKE"
	KindWin         TransactionKind = "WIN"
	KindEndRound    TransactionKind = "END_ROUND"
	KindFreespin    TransactionKind = "FREESPIN"
	KindFreespinWin TransactionKind = "FREESPIN_WIN"
)

// kindBehavior describes what a kind does to the wallet balance.
// Freespin is journal-only: it records promotional play without touching the
// balance, so it is exempt from the sufficiency check as well.
type kindBehavior struct {
	affectsBalance bool
	sign           int // +1 credits the wallet, -1 debits it, 0 for journal-only
}

var kindBehaviors = map[TransactionKind]kindBehavior{
	KindDeposit:     {affectsBalance: true, sign: +1},
	KindWithdraw:    {affectsBalance: true, sign: -1},
	KindStake:       {affectsBalance: true, sign: -1},
	KindWin:         {affectsBalance: true, sign: +1},
	KindEndRound:    {affectsBalance: true, sign: +1},
	KindFreespin:    {affectsBalance: false, sign: 0},
	KindFreespinWin: {affectsBalance: true, sign: +1},
}

// Valid reports whether k is a known transaction kind.
func (k TransactionKind) Valid() bool {
	_, ok := kindBehaviors[k]
	return ok
}

// AffectsBalance reports whether applying k mutates the wallet balance.
func (k TransactionKind) AffectsBalance() bool {
	return kindBehaviors[k].affectsBalance
}

// Sign returns the balance delta direction for k: +1, -1, or 0.
func (k TransactionKind) Sign() int {
	return kindBehaviors[k].sign
}

// Debits reports whether k withdraws funds and therefore requires a
// sufficient balance.
func (k TransactionKind) Debits() bool {
	b := kindBehaviors[k]
	return b.affectsBalance && b.sign < 0
}

// Transaction is one immutable journal entry: a single applied
// balance-affecting operation. Created exactly once per ExternalID,
// atomically with the wallet mutation it represents.
type Transaction struct {
	TransactionID string          `json:"transactionId"` // Primary key (UUID), system-generated
	ExternalID    string          `json:"externalId"`    // Caller-supplied idempotency key, globally unique
	PlayerID      string          `json:"playerId"`      // FK -> Wallet.PlayerID
	Amount        decimal.Decimal `json:"amount"`        // Magnitude as supplied; direction lives in Kind
	Kind          TransactionKind `json:"kind"`
	CreatedAt     time.Time       `json:"createdAt"` // Commit time, assigned by the processor
}
