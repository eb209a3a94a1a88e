package services

import (
	"context"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
	"github.com/shopspring/decimal"
)

// WalletSvcFacade maps the player-facing wallet verbs onto the transaction
// processor and the wallet CRUD repository.
type WalletSvcFacade interface {
	// RegisterWallet creates a zero-balance wallet for the player. Returns
	// apperrors.ErrDuplicate if one already exists.
	RegisterWallet(ctx context.Context, playerID string) (*domain.Wallet, error)

	// DeleteWallet removes the player's wallet. Returns apperrors.ErrNotFound
	// if none exists.
	DeleteWallet(ctx context.Context, playerID string) error

	// GetBalance returns the current balance. Returns apperrors.ErrNotFound
	// if the player has no wallet.
	GetBalance(ctx context.Context, playerID string) (decimal.Decimal, error)

	// GetTransactions returns the player's journal entries, newest first.
	GetTransactions(ctx context.Context, playerID string, limit int) ([]domain.Transaction, error)

	Deposit(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome
	Withdraw(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome
}
