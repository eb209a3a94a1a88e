package repositories

import (
	"context"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
)

// WalletRepositoryFacade covers the plain CRUD lifecycle of wallet records.
// Balance mutations never go through this interface; they belong to the
// ledger repository's atomic path.
type WalletRepositoryFacade interface {
	// SaveWallet inserts a new wallet. Returns apperrors.ErrDuplicate if the
	// player already has one.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// FindWalletByPlayerID returns the wallet including its current version
	// token. Returns apperrors.ErrNotFound if none exists.
	FindWalletByPlayerID(ctx context.Context, playerID string) (*domain.Wallet, error)

	// DeleteWallet removes a wallet. Returns apperrors.ErrNotFound if none exists.
	DeleteWallet(ctx context.Context, playerID string) error
}
