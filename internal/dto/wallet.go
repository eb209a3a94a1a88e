package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
)

// RegisterWalletRequest defines the data needed to register a new wallet.
type RegisterWalletRequest struct {
	PlayerID string `json:"playerId" binding:"required,uuid"`
}

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	PlayerID  string          `json:"playerId"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		PlayerID:  w.PlayerID,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
	}
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	PlayerID string          `json:"playerId"`
	Balance  decimal.Decimal `json:"balance"`
}

// FundsRequest defines the data needed for a deposit or withdrawal.
type FundsRequest struct {
	PlayerID   string          `json:"playerId" binding:"required,uuid"`
	ExternalID string          `json:"externalId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// GameTransactionRequest defines the data needed for a stake, win or
// round settlement coming from the game engine. Kind is optional: the game
// facades default it per operation and only honour the freespin variants.
type GameTransactionRequest struct {
	PlayerID   string                 `json:"playerId" binding:"required,uuid"`
	ExternalID string                 `json:"externalId" binding:"required"`
	Amount     decimal.Decimal        `json:"amount" binding:"required"`
	Kind       domain.TransactionKind `json:"kind" binding:"omitempty,txkind"`
}
