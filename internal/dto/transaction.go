package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
)

// TransactionRequest defines the data needed to process a wallet transaction.
// ExternalID is the caller supplied idempotency key: replays with the same
// value are acknowledged without touching the balance again.
type TransactionRequest struct {
	PlayerID   string                 `json:"playerId" binding:"required,uuid"`
	ExternalID string                 `json:"externalId" binding:"required"`
	Amount     decimal.Decimal        `json:"amount" binding:"required"`
	Kind       domain.TransactionKind `json:"kind"`
}

// TransactionOutcome describes the result of processing a transaction.
// Success mirrors StatusCode.Succeeded() so callers do not need to hardcode
// the status taxonomy.
type TransactionOutcome struct {
	Success    bool                     `json:"success"`
	StatusCode domain.TransactionStatus `json:"statusCode"`
	Status     string                   `json:"status"`
	PlayerID   string                   `json:"playerId"`
	ExternalID string                   `json:"externalId"`
	Amount     decimal.Decimal          `json:"amount"`
	Kind       domain.TransactionKind   `json:"kind"`
}

// NewTransactionOutcome builds an outcome for the given request and status.
func NewTransactionOutcome(req TransactionRequest, status domain.TransactionStatus) TransactionOutcome {
	return TransactionOutcome{
		Success:    status.Succeeded(),
		StatusCode: status,
		Status:     status.String(),
		PlayerID:   req.PlayerID,
		ExternalID: req.ExternalID,
		Amount:     req.Amount,
		Kind:       req.Kind,
	}
}

// TransactionResponse defines the data returned for a single ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionId"`
	ExternalID    string                 `json:"externalId"`
	PlayerID      string                 `json:"playerId"`
	Amount        decimal.Decimal        `json:"amount"`
	Kind          domain.TransactionKind `json:"kind"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		ExternalID:    txn.ExternalID,
		PlayerID:      txn.PlayerID,
		Amount:        txn.Amount,
		Kind:          txn.Kind,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing a player's ledger.
type ListTransactionsParams struct {
	Limit int `form:"limit,default=50"`
}

// ListTransactionsResponse wraps the list of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
