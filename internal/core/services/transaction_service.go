package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KamilKvasnicka/player-wallet/internal/apperrors"
	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	portsrepo "github.com/KamilKvasnicka/player-wallet/internal/core/ports/repositories"
	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
	"github.com/KamilKvasnicka/player-wallet/internal/middleware"
)

// maxAmountScale is the finest monetary granularity the ledger accepts.
const maxAmountScale = 2

// transactionService applies wallet transactions against the ledger.
type transactionService struct {
	walletRepo portsrepo.WalletRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	bus        portssvc.MessageBus
	cache      portssvc.BalanceCache
	queueName  string
}

// NewTransactionService creates a new TransactionService. bus and cache may be
// nil, in which case event publication and cache invalidation are skipped.
func NewTransactionService(walletRepo portsrepo.WalletRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, bus portssvc.MessageBus, cache portssvc.BalanceCache, queueName string) portssvc.TransactionSvcFacade {
	return &transactionService{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		bus:        bus,
		cache:      cache,
		queueName:  queueName,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ProcessTransaction runs a single wallet transaction through the full
// pipeline: validation, idempotency check, balance rules, the atomic
// balance+journal write, and post-commit notification. It never returns an
// error; every failure mode is folded into the outcome status so the caller
// can relay it verbatim.
func (s *transactionService) ProcessTransaction(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Kind.Valid() {
		logger.Warn("Rejected transaction with unknown kind", slog.String("external_id", req.ExternalID), slog.String("kind", string(req.Kind)))
		return dto.NewTransactionOutcome(req, domain.StatusGeneralError)
	}
	// Amounts finer than cents cannot be represented in the wallet balance.
	if !req.Amount.Equal(req.Amount.Round(maxAmountScale)) {
		logger.Warn("Rejected transaction with too many decimal places", slog.String("external_id", req.ExternalID), slog.String("amount", req.Amount.String()))
		return dto.NewTransactionOutcome(req, domain.StatusGeneralError)
	}

	// Cheap replay check before any wallet work. The unique constraint on
	// external_id still backstops races that slip past it.
	exists, err := s.ledgerRepo.TransactionExists(ctx, req.ExternalID)
	if err != nil {
		logger.Error("Failed to check for duplicate transaction", slog.String("external_id", req.ExternalID), slog.String("error", err.Error()))
		return dto.NewTransactionOutcome(req, domain.StatusGeneralError)
	}
	if exists {
		logger.Info("Acknowledged duplicate transaction", slog.String("external_id", req.ExternalID), slog.String("player_id", req.PlayerID))
		return dto.NewTransactionOutcome(req, domain.StatusDuplicateTransaction)
	}

	wallet, err := s.walletRepo.FindWalletByPlayerID(ctx, req.PlayerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction for unknown wallet", slog.String("player_id", req.PlayerID), slog.String("external_id", req.ExternalID))
			return dto.NewTransactionOutcome(req, domain.StatusWalletNotFound)
		}
		logger.Error("Failed to load wallet", slog.String("player_id", req.PlayerID), slog.String("error", err.Error()))
		return dto.NewTransactionOutcome(req, domain.StatusGeneralError)
	}

	if req.Kind.Debits() && wallet.Balance.LessThan(req.Amount) {
		logger.Info("Insufficient funds for transaction", slog.String("player_id", req.PlayerID), slog.String("external_id", req.ExternalID), slog.String("balance", wallet.Balance.String()), slog.String("amount", req.Amount.String()))
		return dto.NewTransactionOutcome(req, domain.StatusInsufficientFunds)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ExternalID:    req.ExternalID,
		PlayerID:      req.PlayerID,
		Amount:        req.Amount,
		Kind:          req.Kind,
		CreatedAt:     now,
	}

	var update *domain.BalanceUpdate
	if req.Kind.AffectsBalance() {
		delta := req.Amount.Mul(decimal.NewFromInt(int64(req.Kind.Sign())))
		update = &domain.BalanceUpdate{
			PlayerID:        req.PlayerID,
			NewBalance:      wallet.Balance.Add(delta),
			ExpectedVersion: wallet.Version,
		}
	}

	if err := s.ledgerRepo.ApplyTransaction(ctx, txn, update); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Concurrent update detected for wallet", slog.String("player_id", req.PlayerID), slog.String("external_id", req.ExternalID))
			return dto.NewTransactionOutcome(req, domain.StatusConcurrencyConflict)
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Info("Duplicate transaction caught by journal constraint", slog.String("external_id", req.ExternalID))
			return dto.NewTransactionOutcome(req, domain.StatusDuplicateTransaction)
		default:
			logger.Error("Failed to apply transaction", slog.String("external_id", req.ExternalID), slog.String("error", err.Error()))
			return dto.NewTransactionOutcome(req, domain.StatusGeneralError)
		}
	}

	s.afterCommit(ctx, txn)

	logger.Info("Transaction processed successfully", slog.String("player_id", req.PlayerID), slog.String("external_id", req.ExternalID), slog.String("kind", string(req.Kind)))
	return dto.NewTransactionOutcome(req, domain.StatusSuccess)
}

// afterCommit performs the best-effort post-commit work: dropping the cached
// balance and publishing the wallet update event. Neither failure can change
// the already committed outcome, so both are only logged.
func (s *transactionService) afterCommit(ctx context.Context, txn domain.Transaction) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, txn.PlayerID); err != nil {
			logger.Warn("Failed to invalidate cached balance", slog.String("player_id", txn.PlayerID), slog.String("error", err.Error()))
		}
	}

	if s.bus != nil {
		event := domain.WalletUpdateEvent{
			PlayerID:   txn.PlayerID,
			ExternalID: txn.ExternalID,
			Amount:     txn.Amount,
			Timestamp:  txn.CreatedAt,
		}
		if err := s.bus.Publish(ctx, s.queueName, event); err != nil {
			logger.Error("Failed to publish wallet update event", slog.String("player_id", txn.PlayerID), slog.String("external_id", txn.ExternalID), slog.String("error", err.Error()))
		}
	}
}

// ListTransactions returns the most recent ledger entries for a player.
func (s *transactionService) ListTransactions(ctx context.Context, playerID string, limit int) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.walletRepo.FindWalletByPlayerID(ctx, playerID); err != nil {
		return nil, err
	}

	txns, err := s.ledgerRepo.FindTransactionsByPlayerID(ctx, playerID, limit)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("player_id", playerID), slog.String("error", err.Error()))
		return nil, err
	}
	return txns, nil
}
