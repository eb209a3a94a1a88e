package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	portsrepo "github.com/KamilKvasnicka/player-wallet/internal/core/ports/repositories"
	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
	"github.com/KamilKvasnicka/player-wallet/internal/middleware"
)

// walletService provides wallet lifecycle and player-facing fund operations.
type walletService struct {
	walletRepo     portsrepo.WalletRepositoryFacade
	transactionSvc portssvc.TransactionSvcFacade
	cache          portssvc.BalanceCache
}

// NewWalletService creates a new WalletService. cache may be nil.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, transactionSvc portssvc.TransactionSvcFacade, cache portssvc.BalanceCache) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo:     walletRepo,
		transactionSvc: transactionSvc,
		cache:          cache,
	}
}

// Ensure walletService implements the portssvc.WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// RegisterWallet creates a zero-balance wallet for the player.
func (s *walletService) RegisterWallet(ctx context.Context, playerID string) (*domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	wallet := domain.Wallet{
		PlayerID:  playerID,
		Balance:   decimal.Zero,
		CreatedAt: time.Now().UTC(),
		Version:   1,
	}
	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		logger.Warn("Failed to register wallet", slog.String("player_id", playerID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Wallet registered", slog.String("player_id", playerID))
	return &wallet, nil
}

// DeleteWallet removes the player's wallet and any cached balance.
func (s *walletService) DeleteWallet(ctx context.Context, playerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.walletRepo.DeleteWallet(ctx, playerID); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, playerID); err != nil {
			logger.Warn("Failed to drop cached balance for deleted wallet", slog.String("player_id", playerID), slog.String("error", err.Error()))
		}
	}

	logger.Info("Wallet deleted", slog.String("player_id", playerID))
	return nil
}

// GetBalance returns the player's balance, served from the cache when warm.
func (s *walletService) GetBalance(ctx context.Context, playerID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.cache != nil {
		balance, hit, err := s.cache.GetBalance(ctx, playerID)
		if err != nil {
			logger.Warn("Balance cache lookup failed", slog.String("player_id", playerID), slog.String("error", err.Error()))
		} else if hit {
			return balance, nil
		}
	}

	wallet, err := s.walletRepo.FindWalletByPlayerID(ctx, playerID)
	if err != nil {
		return decimal.Zero, err
	}

	if s.cache != nil {
		if err := s.cache.SetBalance(ctx, playerID, wallet.Balance); err != nil {
			logger.Warn("Failed to cache balance", slog.String("player_id", playerID), slog.String("error", err.Error()))
		}
	}
	return wallet.Balance, nil
}

// GetTransactions returns the player's journal entries, newest first.
func (s *walletService) GetTransactions(ctx context.Context, playerID string, limit int) ([]domain.Transaction, error) {
	return s.transactionSvc.ListTransactions(ctx, playerID, limit)
}

// Deposit credits funds onto the player's wallet.
func (s *walletService) Deposit(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome {
	req.Kind = domain.KindDeposit
	return s.transactionSvc.ProcessTransaction(ctx, req)
}

// Withdraw debits funds from the player's wallet.
func (s *walletService) Withdraw(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome {
	req.Kind = domain.KindWithdraw
	return s.transactionSvc.ProcessTransaction(ctx, req)
}
