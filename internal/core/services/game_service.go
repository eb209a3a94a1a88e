package services

import (
	"context"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
)

// gameService normalizes game-engine requests into ledger transaction kinds
// and hands them to the processor. It holds no state of its own.
type gameService struct {
	transactionSvc portssvc.TransactionSvcFacade
}

// NewGameService creates a new GameService.
func NewGameService(transactionSvc portssvc.TransactionSvcFacade) portssvc.GameSvcFacade {
	return &gameService{transactionSvc: transactionSvc}
}

// Ensure gameService implements the portssvc.GameSvcFacade interface
var _ portssvc.GameSvcFacade = (*gameService)(nil)

// Stake processes a bet. Freespin bets keep their kind so they stay
// journal-only; everything else is debited as a stake.
func (s *gameService) Stake(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome {
	if req.Kind != domain.KindFreespin {
		req.Kind = domain.KindStake
	}
	return s.transactionSvc.ProcessTransaction(ctx, req)
}

// Win credits winnings, preserving the freespin-win kind when supplied.
func (s *gameService) Win(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome {
	if req.Kind != domain.KindFreespinWin {
		req.Kind = domain.KindWin
	}
	return s.transactionSvc.ProcessTransaction(ctx, req)
}

// EndRound settles a finished round as a credit.
func (s *gameService) EndRound(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome {
	req.Kind = domain.KindEndRound
	return s.transactionSvc.ProcessTransaction(ctx, req)
}
