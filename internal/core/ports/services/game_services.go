package services

import (
	"context"

	"github.com/KamilKvasnicka/player-wallet/internal/dto"
)

// GameSvcFacade maps game-engine verbs (stake, win, end of round) onto the
// transaction processor. It normalizes the transaction kind but adds no
// consistency logic of its own.
type GameSvcFacade interface {
	// Stake processes a bet. A request already marked as a freespin keeps the
	// freespin kind (journal-only); anything else is processed as a stake.
	Stake(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome

	// Win credits winnings. A request marked as a freespin win keeps that
	// kind; anything else is processed as a regular win.
	Win(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome

	// EndRound settles a finished game round.
	EndRound(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome
}
