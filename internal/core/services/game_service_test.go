package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
	"github.com/KamilKvasnicka/player-wallet/internal/core/services"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockTxnSvc *MockTransactionSvc
	service    portssvc.GameSvcFacade
}

func (suite *GameServiceTestSuite) SetupTest() {
	suite.mockTxnSvc = new(MockTransactionSvc)
	suite.service = services.NewGameService(suite.mockTxnSvc)
}

func (suite *GameServiceTestSuite) gameRequest(kind domain.TransactionKind) dto.TransactionRequest {
	return dto.TransactionRequest{
		PlayerID:   uuid.NewString(),
		ExternalID: uuid.NewString(),
		Amount:     decimal.RequireFromString("5.00"),
		Kind:       kind,
	}
}

func (suite *GameServiceTestSuite) expectKind(ctx context.Context, kind domain.TransactionKind) {
	suite.mockTxnSvc.On("ProcessTransaction", ctx, mock.MatchedBy(func(r dto.TransactionRequest) bool {
		return r.Kind == kind
	})).Return(dto.TransactionOutcome{Success: true, StatusCode: domain.StatusSuccess}).Once()
}

func (suite *GameServiceTestSuite) TestStake_DefaultsToStakeKind() {
	ctx := context.Background()
	suite.expectKind(ctx, domain.KindStake)

	outcome := suite.service.Stake(ctx, suite.gameRequest(""))

	suite.True(outcome.Success)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *GameServiceTestSuite) TestStake_PreservesFreespin() {
	ctx := context.Background()
	suite.expectKind(ctx, domain.KindFreespin)

	outcome := suite.service.Stake(ctx, suite.gameRequest(domain.KindFreespin))

	suite.True(outcome.Success)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *GameServiceTestSuite) TestStake_OverridesOtherKinds() {
	ctx := context.Background()
	suite.expectKind(ctx, domain.KindStake)

	// A deposit smuggled onto the stake endpoint must not credit the wallet.
	outcome := suite.service.Stake(ctx, suite.gameRequest(domain.KindDeposit))

	suite.True(outcome.Success)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *GameServiceTestSuite) TestWin_DefaultsToWinKind() {
	ctx := context.Background()
	suite.expectKind(ctx, domain.KindWin)

	outcome := suite.service.Win(ctx, suite.gameRequest(""))

	suite.True(outcome.Success)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *GameServiceTestSuite) TestWin_PreservesFreespinWin() {
	ctx := context.Background()
	suite.expectKind(ctx, domain.KindFreespinWin)

	outcome := suite.service.Win(ctx, suite.gameRequest(domain.KindFreespinWin))

	suite.True(outcome.Success)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *GameServiceTestSuite) TestEndRound_AlwaysEndRoundKind() {
	ctx := context.Background()
	suite.expectKind(ctx, domain.KindEndRound)

	outcome := suite.service.EndRound(ctx, suite.gameRequest(domain.KindFreespin))

	suite.True(outcome.Success)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
