package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
)

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) FindWalletByPlayerID(ctx context.Context, playerID string) (*domain.Wallet, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) DeleteWallet(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) TransactionExists(ctx context.Context, externalID string) (bool, error) {
	args := m.Called(ctx, externalID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) ApplyTransaction(ctx context.Context, txn domain.Transaction, update *domain.BalanceUpdate) error {
	args := m.Called(ctx, txn, update)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindTransactionsByPlayerID(ctx context.Context, playerID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock MessageBus ---
type MockMessageBus struct {
	mock.Mock
}

func (m *MockMessageBus) Publish(ctx context.Context, queue string, message any) error {
	args := m.Called(ctx, queue, message)
	return args.Error(0)
}

func (m *MockMessageBus) Subscribe(ctx context.Context, queue string, handler func(ctx context.Context, body []byte) error) error {
	args := m.Called(ctx, queue, handler)
	return args.Error(0)
}

func (m *MockMessageBus) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Mock BalanceCache ---
type MockBalanceCache struct {
	mock.Mock
}

func (m *MockBalanceCache) GetBalance(ctx context.Context, playerID string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

func (m *MockBalanceCache) SetBalance(ctx context.Context, playerID string, balance decimal.Decimal) error {
	args := m.Called(ctx, playerID, balance)
	return args.Error(0)
}

func (m *MockBalanceCache) Invalidate(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

// --- Mock TransactionSvc ---
type MockTransactionSvc struct {
	mock.Mock
}

func (m *MockTransactionSvc) ProcessTransaction(ctx context.Context, req dto.TransactionRequest) dto.TransactionOutcome {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.TransactionOutcome)
}

func (m *MockTransactionSvc) ListTransactions(ctx context.Context, playerID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
