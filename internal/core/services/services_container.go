package services

import (
	portsrepo "github.com/KamilKvasnicka/player-wallet/internal/core/ports/repositories"
	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
	"github.com/KamilKvasnicka/player-wallet/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// bus and cache may be nil when messaging or caching is disabled.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, bus portssvc.MessageBus, cache portssvc.BalanceCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The processor comes first since both facades route through it.
	container.TransactionSvc = NewTransactionService(repos.WalletRepo, repos.LedgerRepo, bus, cache, cfg.WalletUpdatesQueue)
	container.WalletSvc = NewWalletService(repos.WalletRepo, container.TransactionSvc, cache)
	container.GameSvc = NewGameService(container.TransactionSvc)

	return container
}
