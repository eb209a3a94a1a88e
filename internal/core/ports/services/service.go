package services

// ServiceContainer groups all the services needed by the handlers.
type ServiceContainer struct {
	WalletSvc      WalletSvcFacade
	GameSvc        GameSvcFacade
	TransactionSvc TransactionSvcFacade
}
