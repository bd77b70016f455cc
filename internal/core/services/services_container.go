package services

import (
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The snapshot repository may be nil, in which case
// the ledger lives only in memory for the lifetime of the process.
func NewServiceContainer(cfg *config.Config, store portsrepo.LedgerStoreFacade, snapshots portsrepo.SnapshotRepositoryFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Balance replay comes first since reconciliation reads through it.
	container.Balance = NewBalanceService(store)

	container.Transaction = NewTransactionService(store, snapshots)
	container.Rollover = NewRolloverService(store)
	container.Reimbursement = NewReimbursementService(store, snapshots)
	container.Subscription = NewSubscriptionService(store, snapshots)
	container.Reconciliation = NewReconciliationService(store, snapshots, container.Balance)
	container.Config = NewConfigService(store, snapshots)
	container.Snapshot = NewSnapshotService(store, snapshots)
	container.Auth = NewAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade    = (*transactionService)(nil)
	_ portssvc.BalanceSvcFacade        = (*balanceService)(nil)
	_ portssvc.RolloverSvcFacade       = (*rolloverService)(nil)
	_ portssvc.ReimbursementSvcFacade  = (*reimbursementService)(nil)
	_ portssvc.SubscriptionSvcFacade   = (*subscriptionService)(nil)
	_ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)
	_ portssvc.ConfigSvcFacade         = (*configService)(nil)
	_ portssvc.SnapshotSvcFacade       = (*snapshotService)(nil)
)
