package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers receive at route registration.
type ServiceContainer struct {
	Transaction    TransactionSvcFacade
	Balance        BalanceSvcFacade
	Rollover       RolloverSvcFacade
	Reimbursement  ReimbursementSvcFacade
	Subscription   SubscriptionSvcFacade
	Reconciliation ReconciliationSvcFacade
	Config         ConfigSvcFacade
	Snapshot       SnapshotSvcFacade
	Auth           AuthSvcFacade
}
