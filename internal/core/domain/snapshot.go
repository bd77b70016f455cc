package domain

// Snapshot is the wholesale state of the ledger: the transaction log plus
// every configuration collection. Field names are part of the persisted
// contract and must round-trip byte-compatible with backups produced by the
// other clients of the same data.
type Snapshot struct {
	Transactions  []Transaction  `json:"transactions"`
	Accounts      []Account      `json:"accounts"`
	Categories    []Category     `json:"categories"`
	Budget        Budget         `json:"budget"`
	QuickAdds     []QuickAdd     `json:"quickAdds"`
	Tags          []Tag          `json:"tags"`
	Subscriptions []Subscription `json:"subscriptions"`
	AutoDLPrices  []AutoDLPrice  `json:"autodlPrices"`
	APIModels     []APIModel     `json:"apiModels"`
}

// Backup wraps a snapshot in the export envelope written by backup files.
type Backup struct {
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"` // local wall-clock time of the export
	Data      Snapshot `json:"data"`
}

// BackupVersion is the envelope version emitted by this implementation.
const BackupVersion = "2.0"
