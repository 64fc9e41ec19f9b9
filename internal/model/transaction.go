package model

import "time"

// TransactionID uniquely identifies a ledger transaction
type TransactionID int64

// Transaction records a purchase made by a player.
// ItemID is nil for purchases with no catalog item (e.g. vehicles).
// Transactions are immutable once created.
type Transaction struct {
	ID         TransactionID
	PlayerID   PlayerID
	ItemID     *ItemID
	Kind       string // free-text label, e.g. "Item" or "Vehicle"
	OccurredAt time.Time
}
