package storage

import (
	"context"

	"github.com/nghuy/gameledger/internal/model"
)

// Storage defines the interface for ledger data persistence.
//
// Create operations assign ids from a monotonic per-entity counter; ids are
// never reused after deletion. Update operations load the current record,
// apply the merge function to a copy, and replace the value atomically under
// the entity's key. No lock is held across separate calls.
type Storage interface {
	// Identity operations
	SaveIdentity(ctx context.Context, identity *model.Identity) error
	GetIdentityByUsername(ctx context.Context, username string) (*model.Identity, error)

	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	UpdatePlayer(ctx context.Context, id model.PlayerID, merge func(*model.Player)) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Item operations
	CreateItem(ctx context.Context, item *model.Item) (*model.Item, error)
	GetItem(ctx context.Context, id model.ItemID) (*model.Item, error)
	ListItems(ctx context.Context) ([]*model.Item, error)
	UpdateItem(ctx context.Context, id model.ItemID, merge func(*model.Item)) (*model.Item, error)
	DeleteItem(ctx context.Context, id model.ItemID) error

	// Transaction operations. Transactions are immutable: no update.
	CreateTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	GetTransaction(ctx context.Context, id model.TransactionID) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id model.TransactionID) error
}
