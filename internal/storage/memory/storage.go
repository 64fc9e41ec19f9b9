package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
//
// Each map is guarded by a single RWMutex; id counters advance under the
// write lock so an id is assigned and its record inserted in one step.
type Storage struct {
	mu sync.RWMutex

	identities    map[model.IdentityID]*model.Identity
	usernameIndex map[string]model.IdentityID

	players      map[model.PlayerID]*model.Player
	items        map[model.ItemID]*model.Item
	transactions map[model.TransactionID]*model.Transaction

	nextPlayerID      model.PlayerID
	nextItemID        model.ItemID
	nextTransactionID model.TransactionID
	nextIdentityID    model.IdentityID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		identities:        make(map[model.IdentityID]*model.Identity),
		usernameIndex:     make(map[string]model.IdentityID),
		players:           make(map[model.PlayerID]*model.Player),
		items:             make(map[model.ItemID]*model.Item),
		transactions:      make(map[model.TransactionID]*model.Transaction),
		nextPlayerID:      1,
		nextItemID:        1,
		nextTransactionID: 1,
		nextIdentityID:    1,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Identity operations

func (s *Storage) SaveIdentity(ctx context.Context, identity *model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if identity.ID == 0 {
		identity.ID = s.nextIdentityID
	}
	if identity.ID >= s.nextIdentityID {
		s.nextIdentityID = identity.ID + 1
	}
	saved := *identity
	s.identities[saved.ID] = &saved
	s.usernameIndex[saved.Username] = saved.ID
	return nil
}

func (s *Storage) GetIdentityByUsername(ctx context.Context, username string) (*model.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrIdentityNotFound
	}
	identity, ok := s.identities[id]
	if !ok {
		return nil, model.ErrIdentityNotFound
	}
	copied := *identity
	return &copied, nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *player
	created.ID = s.nextPlayerID
	s.nextPlayerID++
	s.players[created.ID] = &created
	result := created
	return &result, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		copied := *p
		players = append(players, &copied)
	}
	slices.SortFunc(players, func(a, b *model.Player) int {
		return int(a.ID - b.ID)
	})
	return players, nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, merge func(*model.Player)) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	updated := *player
	merge(&updated)
	updated.ID = id
	s.players[id] = &updated
	result := updated
	return &result, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return model.ErrPlayerNotFound
	}
	delete(s.players, id)
	return nil
}

// Item operations

func (s *Storage) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *item
	created.ID = s.nextItemID
	s.nextItemID++
	s.items[created.ID] = &created
	result := created
	return &result, nil
}

func (s *Storage) GetItem(ctx context.Context, id model.ItemID) (*model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, model.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *Storage) ListItems(ctx context.Context) ([]*model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]*model.Item, 0, len(s.items))
	for _, i := range s.items {
		copied := *i
		items = append(items, &copied)
	}
	slices.SortFunc(items, func(a, b *model.Item) int {
		return int(a.ID - b.ID)
	})
	return items, nil
}

func (s *Storage) UpdateItem(ctx context.Context, id model.ItemID, merge func(*model.Item)) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, model.ErrItemNotFound
	}
	updated := *item
	merge(&updated)
	updated.ID = id
	s.items[id] = &updated
	result := updated
	return &result, nil
}

func (s *Storage) DeleteItem(ctx context.Context, id model.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return model.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

// Transaction operations

func (s *Storage) CreateTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *txn
	created.ID = s.nextTransactionID
	s.nextTransactionID++
	s.transactions[created.ID] = &created
	result := created
	return &result, nil
}

func (s *Storage) GetTransaction(ctx context.Context, id model.TransactionID) (*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txn, ok := s.transactions[id]
	if !ok {
		return nil, model.ErrTransactionNotFound
	}
	copied := *txn
	return &copied, nil
}

func (s *Storage) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txns := make([]*model.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		copied := *t
		txns = append(txns, &copied)
	}
	slices.SortFunc(txns, func(a, b *model.Transaction) int {
		return int(a.ID - b.ID)
	})
	return txns, nil
}

func (s *Storage) DeleteTransaction(ctx context.Context, id model.TransactionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return model.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	return nil
}

