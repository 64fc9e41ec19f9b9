package stats

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/storage"
)

// DefaultTopN is the number of groups returned when the caller does not ask
// for a specific count
const DefaultTopN = 5

// Fallback labels for references that no longer resolve
const (
	unknownPlayerName = "Unknown"
	noItemName        = "N/A"
)

// Service computes aggregate views over the ledger
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new stats service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ItemPurchases is one group of the top-purchased aggregate.
// Item is nil when the item has been deleted since the purchases.
type ItemPurchases struct {
	ItemID model.ItemID
	Count  int
	Item   *model.Item
}

// TopPurchasedItems groups transactions by item, most purchased first.
// Transactions without an item reference are excluded from the grouping.
func (s *Service) TopPurchasedItems(ctx context.Context, top int) ([]ItemPurchases, error) {
	if top <= 0 {
		top = DefaultTopN
	}

	txns, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.ItemID]int)
	for _, t := range txns {
		if t.ItemID == nil {
			continue
		}
		counts[*t.ItemID]++
	}

	groups := make([]ItemPurchases, 0, len(counts))
	for itemID, count := range counts {
		groups = append(groups, ItemPurchases{ItemID: itemID, Count: count})
	}
	slices.SortFunc(groups, func(a, b ItemPurchases) int {
		return int(a.ItemID - b.ItemID)
	})
	slices.SortStableFunc(groups, func(a, b ItemPurchases) int {
		return b.Count - a.Count
	})

	if len(groups) > top {
		groups = groups[:top]
	}

	for i := range groups {
		item, err := s.storage.GetItem(ctx, groups[i].ItemID)
		if err != nil {
			if errors.Is(err, model.ErrItemNotFound) {
				continue
			}
			return nil, err
		}
		groups[i].Item = item
	}
	return groups, nil
}

// PlayerPurchases is one group of the purchase-count aggregate.
// Player is nil when the player has been deleted since the purchases.
type PlayerPurchases struct {
	PlayerID model.PlayerID
	Count    int
	Player   *model.Player
}

// PurchaseCounts groups transactions by player, most active first
func (s *Service) PurchaseCounts(ctx context.Context) ([]PlayerPurchases, error) {
	txns, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.PlayerID]int)
	for _, t := range txns {
		counts[t.PlayerID]++
	}

	groups := make([]PlayerPurchases, 0, len(counts))
	for playerID, count := range counts {
		groups = append(groups, PlayerPurchases{PlayerID: playerID, Count: count})
	}
	slices.SortFunc(groups, func(a, b PlayerPurchases) int {
		return int(a.PlayerID - b.PlayerID)
	})
	slices.SortStableFunc(groups, func(a, b PlayerPurchases) int {
		return b.Count - a.Count
	})

	for i := range groups {
		player, err := s.storage.GetPlayer(ctx, groups[i].PlayerID)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		groups[i].Player = player
	}
	return groups, nil
}

// RecentTransaction is a transaction with its references resolved to names
type RecentTransaction struct {
	ID         model.TransactionID
	PlayerName string
	ItemName   string
	Kind       string
	OccurredAt time.Time
}

// Dashboard is the aggregate view shown on the admin landing page
type Dashboard struct {
	TotalPlayers       int
	TotalItems         int
	TotalTransactions  int
	TotalExperience    int
	PlayersByMode      map[string]int
	ItemsByCategory    map[string]int
	RecentTransactions []RecentTransaction
}

// Dashboard computes the full dashboard aggregate in one pass over the store
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.storage.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalPlayers:      len(players),
		TotalItems:        len(items),
		TotalTransactions: len(txns),
		PlayersByMode:     make(map[string]int),
		ItemsByCategory:   make(map[string]int),
	}

	playerNames := make(map[model.PlayerID]string, len(players))
	for _, p := range players {
		d.TotalExperience += p.Experience
		d.PlayersByMode[p.Mode]++
		playerNames[p.ID] = p.Name
	}

	itemNames := make(map[model.ItemID]string, len(items))
	for _, i := range items {
		d.ItemsByCategory[i.Category]++
		itemNames[i.ID] = i.Name
	}

	recent := slices.Clone(txns)
	slices.SortStableFunc(recent, func(a, b *model.Transaction) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})
	if len(recent) > DefaultTopN {
		recent = recent[:DefaultTopN]
	}

	d.RecentTransactions = make([]RecentTransaction, 0, len(recent))
	for _, t := range recent {
		playerName, ok := playerNames[t.PlayerID]
		if !ok {
			playerName = unknownPlayerName
		}
		itemName := noItemName
		if t.ItemID != nil {
			if name, ok := itemNames[*t.ItemID]; ok {
				itemName = name
			}
		}
		d.RecentTransactions = append(d.RecentTransactions, RecentTransaction{
			ID:         t.ID,
			PlayerName: playerName,
			ItemName:   itemName,
			Kind:       t.Kind,
			OccurredAt: t.OccurredAt,
		})
	}
	return d, nil
}
