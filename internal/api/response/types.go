package response

import (
	"time"

	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/services/auth"
	"github.com/nghuy/gameledger/internal/services/ledger"
	"github.com/nghuy/gameledger/internal/services/stats"
)

// User represents a login identity in API responses
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role,omitempty"`
}

// UserFromIdentity converts a model.Identity to a response User
func UserFromIdentity(identity *model.Identity) User {
	return User{
		ID:       int64(identity.ID),
		Username: identity.Username,
		Email:    identity.Email,
		Avatar:   identity.AvatarURL,
		Role:     identity.RoleName,
	}
}

// LoginResponse is the response for the login endpoint
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

// LoginResponseFromSession creates a LoginResponse from a session
func LoginResponseFromSession(s *auth.Session) LoginResponse {
	return LoginResponse{
		Token:   s.Token,
		Message: "Login successful",
		User:    UserFromIdentity(&s.Identity),
	}
}

// Player represents a player in API responses
type Player struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Experience int    `json:"experience"`
}

// PlayerFromModel converts a model.Player to a response Player.
// The stored secret is never serialized.
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:         int64(p.ID),
		Name:       p.Name,
		Mode:       p.Mode,
		Experience: p.Experience,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	result := make([]Player, len(players))
	for i, p := range players {
		result[i] = PlayerFromModel(p)
	}
	return result
}

// Item represents an item in API responses
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	XPCost      int     `json:"xp_cost"`
	Description *string `json:"description"`
}

// ItemFromModel converts a model.Item to a response Item
func ItemFromModel(i *model.Item) Item {
	return Item{
		ID:          int64(i.ID),
		Name:        i.Name,
		Category:    i.Category,
		XPCost:      i.XPCost,
		Description: i.Description,
	}
}

// ItemsFromModel converts a slice of items
func ItemsFromModel(items []*model.Item) []Item {
	result := make([]Item, len(items))
	for i, item := range items {
		result[i] = ItemFromModel(item)
	}
	return result
}

// Transaction represents a transaction in API responses
type Transaction struct {
	ID         int64     `json:"id"`
	PlayerID   int64     `json:"player_id"`
	ItemID     *int64    `json:"item_id"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TransactionFromModel converts a model.Transaction
func TransactionFromModel(t *model.Transaction) Transaction {
	var itemID *int64
	if t.ItemID != nil {
		id := int64(*t.ItemID)
		itemID = &id
	}
	return Transaction{
		ID:         int64(t.ID),
		PlayerID:   int64(t.PlayerID),
		ItemID:     itemID,
		Kind:       t.Kind,
		OccurredAt: t.OccurredAt,
	}
}

// TransactionsFromModel converts a slice of transactions
func TransactionsFromModel(txns []*model.Transaction) []Transaction {
	result := make([]Transaction, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromModel(t)
	}
	return result
}

// Resource represents a resource kind in API responses
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// ResourcesFromService converts the static resource catalog
func ResourcesFromService(resources []ledger.Resource) []Resource {
	result := make([]Resource, len(resources))
	for i, r := range resources {
		result[i] = Resource(r)
	}
	return result
}

// ItemPurchases is one group of the top-purchased aggregate
type ItemPurchases struct {
	ItemID int64 `json:"item_id"`
	Count  int   `json:"count"`
	Item   *Item `json:"item"`
}

// ItemPurchasesFromStats converts the top-purchased aggregate
func ItemPurchasesFromStats(groups []stats.ItemPurchases) []ItemPurchases {
	result := make([]ItemPurchases, len(groups))
	for i, g := range groups {
		result[i] = ItemPurchases{ItemID: int64(g.ItemID), Count: g.Count}
		if g.Item != nil {
			item := ItemFromModel(g.Item)
			result[i].Item = &item
		}
	}
	return result
}

// PlayerPurchases is one group of the purchase-count aggregate
type PlayerPurchases struct {
	PlayerID      int64   `json:"player_id"`
	Player        *Player `json:"player"`
	PurchaseCount int     `json:"purchase_count"`
}

// PlayerPurchasesFromStats converts the purchase-count aggregate
func PlayerPurchasesFromStats(groups []stats.PlayerPurchases) []PlayerPurchases {
	result := make([]PlayerPurchases, len(groups))
	for i, g := range groups {
		result[i] = PlayerPurchases{PlayerID: int64(g.PlayerID), PurchaseCount: g.Count}
		if g.Player != nil {
			player := PlayerFromModel(g.Player)
			result[i].Player = &player
		}
	}
	return result
}

// RecentTransaction is a transaction with resolved names
type RecentTransaction struct {
	ID         int64     `json:"id"`
	PlayerName string    `json:"player_name"`
	ItemName   string    `json:"item_name"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Dashboard is the aggregate dashboard view
type Dashboard struct {
	TotalPlayers       int                 `json:"total_players"`
	TotalItems         int                 `json:"total_items"`
	TotalTransactions  int                 `json:"total_transactions"`
	TotalExperience    int                 `json:"total_experience"`
	PlayersByMode      map[string]int      `json:"players_by_mode"`
	ItemsByCategory    map[string]int      `json:"items_by_category"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
}

// DashboardFromStats converts the dashboard aggregate
func DashboardFromStats(d *stats.Dashboard) Dashboard {
	recent := make([]RecentTransaction, len(d.RecentTransactions))
	for i, t := range d.RecentTransactions {
		recent[i] = RecentTransaction{
			ID:         int64(t.ID),
			PlayerName: t.PlayerName,
			ItemName:   t.ItemName,
			Kind:       t.Kind,
			OccurredAt: t.OccurredAt,
		}
	}
	return Dashboard{
		TotalPlayers:       d.TotalPlayers,
		TotalItems:         d.TotalItems,
		TotalTransactions:  d.TotalTransactions,
		TotalExperience:    d.TotalExperience,
		PlayersByMode:      d.PlayersByMode,
		ItemsByCategory:    d.ItemsByCategory,
		RecentTransactions: recent,
	}
}
