package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Item:
		o.printItem(v)
	case []Item:
		o.printItems(v)
	case Transaction:
		o.printTransaction(v)
	case []Transaction:
		o.printTransactions(v)
	case LoginResult:
		o.printLoginResult(v)
	case User:
		o.printUser(v)
	case []Resource:
		o.printResources(v)
	case []ItemPurchases:
		o.printItemPurchases(v)
	case []PlayerPurchases:
		o.printPlayerPurchases(v)
	case Dashboard:
		o.printDashboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Experience int    `json:"experience"`
}

// Item response type
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	XPCost      int     `json:"xp_cost"`
	Description *string `json:"description"`
}

// Transaction response type
type Transaction struct {
	ID         int64     `json:"id"`
	PlayerID   int64     `json:"player_id"`
	ItemID     *int64    `json:"item_id"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// User response type
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginResult combines token and user
type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Resource response type
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// ItemPurchases response type
type ItemPurchases struct {
	ItemID int64 `json:"item_id"`
	Count  int   `json:"count"`
	Item   *Item `json:"item"`
}

// PlayerPurchases response type
type PlayerPurchases struct {
	PlayerID      int64   `json:"player_id"`
	Player        *Player `json:"player"`
	PurchaseCount int     `json:"purchase_count"`
}

// RecentTransaction response type
type RecentTransaction struct {
	ID         int64     `json:"id"`
	PlayerName string    `json:"player_name"`
	ItemName   string    `json:"item_name"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Dashboard response type
type Dashboard struct {
	TotalPlayers       int                 `json:"total_players"`
	TotalItems         int                 `json:"total_items"`
	TotalTransactions  int                 `json:"total_transactions"`
	TotalExperience    int                 `json:"total_experience"`
	PlayersByMode      map[string]int      `json:"players_by_mode"`
	ItemsByCategory    map[string]int      `json:"items_by_category"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (#%d)\n", p.Name, p.ID)
	fmt.Printf("Mode: %s\n", p.Mode)
	fmt.Printf("Experience: %d\n", p.Experience)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  #%d %s - %s, %d XP\n", p.ID, p.Name, p.Mode, p.Experience)
	}
}

func (o *Output) printItem(i Item) {
	fmt.Printf("Item: %s (#%d)\n", i.Name, i.ID)
	fmt.Printf("Category: %s\n", i.Category)
	fmt.Printf("Cost: %d XP\n", i.XPCost)
	if i.Description != nil {
		fmt.Printf("Description: %s\n", *i.Description)
	}
}

func (o *Output) printItems(items []Item) {
	fmt.Printf("Items (%d):\n", len(items))
	for _, i := range items {
		fmt.Printf("  #%d %s - %s, %d XP\n", i.ID, i.Name, i.Category, i.XPCost)
	}
}

func (o *Output) printTransaction(t Transaction) {
	fmt.Printf("Transaction: #%d\n", t.ID)
	fmt.Printf("Player: #%d\n", t.PlayerID)
	if t.ItemID != nil {
		fmt.Printf("Item: #%d\n", *t.ItemID)
	} else {
		fmt.Println("Item: none")
	}
	fmt.Printf("Kind: %s\n", t.Kind)
	fmt.Printf("Occurred: %s\n", t.OccurredAt.Format(time.RFC3339))
}

func (o *Output) printTransactions(txns []Transaction) {
	fmt.Printf("Transactions (%d):\n", len(txns))
	for _, t := range txns {
		item := "-"
		if t.ItemID != nil {
			item = fmt.Sprintf("#%d", *t.ItemID)
		}
		fmt.Printf("  #%d player #%d item %s %s %s\n",
			t.ID, t.PlayerID, item, t.Kind, t.OccurredAt.Format(time.RFC3339))
	}
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (#%d)\n", u.Username, u.ID)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
	if u.Role != "" {
		fmt.Printf("Role: %s\n", u.Role)
	}
}

func (o *Output) printLoginResult(l LoginResult) {
	o.printUser(l.User)
	fmt.Printf("Token: %s\n", l.Token)
}

func (o *Output) printResources(resources []Resource) {
	fmt.Printf("Resources (%d):\n", len(resources))
	for _, r := range resources {
		fmt.Printf("  %s: %d - %s\n", r.Name, r.Amount, r.Description)
	}
}

func (o *Output) printItemPurchases(groups []ItemPurchases) {
	fmt.Printf("Top purchased items (%d):\n", len(groups))
	for _, g := range groups {
		name := "N/A"
		if g.Item != nil {
			name = g.Item.Name
		}
		fmt.Printf("  #%d %s - %d purchases\n", g.ItemID, name, g.Count)
	}
}

func (o *Output) printPlayerPurchases(groups []PlayerPurchases) {
	fmt.Printf("Purchase counts (%d):\n", len(groups))
	for _, g := range groups {
		name := "Unknown"
		if g.Player != nil {
			name = g.Player.Name
		}
		fmt.Printf("  #%d %s - %d purchases\n", g.PlayerID, name, g.PurchaseCount)
	}
}

func (o *Output) printDashboard(d Dashboard) {
	fmt.Printf("Players: %d\n", d.TotalPlayers)
	fmt.Printf("Items: %d\n", d.TotalItems)
	fmt.Printf("Transactions: %d\n", d.TotalTransactions)
	fmt.Printf("Total Experience: %d\n", d.TotalExperience)

	if len(d.PlayersByMode) > 0 {
		fmt.Println("\nPlayers by mode:")
		for _, mode := range sortedKeys(d.PlayersByMode) {
			fmt.Printf("  %s: %d\n", mode, d.PlayersByMode[mode])
		}
	}

	if len(d.ItemsByCategory) > 0 {
		fmt.Println("\nItems by category:")
		for _, cat := range sortedKeys(d.ItemsByCategory) {
			fmt.Printf("  %s: %d\n", cat, d.ItemsByCategory[cat])
		}
	}

	if len(d.RecentTransactions) > 0 {
		fmt.Println("\nRecent transactions:")
		for _, t := range d.RecentTransactions {
			fmt.Printf("  #%d %s - %s (%s) %s\n",
				t.ID, t.PlayerName, t.ItemName, t.Kind, t.OccurredAt.Format(time.RFC3339))
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
