package model

// ItemID uniquely identifies a shop item
type ItemID int64

// Item represents a purchasable shop item
type Item struct {
	ID          ItemID
	Name        string
	Category    string // Weapon, Armor, Vehicle, Accessory, Consumable
	XPCost      int
	Description *string
}

// ItemUpdate describes a partial update to an item.
// Nil fields are left unchanged.
type ItemUpdate struct {
	Name        *string
	Category    *string
	XPCost      *int
	Description *string
}
