package request

import "time"

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePlayerRequest is the request body for creating a player
type CreatePlayerRequest struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Experience int    `json:"experience"`
	Password   string `json:"password,omitempty"`
}

// UpdatePlayerRequest is the request body for partially updating a player.
// Omitted fields are left unchanged.
type UpdatePlayerRequest struct {
	Name       *string `json:"name,omitempty"`
	Mode       *string `json:"mode,omitempty"`
	Experience *int    `json:"experience,omitempty"`
}

// UpdatePasswordRequest is the request body for changing a player's password
type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// CreateItemRequest is the request body for creating an item
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	XPCost      int     `json:"xp_cost"`
	Description *string `json:"description,omitempty"`
}

// UpdateItemRequest is the request body for partially updating an item.
// Omitted fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	XPCost      *int    `json:"xp_cost,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateTransactionRequest is the request body for recording a transaction
type CreateTransactionRequest struct {
	PlayerID   int64      `json:"player_id"`
	ItemID     *int64     `json:"item_id,omitempty"`
	Kind       string     `json:"kind"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// SendEmailRequest is the request body for the email side endpoint
type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
