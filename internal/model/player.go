package model

// PlayerID uniquely identifies a player within the ledger
type PlayerID int64

// Player represents a game participant tracked by the ledger
type Player struct {
	ID         PlayerID
	Name       string
	Mode       string // free-text game mode, e.g. "Sinh tồn" / "Đối kháng"
	Experience int    // accumulated XP, never negative
	Secret     string // login secret; stored as submitted
}

// PlayerUpdate describes a partial update to a player.
// Nil fields are left unchanged.
type PlayerUpdate struct {
	Name       *string
	Mode       *string
	Experience *int
}
