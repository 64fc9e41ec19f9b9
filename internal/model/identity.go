package model

// IdentityID uniquely identifies a login identity
type IdentityID int64

// Identity is a login account checked by the credential verifier.
// It is read-only from the issuer's perspective.
type Identity struct {
	ID        IdentityID
	Username  string // unique, matched case-sensitively
	Email     string
	RoleName  string // display role; empty means no role assigned
	Secret    string // login secret; compared by exact equality
	AvatarURL string
}
