package redis

import (
	"fmt"

	"github.com/nghuy/gameledger/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "gameledger"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// itemKey returns the Redis key for an Item
func itemKey(id model.ItemID) string {
	return fmt.Sprintf("%s:item:%d", keyPrefix, id)
}

// transactionKey returns the Redis key for a Transaction
func transactionKey(id model.TransactionID) string {
	return fmt.Sprintf("%s:transaction:%d", keyPrefix, id)
}

// identityKey returns the Redis key for an Identity
func identityKey(id model.IdentityID) string {
	return fmt.Sprintf("%s:identity:%d", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> identity id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// entityIndexKey returns the Redis key for the SET of ids of one entity kind
func entityIndexKey(kind string) string {
	return fmt.Sprintf("%s:idx:%s", keyPrefix, kind)
}

// nextIDKey returns the Redis key for the id counter of one entity kind
func nextIDKey(kind string) string {
	return fmt.Sprintf("%s:next_id:%s", keyPrefix, kind)
}
