package redis

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/storage"
)

// Entity kind names used in index and counter keys
const (
	kindPlayer      = "player"
	kindItem        = "item"
	kindTransaction = "transaction"
)

// ErrUpdateConflict is returned when a merge update keeps losing the
// optimistic WATCH race after the configured number of retries.
var ErrUpdateConflict = errors.New("update conflict: too many concurrent writes")

// Storage is a Redis-backed implementation of the storage interface.
//
// Records are stored as JSON values. Ids come from per-entity INCR counters,
// so assignment is atomic and ids are never reused. Merge updates run inside
// an optimistic WATCH transaction and retry on conflict.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Identity operations

func (s *Storage) SaveIdentity(ctx context.Context, identity *model.Identity) error {
	if identity.ID == 0 {
		id, err := s.client.Incr(ctx, nextIDKey("identity")).Result()
		if err != nil {
			return err
		}
		identity.ID = model.IdentityID(id)
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, identityKey(identity.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(identity.Username), strconv.FormatInt(int64(identity.ID), 10), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetIdentityByUsername(ctx context.Context, username string) (*model.Identity, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrIdentityNotFound
		}
		return nil, err
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, identityKey(model.IdentityID(id))).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrIdentityNotFound
		}
		return nil, err
	}

	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	id, err := s.client.Incr(ctx, nextIDKey(kindPlayer)).Result()
	if err != nil {
		return nil, err
	}

	created := *player
	created.ID = model.PlayerID(id)

	if err := s.saveIndexed(ctx, kindPlayer, playerKey(created.ID), id, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var player model.Player
	if err := s.get(ctx, playerKey(id), &player, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	values, err := s.listValues(ctx, kindPlayer, func(id int64) string {
		return playerKey(model.PlayerID(id))
	})
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, data := range values {
		var player model.Player
		if err := json.Unmarshal(data, &player); err != nil {
			return nil, err
		}
		players = append(players, &player)
	}
	return players, nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, merge func(*model.Player)) (*model.Player, error) {
	var updated model.Player
	err := s.mergeUpdate(ctx, playerKey(id), model.ErrPlayerNotFound, func(data []byte) ([]byte, error) {
		var player model.Player
		if err := json.Unmarshal(data, &player); err != nil {
			return nil, err
		}
		merge(&player)
		player.ID = id
		updated = player
		return json.Marshal(&player)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.deleteIndexed(ctx, kindPlayer, playerKey(id), int64(id), model.ErrPlayerNotFound)
}

// Item operations

func (s *Storage) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	id, err := s.client.Incr(ctx, nextIDKey(kindItem)).Result()
	if err != nil {
		return nil, err
	}

	created := *item
	created.ID = model.ItemID(id)

	if err := s.saveIndexed(ctx, kindItem, itemKey(created.ID), id, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Storage) GetItem(ctx context.Context, id model.ItemID) (*model.Item, error) {
	var item model.Item
	if err := s.get(ctx, itemKey(id), &item, model.ErrItemNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Storage) ListItems(ctx context.Context) ([]*model.Item, error) {
	values, err := s.listValues(ctx, kindItem, func(id int64) string {
		return itemKey(model.ItemID(id))
	})
	if err != nil {
		return nil, err
	}

	items := make([]*model.Item, 0, len(values))
	for _, data := range values {
		var item model.Item
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, nil
}

func (s *Storage) UpdateItem(ctx context.Context, id model.ItemID, merge func(*model.Item)) (*model.Item, error) {
	var updated model.Item
	err := s.mergeUpdate(ctx, itemKey(id), model.ErrItemNotFound, func(data []byte) ([]byte, error) {
		var item model.Item
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		merge(&item)
		item.ID = id
		updated = item
		return json.Marshal(&item)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Storage) DeleteItem(ctx context.Context, id model.ItemID) error {
	return s.deleteIndexed(ctx, kindItem, itemKey(id), int64(id), model.ErrItemNotFound)
}

// Transaction operations

func (s *Storage) CreateTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	id, err := s.client.Incr(ctx, nextIDKey(kindTransaction)).Result()
	if err != nil {
		return nil, err
	}

	created := *txn
	created.ID = model.TransactionID(id)

	if err := s.saveIndexed(ctx, kindTransaction, transactionKey(created.ID), id, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Storage) GetTransaction(ctx context.Context, id model.TransactionID) (*model.Transaction, error) {
	var txn model.Transaction
	if err := s.get(ctx, transactionKey(id), &txn, model.ErrTransactionNotFound); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *Storage) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	values, err := s.listValues(ctx, kindTransaction, func(id int64) string {
		return transactionKey(model.TransactionID(id))
	})
	if err != nil {
		return nil, err
	}

	txns := make([]*model.Transaction, 0, len(values))
	for _, data := range values {
		var txn model.Transaction
		if err := json.Unmarshal(data, &txn); err != nil {
			return nil, err
		}
		txns = append(txns, &txn)
	}
	return txns, nil
}

func (s *Storage) DeleteTransaction(ctx context.Context, id model.TransactionID) error {
	return s.deleteIndexed(ctx, kindTransaction, transactionKey(id), int64(id), model.ErrTransactionNotFound)
}

// Shared helpers

// saveIndexed writes a record and adds its id to the kind's index set
func (s *Storage) saveIndexed(ctx context.Context, kind, key string, id int64, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, entityIndexKey(kind), strconv.FormatInt(id, 10))
	_, err = pipe.Exec(ctx)
	return err
}

// get reads a record, mapping redis.Nil to the kind's not-found sentinel
func (s *Storage) get(ctx context.Context, key string, record any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, record)
}

// listValues returns the raw JSON values of a kind, id ascending.
// Index entries whose record has since been deleted are skipped.
func (s *Storage) listValues(ctx context.Context, kind string, key func(int64) string) ([][]byte, error) {
	members, err := s.client.SMembers(ctx, entityIndexKey(kind)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	values := make([][]byte, 0, len(ids))
	for _, id := range ids {
		data, err := s.client.Get(ctx, key(id)).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		values = append(values, data)
	}
	return values, nil
}

// mergeUpdate applies transform to the record under key inside an optimistic
// WATCH transaction, retrying when a concurrent write invalidates the read.
func (s *Storage) mergeUpdate(ctx context.Context, key string, notFound error, transform func([]byte) ([]byte, error)) error {
	retries := s.cfg.UpdateRetries
	if retries <= 0 {
		retries = 1
	}

	for i := 0; i < retries; i++ {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					return notFound
				}
				return err
			}

			updated, err := transform(data)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, updated, 0)
				return nil
			})
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrUpdateConflict
}

// deleteIndexed removes a record and its index entry, failing when absent
func (s *Storage) deleteIndexed(ctx context.Context, kind, key string, id int64, notFound error) error {
	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return notFound
	}
	return s.client.SRem(ctx, entityIndexKey(kind), strconv.FormatInt(id, 10)).Err()
}
