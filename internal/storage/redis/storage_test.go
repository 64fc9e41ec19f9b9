package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/nghuy/gameledger/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Identity tests

func (s *StorageSuite) TestSaveAndGetIdentity() {
	identity := &model.Identity{
		Username: "admin",
		Email:    "admin@example.com",
		RoleName: "Admin",
		Secret:   "secret",
	}

	err := s.storage.SaveIdentity(s.ctx, identity)
	s.Require().NoError(err)
	s.Equal(model.IdentityID(1), identity.ID)

	retrieved, err := s.storage.GetIdentityByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal(identity.ID, retrieved.ID)
	s.Equal("admin@example.com", retrieved.Email)
}

func (s *StorageSuite) TestGetIdentityNotFound() {
	_, err := s.storage.GetIdentityByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

// Player tests

func (s *StorageSuite) TestCreatePlayerAssignsMonotonicIDs() {
	first, err := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice", Mode: "Sinh tồn"})
	s.Require().NoError(err)
	second, err := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Bob", Mode: "Đối kháng"})
	s.Require().NoError(err)

	s.Equal(model.PlayerID(1), first.ID)
	s.Equal(model.PlayerID(2), second.ID)
}

func (s *StorageSuite) TestPlayerIDsAreNeverReused() {
	first, _ := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice"})
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, first.ID))

	second, err := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Bob"})
	s.Require().NoError(err)
	s.Equal(model.PlayerID(2), second.ID)
}

func (s *StorageSuite) TestGetPlayer() {
	created, _ := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice", Experience: 320})

	retrieved, err := s.storage.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.Name)
	s.Equal(320, retrieved.Experience)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersSortedByID() {
	_, _ = s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice"})
	_, _ = s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Bob"})
	_, _ = s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Charlie"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("Alice", players[0].Name)
	s.Equal("Charlie", players[2].Name)
}

func (s *StorageSuite) TestListPlayersSkipsDeleted() {
	first, _ := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice"})
	_, _ = s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Bob"})

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, first.ID))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Bob", players[0].Name)
}

func (s *StorageSuite) TestUpdatePlayerAppliesMerge() {
	created, _ := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice", Experience: 100})

	updated, err := s.storage.UpdatePlayer(s.ctx, created.ID, func(p *model.Player) {
		p.Experience = 250
	})
	s.Require().NoError(err)
	s.Equal(250, updated.Experience)
	s.Equal("Alice", updated.Name)

	retrieved, err := s.storage.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(250, retrieved.Experience)
}

func (s *StorageSuite) TestUpdatePlayerNotFound() {
	_, err := s.storage.UpdatePlayer(s.ctx, 99, func(p *model.Player) {})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayerNotFound() {
	err := s.storage.DeletePlayer(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Item tests

func (s *StorageSuite) TestItemLifecycle() {
	desc := "Vũ khí cận chiến"
	created, err := s.storage.CreateItem(s.ctx, &model.Item{
		Name:        "Kiếm sắt",
		Category:    "Weapon",
		XPCost:      120,
		Description: &desc,
	})
	s.Require().NoError(err)
	s.Equal(model.ItemID(1), created.ID)

	retrieved, err := s.storage.GetItem(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(retrieved.Description)
	s.Equal(desc, *retrieved.Description)

	updated, err := s.storage.UpdateItem(s.ctx, created.ID, func(i *model.Item) {
		i.XPCost = 150
	})
	s.Require().NoError(err)
	s.Equal(150, updated.XPCost)

	s.Require().NoError(s.storage.DeleteItem(s.ctx, created.ID))
	_, err = s.storage.GetItem(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrItemNotFound)
}

func (s *StorageSuite) TestItemNilDescriptionRoundTrips() {
	created, err := s.storage.CreateItem(s.ctx, &model.Item{Name: "Sword", Category: "Weapon"})
	s.Require().NoError(err)

	retrieved, err := s.storage.GetItem(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Nil(retrieved.Description)
}

// Transaction tests

func (s *StorageSuite) TestTransactionLifecycle() {
	itemID := model.ItemID(3)
	occurred := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	created, err := s.storage.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID:   1,
		ItemID:     &itemID,
		Kind:       "Item",
		OccurredAt: occurred,
	})
	s.Require().NoError(err)
	s.Equal(model.TransactionID(1), created.ID)

	retrieved, err := s.storage.GetTransaction(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(retrieved.ItemID)
	s.Equal(itemID, *retrieved.ItemID)
	s.True(occurred.Equal(retrieved.OccurredAt))

	s.Require().NoError(s.storage.DeleteTransaction(s.ctx, created.ID))
	_, err = s.storage.GetTransaction(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrTransactionNotFound)
}

func (s *StorageSuite) TestTransactionWithoutItem() {
	created, err := s.storage.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID: 3,
		Kind:     "Vehicle",
	})
	s.Require().NoError(err)

	retrieved, err := s.storage.GetTransaction(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Nil(retrieved.ItemID)
}

func (s *StorageSuite) TestListTransactionsSortedByID() {
	_, _ = s.storage.CreateTransaction(s.ctx, &model.Transaction{PlayerID: 1, Kind: "Item"})
	_, _ = s.storage.CreateTransaction(s.ctx, &model.Transaction{PlayerID: 2, Kind: "Item"})

	txns, err := s.storage.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(txns, 2)
	s.Equal(model.TransactionID(1), txns[0].ID)
	s.Equal(model.TransactionID(2), txns[1].ID)
}
