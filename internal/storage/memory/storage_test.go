package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nghuy/gameledger/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Identity tests

func (s *StorageSuite) TestSaveIdentityAssignsID() {
	identity := &model.Identity{Username: "admin", Secret: "secret"}
	err := s.storage.SaveIdentity(s.ctx, identity)
	s.Require().NoError(err)
	s.Equal(model.IdentityID(1), identity.ID)
}

func (s *StorageSuite) TestSaveIdentityKeepsExplicitID() {
	identity := &model.Identity{ID: 7, Username: "admin"}
	err := s.storage.SaveIdentity(s.ctx, identity)
	s.Require().NoError(err)

	// The counter must advance past explicit ids
	next := &model.Identity{Username: "other"}
	err = s.storage.SaveIdentity(s.ctx, next)
	s.Require().NoError(err)
	s.Equal(model.IdentityID(8), next.ID)
}

func (s *StorageSuite) TestGetIdentityByUsername() {
	err := s.storage.SaveIdentity(s.ctx, &model.Identity{Username: "admin", Secret: "secret"})
	s.Require().NoError(err)

	identity, err := s.storage.GetIdentityByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal("admin", identity.Username)
	s.Equal("secret", identity.Secret)
}

func (s *StorageSuite) TestGetIdentityByUsernameNotFound() {
	_, err := s.storage.GetIdentityByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

// Player tests

func (s *StorageSuite) TestCreatePlayerAssignsMonotonicIDs() {
	first, err := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice"})
	s.Require().NoError(err)
	second, err := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Bob"})
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

func (s *StorageSuite) TestGetPlayerReturnsCopy() {
	created, _ := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice"})

	got, err := s.storage.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	got.Name = "mutated"

	again, err := s.storage.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Alice", again.Name)
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

func (s *StorageSuite) TestUpdatePlayerAppliesMerge() {
	created, _ := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice", Experience: 100})

	updated, err := s.storage.UpdatePlayer(s.ctx, created.ID, func(p *model.Player) {
		p.Experience = 250
	})
	s.Require().NoError(err)
	s.Equal(250, updated.Experience)
	s.Equal("Alice", updated.Name)
}

func (s *StorageSuite) TestUpdatePlayerCannotChangeID() {
	created, _ := s.storage.CreatePlayer(s.ctx, &model.Player{Name: "Alice"})

	updated, err := s.storage.UpdatePlayer(s.ctx, created.ID, func(p *model.Player) {
		p.ID = 42
	})
	s.Require().NoError(err)
	s.Equal(created.ID, updated.ID)
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
	desc := "a sword"
	created, err := s.storage.CreateItem(s.ctx, &model.Item{
		Name:        "Sword",
		Category:    "Weapon",
		XPCost:      120,
		Description: &desc,
	})
	s.Require().NoError(err)
	s.Equal(model.ItemID(1), created.ID)

	got, err := s.storage.GetItem(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Description)
	s.Equal("a sword", *got.Description)

	updated, err := s.storage.UpdateItem(s.ctx, created.ID, func(i *model.Item) {
		i.XPCost = 150
	})
	s.Require().NoError(err)
	s.Equal(150, updated.XPCost)

	s.Require().NoError(s.storage.DeleteItem(s.ctx, created.ID))
	_, err = s.storage.GetItem(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrItemNotFound)
}

func (s *StorageSuite) TestItemIDsAreNeverReused() {
	first, _ := s.storage.CreateItem(s.ctx, &model.Item{Name: "Sword"})
	s.Require().NoError(s.storage.DeleteItem(s.ctx, first.ID))

	second, err := s.storage.CreateItem(s.ctx, &model.Item{Name: "Shield"})
	s.Require().NoError(err)
	s.Equal(model.ItemID(2), second.ID)
}

// Transaction tests

func (s *StorageSuite) TestTransactionLifecycle() {
	itemID := model.ItemID(3)
	created, err := s.storage.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID: 1,
		ItemID:   &itemID,
		Kind:     "Item",
	})
	s.Require().NoError(err)
	s.Equal(model.TransactionID(1), created.ID)

	got, err := s.storage.GetTransaction(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.ItemID)
	s.Equal(model.ItemID(3), *got.ItemID)

	s.Require().NoError(s.storage.DeleteTransaction(s.ctx, created.ID))
	_, err = s.storage.GetTransaction(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrTransactionNotFound)
}

func (s *StorageSuite) TestTransactionWithoutItem() {
	created, err := s.storage.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID: 1,
		Kind:     "Vehicle",
	})
	s.Require().NoError(err)

	got, err := s.storage.GetTransaction(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Nil(got.ItemID)
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
