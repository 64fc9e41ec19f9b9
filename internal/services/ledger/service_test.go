package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nghuy/gameledger/internal/dependencies/mocks"
	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/storage/memory"
	"github.com/nghuy/gameledger/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) createPlayer(name, mode string, experience int) *model.Player {
	player, err := s.service.CreatePlayer(s.ctx, &model.Player{
		Name:       name,
		Mode:       mode,
		Experience: experience,
	})
	s.Require().NoError(err)
	return player
}

func (s *ServiceSuite) createItem(name, category string, xpCost int) *model.Item {
	item, err := s.service.CreateItem(s.ctx, &model.Item{
		Name:     name,
		Category: category,
		XPCost:   xpCost,
	})
	s.Require().NoError(err)
	return item
}

func (s *ServiceSuite) fieldsOf(err error) []string {
	var verr *model.ValidationError
	s.Require().ErrorAs(err, &verr)
	fields := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = f.Field
	}
	return fields
}

// Player tests

func (s *ServiceSuite) TestCreatePlayerSucceeds() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)
	s.Equal(model.PlayerID(1), player.ID)
	s.Equal("Alice", player.Name)
}

func (s *ServiceSuite) TestCreatePlayerReportsAllInvalidFields() {
	_, err := s.service.CreatePlayer(s.ctx, &model.Player{
		Name:       "  ",
		Mode:       "",
		Experience: -5,
	})
	s.ElementsMatch([]string{"name", "mode", "experience"}, s.fieldsOf(err))
}

func (s *ServiceSuite) TestListPlayersByModeIsCaseInsensitive() {
	s.createPlayer("Alice", "Sinh tồn", 320)
	s.createPlayer("Bob", "Đối kháng", 180)
	s.createPlayer("Charlie", "sinh tồn", 520)

	players, err := s.service.ListPlayersByMode(s.ctx, "SINH TỒN")
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("Alice", players[0].Name)
	s.Equal("Charlie", players[1].Name)
}

func (s *ServiceSuite) TestUpdatePlayerPartialPreservesOtherFields() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)

	experience := 400
	updated, err := s.service.UpdatePlayer(s.ctx, player.ID, model.PlayerUpdate{
		Experience: &experience,
	})
	s.Require().NoError(err)
	s.Equal(400, updated.Experience)
	s.Equal("Alice", updated.Name)
	s.Equal("Sinh tồn", updated.Mode)
}

func (s *ServiceSuite) TestUpdatePlayerRejectsBlankName() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)

	blank := "  "
	_, err := s.service.UpdatePlayer(s.ctx, player.ID, model.PlayerUpdate{Name: &blank})
	s.ElementsMatch([]string{"name"}, s.fieldsOf(err))
}

func (s *ServiceSuite) TestUpdatePlayerNotFound() {
	name := "Alice"
	_, err := s.service.UpdatePlayer(s.ctx, 99, model.PlayerUpdate{Name: &name})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestChangePlayerPassword() {
	player, err := s.service.CreatePlayer(s.ctx, &model.Player{
		Name: "Alice", Mode: "Sinh tồn", Secret: "old",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.ChangePlayerPassword(s.ctx, player.ID, "new"))

	stored, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal("new", stored.Secret)
	s.Equal("Alice", stored.Name)
}

func (s *ServiceSuite) TestChangePlayerPasswordRejectsBlank() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)

	err := s.service.ChangePlayerPassword(s.ctx, player.ID, "  ")
	s.ElementsMatch([]string{"new_password"}, s.fieldsOf(err))
}

func (s *ServiceSuite) TestDeletePlayerKeepsTransactions() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)
	_, err := s.service.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID: player.ID,
		Kind:     "Item",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeletePlayer(s.ctx, player.ID))

	txns, err := s.service.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Len(txns, 1)
}

// AffordableItems tests

func (s *ServiceSuite) TestAffordableItemsSortedByCost() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)
	s.createItem("Kiếm sắt", "Weapon", 120)
	s.createItem("Súng plasma", "Weapon", 260)
	s.createItem("Áo giáp kim cương", "Armor", 480)
	s.createItem("Nhẫn kim cương", "Accessory", 300)
	s.createItem("Xe địa hình", "Vehicle", 700)
	s.createItem("Thuốc hồi phục", "Consumable", 60)

	items, err := s.service.AffordableItems(s.ctx, player.ID)
	s.Require().NoError(err)

	costs := make([]int, len(items))
	for i, item := range items {
		costs[i] = item.XPCost
	}
	s.Equal([]int{60, 120, 260, 300}, costs)
}

func (s *ServiceSuite) TestAffordableItemsIncludesExactCost() {
	player := s.createPlayer("Alice", "Sinh tồn", 120)
	s.createItem("Kiếm sắt", "Weapon", 120)

	items, err := s.service.AffordableItems(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Len(items, 1)
}

func (s *ServiceSuite) TestAffordableItemsPlayerNotFound() {
	_, err := s.service.AffordableItems(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// PlayerTransactions tests

func (s *ServiceSuite) TestPlayerTransactionsNewestFirst() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)
	other := s.createPlayer("Bob", "Đối kháng", 180)

	base := s.clock.Now()
	for _, offset := range []time.Duration{-48 * time.Hour, -24 * time.Hour, -5 * time.Hour} {
		_, err := s.service.CreateTransaction(s.ctx, &model.Transaction{
			PlayerID:   player.ID,
			Kind:       "Item",
			OccurredAt: base.Add(offset),
		})
		s.Require().NoError(err)
	}
	_, err := s.service.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID:   other.ID,
		Kind:       "Item",
		OccurredAt: base.Add(-time.Hour),
	})
	s.Require().NoError(err)

	txns, err := s.service.PlayerTransactions(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Require().Len(txns, 3)
	s.Equal(base.Add(-5*time.Hour), txns[0].OccurredAt)
	s.Equal(base.Add(-48*time.Hour), txns[2].OccurredAt)
}

func (s *ServiceSuite) TestPlayerTransactionsPlayerNotFound() {
	_, err := s.service.PlayerTransactions(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Item tests

func (s *ServiceSuite) TestCreateItemReportsAllInvalidFields() {
	_, err := s.service.CreateItem(s.ctx, &model.Item{
		Name:     "",
		Category: " ",
		XPCost:   -1,
	})
	s.ElementsMatch([]string{"name", "category", "xp_cost"}, s.fieldsOf(err))
}

func (s *ServiceSuite) TestUpdateItemPartialPreservesOtherFields() {
	item := s.createItem("Kiếm sắt", "Weapon", 120)

	cost := 150
	updated, err := s.service.UpdateItem(s.ctx, item.ID, model.ItemUpdate{XPCost: &cost})
	s.Require().NoError(err)
	s.Equal(150, updated.XPCost)
	s.Equal("Kiếm sắt", updated.Name)
	s.Equal("Weapon", updated.Category)
}

func (s *ServiceSuite) TestWeaponsOverCost() {
	s.createItem("Kiếm sắt", "Weapon", 120)
	s.createItem("Súng plasma", "Weapon", 260)
	s.createItem("Dao găm", "Weapon", 100)
	s.createItem("Áo giáp kim cương", "Armor", 480)

	weapons, err := s.service.WeaponsOverCost(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(weapons, 2)
	// Strictly over the threshold, most expensive first
	s.Equal("Súng plasma", weapons[0].Name)
	s.Equal("Kiếm sắt", weapons[1].Name)
}

func (s *ServiceSuite) TestSearchItems() {
	s.createItem("Áo giáp kim cương", "Armor", 480)
	s.createItem("Nhẫn kim cương", "Accessory", 300)
	s.createItem("Kiếm sắt", "Weapon", 120)
	s.createItem("Khiên kim cương", "Armor", 500)

	items, err := s.service.SearchItems(s.ctx, "kim cương", 500)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	// Strictly under the bound, cheapest first
	s.Equal("Nhẫn kim cương", items[0].Name)
	s.Equal("Áo giáp kim cương", items[1].Name)
}

// Transaction tests

func (s *ServiceSuite) TestCreateTransactionDefaultsOccurredAt() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)

	txn, err := s.service.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID: player.ID,
		Kind:     "Item",
	})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), txn.OccurredAt)
}

func (s *ServiceSuite) TestCreateTransactionKeepsExplicitOccurredAt() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)
	occurred := s.clock.Now().Add(-48 * time.Hour)

	txn, err := s.service.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID:   player.ID,
		Kind:       "Item",
		OccurredAt: occurred,
	})
	s.Require().NoError(err)
	s.Equal(occurred, txn.OccurredAt)
}

func (s *ServiceSuite) TestCreateTransactionReportsAllInvalidFields() {
	_, err := s.service.CreateTransaction(s.ctx, &model.Transaction{})
	s.ElementsMatch([]string{"kind", "player_id"}, s.fieldsOf(err))
}

func (s *ServiceSuite) TestCreateTransactionRejectsUnknownPlayer() {
	_, err := s.service.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID: 99,
		Kind:     "Item",
	})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestCreateTransactionRejectsUnknownItem() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)
	itemID := model.ItemID(99)

	_, err := s.service.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID: player.ID,
		ItemID:   &itemID,
		Kind:     "Item",
	})
	s.ErrorIs(err, model.ErrItemNotFound)
}

func (s *ServiceSuite) TestCreateTransactionWithoutItem() {
	player := s.createPlayer("Alice", "Sinh tồn", 320)

	txn, err := s.service.CreateTransaction(s.ctx, &model.Transaction{
		PlayerID: player.ID,
		Kind:     "Vehicle",
	})
	s.Require().NoError(err)
	s.Nil(txn.ItemID)
}

// Resources tests

func (s *ServiceSuite) TestResourcesCatalog() {
	resources := s.service.Resources()
	s.Require().Len(resources, 4)

	byName := make(map[string]Resource, len(resources))
	for _, r := range resources {
		byName[r.Name] = r
	}
	s.Equal(10000, byName["Gold"].Amount)
	s.Equal(500, byName["Diamond"].Amount)
	s.Equal(0, byName["XP"].Amount)
	s.Equal(50, byName["Energy"].Amount)
}
