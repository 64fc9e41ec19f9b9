package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/nghuy/gameledger/internal/model"
)

// SeedDemoData loads a small demo dataset: three players, an item catalog,
// a handful of transactions spread over the last two days, and an admin
// identity for logging in. Safe to call on an empty store only; ids are
// assigned by the storage counters in insertion order.
func (a *App) SeedDemoData(ctx context.Context) error {
	now := a.Clock.Now()

	if err := a.Storage.SaveIdentity(ctx, &model.Identity{
		Username: "admin",
		Email:    "admin@gameledger.local",
		RoleName: "Admin",
		Secret:   "admin123",
	}); err != nil {
		return fmt.Errorf("seed identity: %w", err)
	}

	players := []*model.Player{
		{Name: "Alice", Mode: "Sinh tồn", Experience: 320, Secret: "pass1"},
		{Name: "Bob", Mode: "Đối kháng", Experience: 180, Secret: "pass2"},
		{Name: "Charlie", Mode: "Sinh tồn", Experience: 520, Secret: "pass3"},
	}
	for _, p := range players {
		if _, err := a.Storage.CreatePlayer(ctx, p); err != nil {
			return fmt.Errorf("seed player %q: %w", p.Name, err)
		}
	}

	items := []*model.Item{
		{Name: "Kiếm sắt", Category: "Weapon", XPCost: 120, Description: strPtr("Vũ khí cận chiến cơ bản")},
		{Name: "Súng plasma", Category: "Weapon", XPCost: 260, Description: strPtr("Vũ khí tầm xa năng lượng")},
		{Name: "Áo giáp kim cương", Category: "Armor", XPCost: 480, Description: strPtr("Giáp phòng thủ cao cấp")},
		{Name: "Nhẫn kim cương", Category: "Accessory", XPCost: 300, Description: nil},
		{Name: "Xe địa hình", Category: "Vehicle", XPCost: 700, Description: strPtr("Di chuyển nhanh trên mọi địa hình")},
		{Name: "Thuốc hồi phục", Category: "Consumable", XPCost: 60, Description: strPtr("Hồi máu tức thì")},
	}
	for _, it := range items {
		if _, err := a.Storage.CreateItem(ctx, it); err != nil {
			return fmt.Errorf("seed item %q: %w", it.Name, err)
		}
	}

	txns := []*model.Transaction{
		{PlayerID: 1, ItemID: itemPtr(1), Kind: "Item", OccurredAt: now.Add(-48 * time.Hour)},
		{PlayerID: 1, ItemID: itemPtr(3), Kind: "Item", OccurredAt: now.Add(-24 * time.Hour)},
		{PlayerID: 2, ItemID: itemPtr(1), Kind: "Item", OccurredAt: now.Add(-20 * time.Hour)},
		{PlayerID: 2, ItemID: itemPtr(5), Kind: "Vehicle", OccurredAt: now.Add(-10 * time.Hour)},
		{PlayerID: 3, ItemID: itemPtr(4), Kind: "Item", OccurredAt: now.Add(-5 * time.Hour)},
		{PlayerID: 3, ItemID: nil, Kind: "Vehicle", OccurredAt: now.Add(-3 * time.Hour)},
	}
	for i, txn := range txns {
		if _, err := a.Storage.CreateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("seed transaction %d: %w", i+1, err)
		}
	}

	return nil
}

func strPtr(s string) *string {
	return &s
}

func itemPtr(id model.ItemID) *model.ItemID {
	return &id
}
