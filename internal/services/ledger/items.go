package ledger

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/nghuy/gameledger/internal/model"
)

// CategoryWeapon is the item category matched by the weapons query
const CategoryWeapon = "Weapon"

// CreateItem validates and stores a new item, assigning its id
func (s *Service) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	var v model.Validation
	if strings.TrimSpace(item.Name) == "" {
		v.Fail("name", "is required")
	}
	if strings.TrimSpace(item.Category) == "" {
		v.Fail("category", "is required")
	}
	if item.XPCost < 0 {
		v.Fail("xp_cost", "must not be negative")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		slog.Int64("item_id", int64(created.ID)),
		slog.String("name", created.Name),
	)
	return created, nil
}

// GetItem returns an item by id
func (s *Service) GetItem(ctx context.Context, id model.ItemID) (*model.Item, error) {
	return s.storage.GetItem(ctx, id)
}

// ListItems returns all items, id ascending
func (s *Service) ListItems(ctx context.Context) ([]*model.Item, error) {
	return s.storage.ListItems(ctx)
}

// UpdateItem merges the provided fields into an existing item.
// Fields left nil in the update are unchanged.
func (s *Service) UpdateItem(ctx context.Context, id model.ItemID, update model.ItemUpdate) (*model.Item, error) {
	var v model.Validation
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		v.Fail("name", "must not be blank")
	}
	if update.Category != nil && strings.TrimSpace(*update.Category) == "" {
		v.Fail("category", "must not be blank")
	}
	if update.XPCost != nil && *update.XPCost < 0 {
		v.Fail("xp_cost", "must not be negative")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return s.storage.UpdateItem(ctx, id, func(i *model.Item) {
		if update.Name != nil {
			i.Name = *update.Name
		}
		if update.Category != nil {
			i.Category = *update.Category
		}
		if update.XPCost != nil {
			i.XPCost = *update.XPCost
		}
		if update.Description != nil {
			i.Description = update.Description
		}
	})
}

// DeleteItem removes an item. Past transactions referencing the item are
// kept as-is.
func (s *Service) DeleteItem(ctx context.Context, id model.ItemID) error {
	return s.storage.DeleteItem(ctx, id)
}

// WeaponsOverCost returns weapons costing strictly more than threshold XP,
// most expensive first
func (s *Service) WeaponsOverCost(ctx context.Context, threshold int) ([]*model.Item, error) {
	items, err := s.storage.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	weapons := make([]*model.Item, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Category, CategoryWeapon) && item.XPCost > threshold {
			weapons = append(weapons, item)
		}
	}
	slices.SortStableFunc(weapons, func(a, b *model.Item) int {
		return b.XPCost - a.XPCost
	})
	return weapons, nil
}

// SearchItems returns items whose name contains substring (case-insensitive)
// and whose cost is strictly under bound, cheapest first
func (s *Service) SearchItems(ctx context.Context, substring string, bound int) ([]*model.Item, error) {
	items, err := s.storage.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(substring)
	matched := make([]*model.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) && item.XPCost < bound {
			matched = append(matched, item)
		}
	}
	slices.SortStableFunc(matched, func(a, b *model.Item) int {
		return a.XPCost - b.XPCost
	})
	return matched, nil
}
