package ledger

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/nghuy/gameledger/internal/model"
)

// CreatePlayer validates and stores a new player, assigning its id
func (s *Service) CreatePlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	var v model.Validation
	if strings.TrimSpace(player.Name) == "" {
		v.Fail("name", "is required")
	}
	if strings.TrimSpace(player.Mode) == "" {
		v.Fail("mode", "is required")
	}
	if player.Experience < 0 {
		v.Fail("experience", "must not be negative")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	created, err := s.storage.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.Int64("player_id", int64(created.ID)),
		slog.String("name", created.Name),
	)
	return created, nil
}

// GetPlayer returns a player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers returns all players, id ascending
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// ListPlayersByMode returns players whose mode matches case-insensitively
func (s *Service) ListPlayersByMode(ctx context.Context, mode string) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if strings.EqualFold(p.Mode, mode) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// UpdatePlayer merges the provided fields into an existing player.
// Fields left nil in the update are unchanged.
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, update model.PlayerUpdate) (*model.Player, error) {
	var v model.Validation
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		v.Fail("name", "must not be blank")
	}
	if update.Mode != nil && strings.TrimSpace(*update.Mode) == "" {
		v.Fail("mode", "must not be blank")
	}
	if update.Experience != nil && *update.Experience < 0 {
		v.Fail("experience", "must not be negative")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return s.storage.UpdatePlayer(ctx, id, func(p *model.Player) {
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Mode != nil {
			p.Mode = *update.Mode
		}
		if update.Experience != nil {
			p.Experience = *update.Experience
		}
	})
}

// ChangePlayerPassword replaces a player's stored secret
func (s *Service) ChangePlayerPassword(ctx context.Context, id model.PlayerID, newSecret string) error {
	var v model.Validation
	if strings.TrimSpace(newSecret) == "" {
		v.Fail("new_password", "is required")
	}
	if err := v.Err(); err != nil {
		return err
	}

	_, err := s.storage.UpdatePlayer(ctx, id, func(p *model.Player) {
		p.Secret = newSecret
	})
	return err
}

// DeletePlayer removes a player. Past transactions referencing the player
// are kept as-is.
func (s *Service) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.storage.DeletePlayer(ctx, id)
}

// AffordableItems returns the items a player can buy with their current
// experience, cheapest first
func (s *Service) AffordableItems(ctx context.Context, playerID model.PlayerID) ([]*model.Item, error) {
	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	items, err := s.storage.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	affordable := make([]*model.Item, 0, len(items))
	for _, item := range items {
		if item.XPCost <= player.Experience {
			affordable = append(affordable, item)
		}
	}
	slices.SortStableFunc(affordable, func(a, b *model.Item) int {
		return a.XPCost - b.XPCost
	})
	return affordable, nil
}

// PlayerTransactions returns a player's transactions, most recent first
func (s *Service) PlayerTransactions(ctx context.Context, playerID model.PlayerID) ([]*model.Transaction, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	txns, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.PlayerID == playerID {
			matched = append(matched, t)
		}
	}
	slices.SortStableFunc(matched, func(a, b *model.Transaction) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})
	return matched, nil
}
