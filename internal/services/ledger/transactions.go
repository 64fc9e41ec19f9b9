package ledger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nghuy/gameledger/internal/model"
)

// CreateTransaction validates references and records a purchase.
//
// The player (and item, when given) existence checks and the insert are
// separate store calls with no lock across them: a delete racing in between
// leaves an orphaned reference. Reference validity holds at creation time
// only and is not re-checked afterwards.
func (s *Service) CreateTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	var v model.Validation
	if strings.TrimSpace(txn.Kind) == "" {
		v.Fail("kind", "is required")
	}
	if txn.PlayerID <= 0 {
		v.Fail("player_id", "is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetPlayer(ctx, txn.PlayerID); err != nil {
		return nil, err
	}
	if txn.ItemID != nil {
		if _, err := s.storage.GetItem(ctx, *txn.ItemID); err != nil {
			return nil, err
		}
	}

	if txn.OccurredAt.IsZero() {
		txn.OccurredAt = s.clock.Now()
	}

	created, err := s.storage.CreateTransaction(ctx, txn)
	if err != nil {
		return nil, err
	}

	s.logger.Info("transaction recorded",
		slog.Int64("transaction_id", int64(created.ID)),
		slog.Int64("player_id", int64(created.PlayerID)),
		slog.String("kind", created.Kind),
	)
	return created, nil
}

// GetTransaction returns a transaction by id
func (s *Service) GetTransaction(ctx context.Context, id model.TransactionID) (*model.Transaction, error) {
	return s.storage.GetTransaction(ctx, id)
}

// ListTransactions returns all transactions, id ascending
func (s *Service) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	return s.storage.ListTransactions(ctx)
}

// DeleteTransaction removes a transaction
func (s *Service) DeleteTransaction(ctx context.Context, id model.TransactionID) error {
	return s.storage.DeleteTransaction(ctx, id)
}
