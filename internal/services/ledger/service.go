package ledger

import (
	"log/slog"

	"github.com/nghuy/gameledger/internal/dependencies/clock"
	"github.com/nghuy/gameledger/internal/storage"
)

// Service is the system of record for players, items, and transactions.
//
// Every mutation is atomic per entity key. There is no multi-entity
// transaction: existence checks and the subsequent insert are separate store
// calls, so a concurrent delete in between can orphan a reference.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new ledger service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// Resource describes one of the game's resource kinds
type Resource struct {
	Name        string
	Description string
	Amount      int
}

// Resources returns the static catalog of resource kinds
func (s *Service) Resources() []Resource {
	return []Resource{
		{Name: "Gold", Description: "Currency used to buy basic items", Amount: 10000},
		{Name: "Diamond", Description: "Premium currency", Amount: 500},
		{Name: "XP", Description: "Experience points earned by playing", Amount: 0},
		{Name: "Energy", Description: "Limits match attempts", Amount: 50},
	}
}
