package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nghuy/gameledger/internal/api/request"
	"github.com/nghuy/gameledger/internal/api/response"
	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/services/ledger"
)

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	ledgerService *ledger.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(ledgerService *ledger.Service) *PlayerHandler {
	return &PlayerHandler{
		ledgerService: ledgerService,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.ledgerService.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// ListByMode handles GET /api/v1/players/by-mode?mode=
func (h *PlayerHandler) ListByMode(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if strings.TrimSpace(mode) == "" {
		WriteError(w, NewInvalidRequestError("mode is required"))
		return
	}

	players, err := h.ledgerService.ListPlayersByMode(r.Context(), mode)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.ledgerService.CreatePlayer(r.Context(), &model.Player{
		Name:       req.Name,
		Mode:       req.Mode,
		Experience: req.Experience,
		Secret:     req.Password,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.ledgerService.GetPlayer(r.Context(), model.PlayerID(id))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PUT /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.ledgerService.UpdatePlayer(r.Context(), model.PlayerID(id), model.PlayerUpdate{
		Name:       req.Name,
		Mode:       req.Mode,
		Experience: req.Experience,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// UpdatePassword handles PATCH /api/v1/players/{id}/password
func (h *PlayerHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.ledgerService.ChangePlayerPassword(r.Context(), model.PlayerID(id), req.NewPassword); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.ledgerService.DeletePlayer(r.Context(), model.PlayerID(id)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// AffordableItems handles GET /api/v1/players/{id}/affordable-items
func (h *PlayerHandler) AffordableItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.ledgerService.AffordableItems(r.Context(), model.PlayerID(id))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ItemsFromModel(items))
}

// Transactions handles GET /api/v1/players/{id}/transactions
func (h *PlayerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	txns, err := h.ledgerService.PlayerTransactions(r.Context(), model.PlayerID(id))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TransactionsFromModel(txns))
}
