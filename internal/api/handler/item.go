package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nghuy/gameledger/internal/api/request"
	"github.com/nghuy/gameledger/internal/api/response"
	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/services/ledger"
)

// Query constants carried over from the shop's fixed endpoints
const (
	weaponCostThreshold  = 100
	diamondNameSubstring = "kim cương"
	diamondCostBound     = 500
)

// ItemHandler handles item endpoints
type ItemHandler struct {
	ledgerService *ledger.Service
}

// NewItemHandler creates a new item handler
func NewItemHandler(ledgerService *ledger.Service) *ItemHandler {
	return &ItemHandler{
		ledgerService: ledgerService,
	}
}

// List handles GET /api/v1/items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ledgerService.ListItems(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ItemsFromModel(items))
}

// Create handles POST /api/v1/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	item, err := h.ledgerService.CreateItem(r.Context(), &model.Item{
		Name:        req.Name,
		Category:    req.Category,
		XPCost:      req.XPCost,
		Description: req.Description,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.ItemFromModel(item))
}

// Get handles GET /api/v1/items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.ledgerService.GetItem(r.Context(), model.ItemID(id))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ItemFromModel(item))
}

// Update handles PUT /api/v1/items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	item, err := h.ledgerService.UpdateItem(r.Context(), model.ItemID(id), model.ItemUpdate{
		Name:        req.Name,
		Category:    req.Category,
		XPCost:      req.XPCost,
		Description: req.Description,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ItemFromModel(item))
}

// Delete handles DELETE /api/v1/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.ledgerService.DeleteItem(r.Context(), model.ItemID(id)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// WeaponsOver100XP handles GET /api/v1/weapons/over-100xp
func (h *ItemHandler) WeaponsOver100XP(w http.ResponseWriter, r *http.Request) {
	items, err := h.ledgerService.WeaponsOverCost(r.Context(), weaponCostThreshold)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ItemsFromModel(items))
}

// DiamondUnder500XP handles GET /api/v1/items/kim-cuong-under-500xp
func (h *ItemHandler) DiamondUnder500XP(w http.ResponseWriter, r *http.Request) {
	items, err := h.ledgerService.SearchItems(r.Context(), diamondNameSubstring, diamondCostBound)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ItemsFromModel(items))
}
