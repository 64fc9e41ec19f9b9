package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nghuy/gameledger/internal/api/request"
	"github.com/nghuy/gameledger/internal/api/response"
	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/services/ledger"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	ledgerService *ledger.Service
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerService *ledger.Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

// List handles GET /api/v1/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txns, err := h.ledgerService.ListTransactions(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TransactionsFromModel(txns))
}

// Create handles POST /api/v1/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	txn := &model.Transaction{
		PlayerID: model.PlayerID(req.PlayerID),
		Kind:     req.Kind,
	}
	if req.ItemID != nil {
		itemID := model.ItemID(*req.ItemID)
		txn.ItemID = &itemID
	}
	if req.OccurredAt != nil {
		txn.OccurredAt = *req.OccurredAt
	}

	created, err := h.ledgerService.CreateTransaction(r.Context(), txn)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.TransactionFromModel(created))
}

// Get handles GET /api/v1/transactions/{id}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	txn, err := h.ledgerService.GetTransaction(r.Context(), model.TransactionID(id))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TransactionFromModel(txn))
}

// Delete handles DELETE /api/v1/transactions/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.ledgerService.DeleteTransaction(r.Context(), model.TransactionID(id)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
