package handler

import (
	"net/http"
	"strconv"

	"github.com/nghuy/gameledger/internal/api/response"
	"github.com/nghuy/gameledger/internal/services/ledger"
	"github.com/nghuy/gameledger/internal/services/stats"
)

// StatsHandler handles aggregate and catalog endpoints
type StatsHandler struct {
	statsService  *stats.Service
	ledgerService *ledger.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service, ledgerService *ledger.Service) *StatsHandler {
	return &StatsHandler{
		statsService:  statsService,
		ledgerService: ledgerService,
	}
}

// Resources handles GET /api/v1/resources
func (h *StatsHandler) Resources(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.ResourcesFromService(h.ledgerService.Resources()))
}

// TopPurchasedItems handles GET /api/v1/items/top-purchased?top=N
func (h *StatsHandler) TopPurchasedItems(w http.ResponseWriter, r *http.Request) {
	top := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			WriteError(w, NewInvalidRequestError("top must be a positive integer"))
			return
		}
		top = parsed
	}

	groups, err := h.statsService.TopPurchasedItems(r.Context(), top)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ItemPurchasesFromStats(groups))
}

// PurchaseCounts handles GET /api/v1/players/purchase-counts
func (h *StatsHandler) PurchaseCounts(w http.ResponseWriter, r *http.Request) {
	groups, err := h.statsService.PurchaseCounts(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerPurchasesFromStats(groups))
}

// Dashboard handles GET /api/v1/stats/dashboard
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.statsService.Dashboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.DashboardFromStats(dashboard))
}
