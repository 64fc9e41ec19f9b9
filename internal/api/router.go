package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nghuy/gameledger/internal/api/handler"
	"github.com/nghuy/gameledger/internal/api/middleware"
	"github.com/nghuy/gameledger/internal/mail"
	"github.com/nghuy/gameledger/internal/services/auth"
	"github.com/nghuy/gameledger/internal/services/ledger"
	"github.com/nghuy/gameledger/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	LedgerService *ledger.Service
	StatsService  *stats.Service
	// MailSender is optional; the email route is omitted when nil
	MailSender *mail.Sender
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.LedgerService)
	itemHandler := handler.NewItemHandler(cfg.LedgerService)
	txnHandler := handler.NewTransactionHandler(cfg.LedgerService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService, cfg.LedgerService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	me := api.PathPrefix("/auth/me").Subrouter()
	me.Use(authMiddleware)
	me.HandleFunc("", authHandler.Me).Methods(http.MethodGet)

	// Ledger routes accept a token but do not require one
	open := api.NewRoute().Subrouter()
	open.Use(optionalAuthMiddleware)

	// Static resource catalog
	open.HandleFunc("/resources", statsHandler.Resources).Methods(http.MethodGet)

	// Player routes; fixed paths come before the {id} routes
	open.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	open.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	open.HandleFunc("/players/by-mode", playerHandler.ListByMode).Methods(http.MethodGet)
	open.HandleFunc("/players/purchase-counts", statsHandler.PurchaseCounts).Methods(http.MethodGet)
	open.HandleFunc("/players/{id:[0-9]+}", playerHandler.Get).Methods(http.MethodGet)
	open.HandleFunc("/players/{id:[0-9]+}", playerHandler.Update).Methods(http.MethodPut)
	open.HandleFunc("/players/{id:[0-9]+}", playerHandler.Delete).Methods(http.MethodDelete)
	open.HandleFunc("/players/{id:[0-9]+}/password", playerHandler.UpdatePassword).Methods(http.MethodPatch)
	open.HandleFunc("/players/{id:[0-9]+}/affordable-items", playerHandler.AffordableItems).Methods(http.MethodGet)
	open.HandleFunc("/players/{id:[0-9]+}/transactions", playerHandler.Transactions).Methods(http.MethodGet)

	// Item routes
	open.HandleFunc("/items", itemHandler.List).Methods(http.MethodGet)
	open.HandleFunc("/items", itemHandler.Create).Methods(http.MethodPost)
	open.HandleFunc("/items/top-purchased", statsHandler.TopPurchasedItems).Methods(http.MethodGet)
	open.HandleFunc("/items/kim-cuong-under-500xp", itemHandler.DiamondUnder500XP).Methods(http.MethodGet)
	open.HandleFunc("/items/{id:[0-9]+}", itemHandler.Get).Methods(http.MethodGet)
	open.HandleFunc("/items/{id:[0-9]+}", itemHandler.Update).Methods(http.MethodPut)
	open.HandleFunc("/items/{id:[0-9]+}", itemHandler.Delete).Methods(http.MethodDelete)
	open.HandleFunc("/weapons/over-100xp", itemHandler.WeaponsOver100XP).Methods(http.MethodGet)

	// Transaction routes
	open.HandleFunc("/transactions", txnHandler.List).Methods(http.MethodGet)
	open.HandleFunc("/transactions", txnHandler.Create).Methods(http.MethodPost)
	open.HandleFunc("/transactions/{id:[0-9]+}", txnHandler.Get).Methods(http.MethodGet)
	open.HandleFunc("/transactions/{id:[0-9]+}", txnHandler.Delete).Methods(http.MethodDelete)

	// Aggregates
	open.HandleFunc("/stats/dashboard", statsHandler.Dashboard).Methods(http.MethodGet)

	// Email side endpoint, only when a sender is configured
	if cfg.MailSender != nil {
		emailHandler := handler.NewEmailHandler(cfg.MailSender)
		email := api.PathPrefix("/email").Subrouter()
		email.Use(authMiddleware)
		email.HandleFunc("/send", emailHandler.Send).Methods(http.MethodPost)
	}

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
