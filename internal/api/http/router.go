package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rentline-backend/internal/security"
	"rentline-backend/internal/service"
)

// RouterDeps carries everything the router needs wired in.
type RouterDeps struct {
	DB           *sql.DB
	Tokens       security.TokenManager
	AuthSvc      service.AuthService
	RentalSvc    service.RentalService
	ExtensionSvc service.ExtensionService
	StockSvc     service.StockService
	PaymentSvc   service.PaymentService
	AuditSvc     service.AuditService
}

// NewRouter builds the HTTP routing table. Everything under /api/v1
// except login requires a valid bearer token.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", healthHandler(deps.DB)).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	authHandler := NewAuthHandler(deps.AuthSvc)
	router.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods("POST")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(deps.Tokens))

	rentalHandler := NewRentalHandler(deps.RentalSvc)
	api.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	api.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods("GET")
	api.HandleFunc("/rentals/{id}/cancel", rentalHandler.Cancel).Methods("POST")
	api.HandleFunc("/rentals/{id}/complete", rentalHandler.Complete).Methods("POST")

	extensionHandler := NewExtensionHandler(deps.ExtensionSvc)
	api.HandleFunc("/rentals/{id}/extension/check", extensionHandler.CheckAvailability).Methods("POST")
	api.HandleFunc("/rentals/{id}/extension/quote", extensionHandler.Quote).Methods("POST")
	api.HandleFunc("/rentals/{id}/extension", extensionHandler.Submit).Methods("POST")
	api.HandleFunc("/extension/sessions/{sessionID}/select", extensionHandler.SelectSolution).Methods("POST")
	api.HandleFunc("/extension/sessions/{sessionID}/cancel", extensionHandler.CancelDialog).Methods("POST")

	stockHandler := NewStockHandler(deps.StockSvc)
	api.HandleFunc("/stock/{itemID}/adjust", stockHandler.Adjust).Methods("POST")
	api.HandleFunc("/stock/{itemID}/transfer", stockHandler.Transfer).Methods("POST")
	api.HandleFunc("/stock/{itemID}/movements", stockHandler.ListMovements).Methods("GET")

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	api.HandleFunc("/payments", paymentHandler.List).Methods("GET")
	api.HandleFunc("/payments/summary", paymentHandler.Summary).Methods("GET")

	auditHandler := NewAuditHandler(deps.AuditSvc)
	api.HandleFunc("/audit", auditHandler.List).Methods("GET")

	return router
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "database unreachable")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
