package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/products", app.listProductsHandler)
	mux.HandleFunc("POST /api/products", app.registerProductHandler)

	mux.HandleFunc("GET /api/shipments", app.listShipmentsHandler)
	mux.HandleFunc("POST /api/shipments", app.fundEscrowHandler)
	mux.HandleFunc("POST /api/shipments/{id}/events", app.addEventHandler)
	mux.HandleFunc("POST /api/shipments/{id}/confirm", app.confirmDeliveryHandler)

	mux.HandleFunc("GET /api/users", app.listUsersHandler)
	mux.HandleFunc("GET /api/users/{id}/shipments", app.userShipmentsHandler)

	mux.HandleFunc("GET /api/weather/{location}", app.weatherHandler)
	mux.HandleFunc("POST /api/auth/verify", app.verifyPasswordHandler)

	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	return WithRequestID(WithLogging(WithMetrics(WithCORS(mux))))
}
