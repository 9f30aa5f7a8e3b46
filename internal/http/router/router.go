package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"delivery-platform/internal/http/handlers"
	appmw "delivery-platform/internal/http/middleware"
	"delivery-platform/internal/http/middleware/ratelimit"
	"delivery-platform/internal/logx"
	"delivery-platform/internal/metrics"
)

// Deps holds everything the router mounts.
type Deps struct {
	Logger     logx.Logger
	Base       *handlers.Handlers
	Couriers   *handlers.CourierHandler
	Orders     *handlers.OrderHandler
	Deliveries *handlers.DeliveryHandler
	Fees       *handlers.FeeHandler
	RateLimit  *ratelimit.Middleware
	Counters   *metrics.Counters
	AdminToken string
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(appmw.Observability(d.Logger))
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer}
	if d.Counters != nil {
		gatherers = append(gatherers, d.Counters.Registry)
	}
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))

	r.Route("/couriers", func(r chi.Router) {
		r.Get("/", d.Couriers.List)
		r.Post("/", d.Couriers.Create)
		r.Get("/{id}", d.Couriers.GetByID)
		r.Patch("/{id}", d.Couriers.Update)
		r.Put("/{id}/location", d.Couriers.UpdateLocation)
		r.Delete("/{id}", d.Couriers.Deactivate)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", d.Orders.Create)
		r.Get("/{id}", d.Orders.GetByID)
		r.Put("/{id}/status", d.Orders.UpdateStatus)
	})

	r.Route("/deliveries", func(r chi.Router) {
		r.Post("/", d.Deliveries.Create)
		r.Get("/pending", d.Deliveries.ListPending)
		r.Get("/{id}", d.Deliveries.GetByID)
		r.Post("/{id}/assign", d.Deliveries.Assign)
		r.Put("/{id}/status", d.Deliveries.UpdateStatus)
		r.Post("/{id}/rating", d.Deliveries.Rate)
	})

	r.Get("/fees/quote", d.Fees.Quote)

	r.Route("/admin", func(r chi.Router) {
		r.Use(appmw.AdminToken(d.Logger, d.AdminToken))
		r.Get("/fees", d.Fees.GetConfig)
		r.Put("/fees", d.Fees.UpdateConfig)
	})

	return r
}
