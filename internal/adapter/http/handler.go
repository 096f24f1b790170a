package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
	"admanager/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the console use case, a logger for structured logging and the
// metrics it reports request durations to. Routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	svc     port.ConsoleUseCase
	logger  *slog.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. gatherer backs the
// /metrics endpoint and may be nil to leave it out.
func NewHandler(svc port.ConsoleUseCase, logger *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger, metrics: m}
	r := chi.NewRouter()
	r.Use(requestID, middleware.Recoverer, h.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/api/test-bigquery", h.handleTestWarehouse)

	r.Route("/api/v1", func(r chi.Router) {
		mount(r, h, resource[domain.Client, port.ClientInput]{
			path:   "/clients",
			create: svc.CreateClient,
			update: svc.UpdateClient,
			get:    svc.GetClient,
			list: func(ctx context.Context, _ string) ([]domain.Client, error) {
				return svc.ListClients(ctx)
			},
			remove: svc.DeleteClient,
			sub:    map[string]http.HandlerFunc{"/{id}/projects": children(h, svc.ListProjects)},
		})
		mount(r, h, resource[domain.Project, port.ProjectInput]{
			path:   "/projects",
			filter: "client_id",
			create: svc.CreateProject,
			update: svc.UpdateProject,
			get:    svc.GetProject,
			list:   svc.ListProjects,
			remove: svc.DeleteProject,
			sub:    map[string]http.HandlerFunc{"/{id}/campaigns": children(h, svc.ListCampaigns)},
		})
		mount(r, h, resource[domain.Campaign, port.CampaignInput]{
			path:   "/campaigns",
			filter: "project_id",
			create: svc.CreateCampaign,
			update: svc.UpdateCampaign,
			get:    svc.GetCampaign,
			list:   svc.ListCampaigns,
			remove: svc.DeleteCampaign,
			sub:    map[string]http.HandlerFunc{"/{id}/adsets": children(h, svc.ListAdSets)},
		})
		mount(r, h, resource[domain.AdSet, port.AdSetInput]{
			path:   "/adsets",
			filter: "campaign_id",
			create: svc.CreateAdSet,
			update: svc.UpdateAdSet,
			get:    svc.GetAdSet,
			list:   svc.ListAdSets,
			remove: svc.DeleteAdSet,
			sub:    map[string]http.HandlerFunc{"/{id}/ads": children(h, svc.ListAds)},
		})
		mount(r, h, resource[domain.Ad, port.AdInput]{
			path:   "/ads",
			filter: "adset_id",
			create: svc.CreateAd,
			update: svc.UpdateAd,
			get:    svc.GetAd,
			list:   svc.ListAds,
			remove: svc.DeleteAd,
		})

		r.Get("/mode", h.handleGetMode)
		r.Put("/mode", h.handleSetMode)
		r.Get("/export", h.handleExport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
