package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kamal-hamza/content-hub/internal/adapters/repository"
	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/errs"
)

type catalogHandler struct {
	responder   Responder
	logger      zerolog.Logger
	list        *services.ListService
	stats       *services.StatsService
	startupTime time.Time
}

func newCatalogHandler(logger zerolog.Logger, list *services.ListService, stats *services.StatsService, startupTime time.Time) catalogHandler {
	logger = logger.With().Str("handlerName", "catalogHandler").Logger()

	return catalogHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		list:        list,
		stats:       stats,
		startupTime: startupTime,
	}
}

// listCategories returns the five categories in display order with counts
func (h catalogHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.stats.Execute(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to count categories", err))
			return
		}

		h.responder.WriteJSON(w, NewCategoryResponses(stats))
	}
}

// listAssets filters the catalog by ?q= and ?category= (label or slug)
func (h catalogHandler) listAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		req := services.ListRequest{Query: query.Get("q")}
		if raw := query.Get("category"); raw != "" {
			category, err := domain.ParseCategory(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("category", "unknown category "+raw))
				return
			}
			req.Category = category
		}

		resp, err := h.list.Execute(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to list assets", err))
			return
		}

		h.responder.WriteJSON(w, NewAssetCollection(req, resp))
	}
}

// getAsset returns one asset by id
func (h catalogHandler) getAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assetID")

		asset, err := h.list.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrAssetNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("asset", id))
				return
			}
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to get asset", err))
			return
		}

		h.responder.WriteJSON(w, NewAssetResponse(*asset, services.ViewList))
	}
}

func (h catalogHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := h.list.Catalog(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("catalog unavailable", err))
			return
		}

		h.responder.WriteJSON(w, HealthResponse{
			Status: "ok",
			Assets: len(catalog),
			Uptime: time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
