package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kamal-hamza/content-hub/pkg/errs"
)

type routeHandlers struct {
	catalogHandler catalogHandler
	pageHandler    pageHandler
}

func setupRoutes(r chi.Router, handlers *routeHandlers, logger zerolog.Logger) {
	responder := NewResponder(logger)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responder.WriteError(w, errs.NewNotFoundError("route", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responder.WriteError(w, errs.NewApiErr(http.StatusMethodNotAllowed, "method not allowed"))
	})

	r.Get("/healthz", handlers.catalogHandler.health())

	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware(logger))

		r.Get("/", handlers.pageHandler.index())

		r.Route("/api", func(r chi.Router) {
			r.Get("/categories", handlers.catalogHandler.listCategories())
			r.Get("/assets", handlers.catalogHandler.listAssets())
			r.Get("/assets/{assetID}", handlers.catalogHandler.getAsset())
		})
	})
}
