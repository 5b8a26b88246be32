package api

import (
	_ "fxcalc/docs"
	"fxcalc/internal/conversion/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(conversionHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/currencies", conversionHandler.GetSupportedCodes)
		r.Get("/rates/pairs", conversionHandler.GetPairs)
		r.Get("/rates/{source}/{target}", conversionHandler.GetRate)
		r.Post("/swap", conversionHandler.Swap)
		r.Post("/conversions", conversionHandler.CreateConversion)
		r.Get("/conversions/{id}", conversionHandler.GetConversion)
	})
	return router
}
