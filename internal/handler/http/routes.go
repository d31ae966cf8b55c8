package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const openAPIPath = "/v1/openapi.yaml"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/v1", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.getHealth)
		r.Get("/openapi.yaml", h.getOpenAPISpec)

		// registered flat so the collection path carries no mount stub
		// and the Allow header on 405 lists POST only
		r.Get("/swift-codes/{swiftCode}", h.getBank)
		r.Get("/swift-codes/country/{countryISO2code}", h.getCountryBanks)

		// mutating routes, guarded when a token sign key is configured
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/swift-codes", h.addBank)
			r.Post("/swift-codes/", h.addBank)
			r.Delete("/swift-codes/{swiftCode}", h.deleteBank)
		})
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(openAPIPath)))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
