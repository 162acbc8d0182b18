package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/pillpal/pillpal-api/docs"
	"github.com/pillpal/pillpal-api/internal/api/handler"
	"github.com/pillpal/pillpal-api/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler       *handler.UserHandler
	medicationHandler *handler.MedicationHandler
	doseHandler       *handler.DoseHandler
	riskHandler       *handler.RiskHandler
	alertHandler      *handler.AlertHandler
	exportHandler     *handler.ExportHandler
	notifyHandler     *handler.NotifyHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	medicationHandler *handler.MedicationHandler,
	doseHandler *handler.DoseHandler,
	riskHandler *handler.RiskHandler,
	alertHandler *handler.AlertHandler,
	exportHandler *handler.ExportHandler,
	notifyHandler *handler.NotifyHandler,
) *Router {
	return &Router{
		userHandler:       userHandler,
		medicationHandler: medicationHandler,
		doseHandler:       doseHandler,
		riskHandler:       riskHandler,
		alertHandler:      alertHandler,
		exportHandler:     exportHandler,
		notifyHandler:     notifyHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Medications (nested under users)
			r.Route("/{userId}/medications", func(r chi.Router) {
				r.Post("/", rt.medicationHandler.Create)
				r.Get("/", rt.medicationHandler.List)
				r.Delete("/{medicationId}", rt.medicationHandler.Delete)
			})

			// Doses (nested under users)
			r.Route("/{userId}/doses", func(r chi.Router) {
				r.Post("/", rt.doseHandler.Create)
				r.Get("/", rt.doseHandler.List)
				r.Get("/next", rt.doseHandler.Next)
				r.Patch("/{doseId}", rt.doseHandler.Update)
			})

			// Risk and insights
			r.Route("/{userId}/risk", func(r chi.Router) {
				r.Get("/today", rt.riskHandler.GetRiskToday)
				r.Get("/insights", rt.riskHandler.GetInsights)
				r.Post("/insights/feedback", rt.riskHandler.PostFeedback)
			})

			// Export and notifications
			r.Get("/{userId}/export/adherence.csv", rt.exportHandler.AdherenceCSV)
			r.Post("/{userId}/notify/insights", rt.notifyHandler.SendInsights)
		})

		// Alerts
		r.Post("/alerts/{alertId}/ack", rt.alertHandler.Ack)
	})

	return r
}
