package httpserver

import (
	"net/http"
	"time"

	"church-app-go/internal/config"
	"church-app-go/internal/transport/httpserver/handler"
	corsmw "church-app-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(120 * time.Second))
	r.Use(corsmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/demo-data", handlers.GenerateDemoData)
		r.Delete("/demo-data", handlers.PurgeDemoData)

		r.Get("/members", handlers.ListMembers)
		r.Get("/events", handlers.ListEvents)
		r.Get("/dashboard/summary", handlers.DashboardSummary)
	})

	return r
}
