package httpserver

import (
	"net/http"
	"time"

	"vims-go/internal/config"
	"vims-go/internal/transport/httpserver/handler"
	corsmw "vims-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/persons", handlers.ListPersons)
		r.Post("/persons", handlers.CreatePerson)
		r.Get("/persons/{id}", handlers.GetPerson)
		r.Put("/persons/{id}", handlers.UpdatePerson)
		r.Delete("/persons/{id}", handlers.DeletePerson)

		r.Get("/households", handlers.ListHouseholds)
		r.Post("/households", handlers.CreateHousehold)
		r.Get("/households/{id}", handlers.GetHousehold)
		r.Put("/households/{id}", handlers.UpdateHousehold)
		r.Delete("/households/{id}", handlers.DeleteHousehold)

		r.Get("/deaths", handlers.ListDeaths)
		r.Post("/deaths", handlers.RegisterDeath)
		r.Delete("/deaths/{id}", handlers.DeregisterDeath)

		r.Get("/disabilities", handlers.ListDisabilities)
		r.Post("/disabilities", handlers.RegisterDisability)
		r.Delete("/disabilities/{id}", handlers.RemoveDisability)

		r.Get("/lookups/{table}", handlers.ListLookup)
		r.Post("/lookups/{table}", handlers.AddLookup)

		r.Get("/reports/villages", handlers.VillageSummary)
		r.Get("/reports/deaths", handlers.DeathSummary)
		r.Get("/reports/disabilities", handlers.DisabilitySummary)
		r.Get("/reports/charts/gender", handlers.GenderChart)
		r.Get("/reports/charts/population", handlers.PopulationChart)

		r.Get("/exports/persons.csv", handlers.ExportPersonsCSV)
	})

	return r
}
