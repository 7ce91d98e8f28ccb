package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/bizzauto/gateway/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors, mw.Auth)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/all", h.AllExpenses)
			r.Post("/add", h.AddExpense)
			r.Get("/summary", h.SummaryHandler)
			r.Get("/export", h.ExportExpenses)
			r.Put("/{id}", h.UpdateExpense)
			r.Delete("/{id}", h.DeleteExpense)
		})

		r.Post("/send-meta-whatsapp", h.SendMetaWhatsapp)
	})

	return mux
}
