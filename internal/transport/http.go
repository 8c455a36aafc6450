package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkarczmarek/catering-wizard/internal/handler"
	"github.com/pkarczmarek/catering-wizard/internal/wizard"
)

// NewRouter wires the catalog and session surfaces onto a chi router.
func NewRouter(store *wizard.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	catalogHandler := handler.NewCatalogHandler()
	sessionHandler := handler.NewSessionHandler(store)

	r.Get("/catalog", catalogHandler.GetCatalog)
	r.Get("/catalog/steps", catalogHandler.GetSteps)

	r.Post("/sessions", sessionHandler.CreateSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", sessionHandler.GetSession)
		r.Get("/summary", sessionHandler.GetSummary)
		r.Get("/suggestions", sessionHandler.GetSuggestions)

		r.Put("/event", sessionHandler.UpdateEvent)
		r.Put("/products/simple/{productID}", sessionHandler.SetSimpleQuantity)
		r.Put("/products/expandable/{productID}/variants/{variantID}", sessionHandler.SetExpandableVariantQuantity)
		r.Put("/products/configurable/{productID}", sessionHandler.SetConfigurableSelection)
		r.Post("/products/configurable/{productID}/groups/{groupID}/toggle", sessionHandler.ToggleGroupOption)
		r.Put("/extras/{extraID}", sessionHandler.SetExtraQuantity)
		r.Put("/packaging", sessionHandler.SetPackaging)
		r.Put("/waiter-service", sessionHandler.SetWaiterService)
		r.Put("/contact", sessionHandler.UpdateContact)
		r.Put("/payment", sessionHandler.SetPaymentMethod)

		r.Post("/next", sessionHandler.NextStep)
		r.Post("/prev", sessionHandler.PrevStep)
		r.Post("/goto", sessionHandler.GoToStep)
		r.Post("/reset", sessionHandler.ResetSession)
		r.Post("/submit", sessionHandler.SubmitOrder)
	})

	return r
}
