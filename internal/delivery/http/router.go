package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"civitas/internal/delivery/http/controllers"
	"civitas/internal/delivery/http/middleware"
	"civitas/internal/domain"
)

// Controllers groups the handlers the router dispatches to.
type Controllers struct {
	Events         *controllers.EventController
	Participations *controllers.ParticipationController
	Health         *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// Protected routes run the identity gate before the handler.
func NewRouter(c Controllers, verifier domain.TokenVerifier, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Events
	mux.HandleFunc("GET /events", c.Events.ListEvents)
	mux.HandleFunc("GET /events/created", auth(c.Events.ListCreatedEvents))
	mux.HandleFunc("GET /events/{id}", auth(c.Events.GetEvent))
	mux.HandleFunc("POST /events", auth(c.Events.CreateEvent))
	mux.HandleFunc("PATCH /events/{id}", auth(c.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", auth(c.Events.DeleteEvent))

	// Participations
	mux.HandleFunc("POST /participations", auth(c.Participations.JoinEvent))
	mux.HandleFunc("GET /participations", auth(c.Participations.ListJoinedEvents))

	// Operations
	mux.HandleFunc("GET /healthz", c.Health.Health)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
