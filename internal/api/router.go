package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes wires every handler into the chi router. The privacy, terms, buddy
// and explore pages are deliberately public; everything else content-bearing
// sits behind the session gate.
func Routes(sessions *SessionManager, auth *AuthHandler, sos *SOSHandler, explore *ExploreHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)    // Log API requests
	r.Use(middleware.Recoverer) // Recover from panics
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: false,
	}))

	// Public routes
	r.Get("/login", auth.ShowLogin)
	r.Post("/login", auth.Login)
	r.Post("/register", auth.Register)
	r.Get("/logout", auth.Logout)
	r.Get("/privacy", StaticPage("content.html", "Privacy"))
	r.Get("/terms", StaticPage("content.html", "Terms"))
	r.Get("/buddy", StaticPage("buddy.html", "Buddy"))
	r.Get("/explore", explore.ShowForm)
	r.Post("/explore", explore.Filter)

	// Gated routes
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireUser)

		r.Get("/", StaticPage("index.html", "Home"))
		r.Get("/product", StaticPage("content.html", "Product"))
		r.Get("/solutions", StaticPage("content.html", "Solutions"))
		r.Get("/community", StaticPage("content.html", "Community"))
		r.Get("/resources", StaticPage("content.html", "Resources"))
		r.Get("/contact", StaticPage("content.html", "Contact"))
		r.Get("/twilio", sos.ShowForm)
		r.Post("/twilio", sos.Raise)
		r.Get("/alerts", sos.Dashboard)
	})

	return r
}
