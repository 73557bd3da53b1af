package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"outreach/internal/http/handlers"
	"outreach/internal/middleware"
)

// Options configures the router's middleware.
type Options struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	// FormRateLimit is the number of email-relaying requests one client may
	// make per minute. Zero disables the limit.
	FormRateLimit int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Post("/auth/login", app.Login)
		r.Post("/auth/register", app.Register)

		r.Get("/courses", app.CoursesList)
		r.Post("/courses", app.CoursesCreate)
		r.Post("/courses/{id}/enroll", app.CoursesEnroll)

		r.Get("/users", app.UsersList)
		r.Post("/users/register", app.UsersRegister)

		r.Get("/partnerships", app.PartnershipsList)
		r.Post("/partnerships", app.PartnershipsCreate)

		r.Get("/donations", app.DonationsList)
		r.Post("/donations", app.DonationsCreate)

		// every route below sends email
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(opts.FormRateLimit, time.Minute))

			r.Post("/newsletter/subscribe", app.NewsletterSubscribe)
			r.Post("/send-partner-form", app.SendPartnerForm)
			r.Post("/apply-ai-role", app.ApplyAIRole)
			r.Post("/live-session-register", app.LiveSessionRegister)
			r.Post("/notify-live-session", app.NotifyLiveSession)
			r.Post("/refer-student", app.ReferStudent)
			r.Post("/volunteer", app.Volunteer)
			r.Post("/become-partner-help", app.BecomePartnerHelp)
			r.Post("/contact/send-message", app.ContactSendMessage)
		})
	})

	return r
}
