package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"minutify/internal/handlers"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Process     *handlers.ProcessHandler
	Meetings    *handlers.MeetingsHandler
	Search      *handlers.SearchHandler
	Index       *handlers.IndexHandler
	Health      *handlers.HealthHandler
	CORSOrigins []string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.CORSOrigins))

	r.Get("/", handlers.Banner)
	r.Method(http.MethodGet, "/health", deps.Health)

	r.Route("/process", func(r chi.Router) {
		r.Post("/audio", deps.Process.Audio)
		r.Post("/pdf", deps.Process.PDF)
		r.Post("/docx", deps.Process.DOCX)
		r.Post("/markdown", deps.Process.Markdown)
		r.Post("/google-docs", deps.Process.GoogleDocs)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/meetings", deps.Meetings.List)
		r.Get("/meetings/{id}", deps.Meetings.Get)
		r.Delete("/meetings/{id}", deps.Meetings.Delete)
		r.Method(http.MethodGet, "/search", deps.Search)
		r.Post("/index", deps.Index.Reindex)
		r.Get("/index/stats", deps.Index.Stats)
	})

	return r
}
