package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/marvelgate/marvelgate/internal/auth"
	"github.com/marvelgate/marvelgate/internal/authz"
	"github.com/marvelgate/marvelgate/internal/interactions"
	"github.com/marvelgate/marvelgate/internal/marvel"
	"github.com/marvelgate/marvelgate/internal/observability"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger              *slog.Logger
	Config              *Config
	AuthHandler         *auth.Handler
	InteractionsHandler *interactions.Handler
	MarvelHandler       *marvel.Handler
	Gate                func(http.Handler) http.Handler
	AuditRecorder       func(http.Handler) http.Handler
	Metrics             *observability.Metrics
}

// NewRouter constructs the chi.Router. The pipeline order is fixed and
// deliberate: authenticate (gate, in the middleware stack), then authorize,
// then audit, then handle.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Gate:    params.Gate,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		// Tighter limit on credential guessing than the global one.
		r.Use(httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
		params.AuthHandler.MountRoutes(r)
	})

	r.Route("/user-interaction-logs", params.InteractionsHandler.MountRoutes)

	protected := func(mount func(chi.Router)) func(chi.Router) {
		return func(r chi.Router) {
			r.Use(authz.RequireAuthenticated())
			if params.AuditRecorder != nil {
				r.Use(params.AuditRecorder)
			}
			mount(r)
		}
	}
	r.Route("/characters", protected(params.MarvelHandler.MountCharacterRoutes))
	r.Route("/comics", protected(params.MarvelHandler.MountComicRoutes))

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
