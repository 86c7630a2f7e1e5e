package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brightvault/rwa-console-backend/api/controllers"
	"github.com/brightvault/rwa-console-backend/api/middleware"
	"github.com/brightvault/rwa-console-backend/internal/auth"
	"github.com/brightvault/rwa-console-backend/internal/documents"
	"github.com/brightvault/rwa-console-backend/internal/invitations"
	"github.com/brightvault/rwa-console-backend/internal/memberships"
	"github.com/brightvault/rwa-console-backend/internal/milestones"
	"github.com/brightvault/rwa-console-backend/internal/projects"
	"github.com/brightvault/rwa-console-backend/internal/tokens"
	"github.com/brightvault/rwa-console-backend/pkg/auth/session"
	"github.com/brightvault/rwa-console-backend/pkg/config"
	"github.com/brightvault/rwa-console-backend/pkg/logger"
	"github.com/brightvault/rwa-console-backend/pkg/metrics"
)

// Deps collects everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Sessions session.AccessSessionChecker

	Pingers map[string]controllers.Pinger

	MetricsRegistry prometheus.Gatherer
	HTTPMetrics     *metrics.HTTPMetrics

	AuthService       auth.Service
	ProjectService    projects.Service
	DocumentService   documents.Service
	TokenService      tokens.Service
	InvitationService invitations.Service
	MembershipService memberships.Service
	MilestoneService  milestones.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Pingers))
	})

	if deps.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, deps.Sessions, logg)).
			Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
	})

	r.Route("/api/v1/projects", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Get("/", controllers.ProjectList(deps.ProjectService, logg))
		r.Post("/step1", controllers.ProjectSaveBasics(deps.ProjectService, logg))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", controllers.ProjectGet(deps.ProjectService, logg))
			r.Delete("/", controllers.ProjectDelete(deps.ProjectService, logg))

			r.Put("/step2", controllers.ProjectSaveBlockchain(deps.ProjectService, logg))
			r.Put("/step3", controllers.ProjectSaveAssetDetails(deps.ProjectService, logg))
			r.Put("/step4", controllers.ProjectSaveTokenSettings(deps.ProjectService, logg))
			r.Put("/step5", controllers.ProjectSaveRevenueModel(deps.ProjectService, logg))
			r.Post("/finalize", controllers.ProjectFinalize(deps.ProjectService, logg))

			r.Get("/milestones", controllers.MilestoneList(deps.MilestoneService, logg))

			r.Get("/tokens", controllers.TokenList(deps.TokenService, logg))
			r.Put("/tokens", controllers.TokenUpsert(deps.TokenService, logg))

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", controllers.DocumentList(deps.DocumentService, logg))
				r.Post("/", controllers.DocumentUpload(deps.DocumentService, logg))
				r.Delete("/{documentID}", controllers.DocumentDelete(deps.DocumentService, logg))
			})

			r.Route("/members", func(r chi.Router) {
				r.Get("/", controllers.MemberList(deps.MembershipService, logg))
				r.Post("/", controllers.MemberAdd(deps.MembershipService, logg))
			})
		})
	})

	r.Route("/api/v1/invitations", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Get("/", controllers.InvitationList(deps.InvitationService, logg))
		r.Post("/", controllers.InvitationCreate(deps.InvitationService, logg))
		r.Post("/{id}/accept", controllers.InvitationAccept(deps.InvitationService, logg))
	})

	return r
}
