package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/onboard/internal/auth"
	"github.com/dgallion1/onboard/internal/config"
	"github.com/dgallion1/onboard/internal/content"
	"github.com/dgallion1/onboard/internal/extractor"
	"github.com/dgallion1/onboard/internal/pipeline"
	"github.com/dgallion1/onboard/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for onboard.
type Server struct {
	router    chi.Router
	stores    store.Stores
	extractor *extractor.Extractor
	parser    *content.Parser
	pool      *pipeline.Pool
	tokens    *auth.Issuer
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(stores store.Stores, ex *extractor.Extractor, pool *pipeline.Pool, tokens *auth.Issuer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		stores:    stores,
		extractor: ex,
		parser:    content.NewParser(log),
		pool:      pool,
		tokens:    tokens,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.tokens, s.log))
		r.Use(AuditLogger(s.log))

		r.Get("/api/local-hire-info/latest", handleLatest(s.stores.LocalHire, "local hire info"))
		r.Get("/api/onboarding-plan/latest", handleLatest(s.stores.Onboarding, "onboarding plan"))
		r.Get("/api/etiquette/latest", handleLatest(s.stores.Etiquette, "etiquette"))
		r.Get("/api/welcome-messages/latest", handleLatest(s.stores.Welcome, "welcome messages"))
		r.Get("/api/contacts/latest", handleLatest(s.stores.Contacts, "contacts"))

		// HR administration.
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(auth.RoleHRAdmin))

			r.Post("/api/local-hire-info/extract", handleExtract(s, s.stores.LocalHire, s.parser.ParseLocalHireInfo))
			r.Post("/api/onboarding-plan/extract", handleExtract(s, s.stores.Onboarding, s.parser.ParseOnboardingPlan))
			r.Post("/api/etiquette/extract", handleExtract(s, s.stores.Etiquette, s.parser.ParseEtiquette))
			r.Post("/api/welcome-messages/extract", s.handleExtractWelcome)
			r.Post("/api/contacts/import", s.handleImportContacts)
			r.Post("/api/documents/extract-text", s.handleExtractText)

			r.Delete("/api/local-hire-info", handleDeleteAll(s.stores.LocalHire))
			r.Delete("/api/onboarding-plan", handleDeleteAll(s.stores.Onboarding))
			r.Delete("/api/etiquette", handleDeleteAll(s.stores.Etiquette))
			r.Delete("/api/welcome-messages", handleDeleteAll(s.stores.Welcome))
			r.Delete("/api/contacts", handleDeleteAll(s.stores.Contacts))

			r.Delete("/api/local-hire-info/latest", handleDeleteLatest(s.stores.LocalHire, "local hire info"))
			r.Delete("/api/onboarding-plan/latest", handleDeleteLatest(s.stores.Onboarding, "onboarding plan"))
			r.Delete("/api/etiquette/latest", handleDeleteLatest(s.stores.Etiquette, "etiquette"))
			r.Delete("/api/welcome-messages/latest", handleDeleteLatest(s.stores.Welcome, "welcome messages"))
			r.Delete("/api/contacts/latest", handleDeleteLatest(s.stores.Contacts, "contacts"))
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
