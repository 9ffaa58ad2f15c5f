package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/edupulse/edupulse/internal/api/http"
	auth "github.com/edupulse/edupulse/internal/auth/middleware"
	"github.com/edupulse/edupulse/internal/cache"
	"github.com/edupulse/edupulse/internal/config"
	"github.com/edupulse/edupulse/internal/db"
	"github.com/edupulse/edupulse/internal/insight"
	"github.com/edupulse/edupulse/internal/rbac"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := insight.NewSQLStore(dbh, cfg.DBDriver)

	// --- Cache (optional) ---
	var evalCache *cache.EvaluationCache
	if cfg.RedisAddr != "" {
		evalCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		defer evalCache.Close()
	}

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, auth.LoginConfig{
			AdvisorUser:     cfg.AdvisorUser,
			AdvisorPassHash: cfg.AdvisorPassHash,
		}))
	}

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Stateless evaluation: any authenticated role with the permission.
		pr.With(rbac.Require("insight:evaluate")).
			Post("/evaluate", api.EvaluateHandler(cfg.ResultDelay))

		// Per-student records: owner or a role allowed to reach any student.
		pr.Route("/students/{studentID}", func(sr chi.Router) {
			sr.Use(rbac.RequireOwnerOr("records:any-student", ownsStudent))

			sr.With(rbac.Require("snapshot:write")).
				Put("/snapshot", api.PutSnapshotHandler(store, evalCache))
			sr.With(rbac.Require("snapshot:read")).
				Get("/snapshot", api.GetSnapshotHandler(store))
			sr.With(rbac.Require("insight:evaluate")).
				Post("/evaluations", api.EvaluateStudentHandler(store, evalCache, cfg.ResultDelay))
			sr.With(rbac.Require("insight:history")).
				Get("/evaluations", api.ListEvaluationsHandler(store))
			sr.With(rbac.Require("insight:read")).
				Get("/evaluations/latest", api.LatestEvaluationHandler(store, evalCache))
		})
	})

	log.Printf("edupulse gateway listening on %s (mode=%s driver=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

// ownsStudent reports whether the token subject matches the studentID
// in the route.
func ownsStudent(r *http.Request) bool {
	sub := rbac.SubjectFromContext(r.Context())
	return sub != "" && sub == chi.URLParam(r, "studentID")
}
