package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/desbravaprovas/clubcore/internal/auth"
	"github.com/desbravaprovas/clubcore/internal/cache"
	"github.com/desbravaprovas/clubcore/internal/config"
	"github.com/desbravaprovas/clubcore/internal/email"
	"github.com/desbravaprovas/clubcore/internal/email/mailer"
	"github.com/desbravaprovas/clubcore/internal/handler"
	"github.com/desbravaprovas/clubcore/internal/middleware"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/desbravaprovas/clubcore/internal/telemetry"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     cfg.Level(),
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("flushing traces", "error", err)
		}
	}()

	db, err := repository.Open(ctx, cfg.DSN(), gormlogger.Warn)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		logger.Info("database schema migrated")
	}

	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	regionalRepo := repository.NewRegionalRepository(db)
	examRepo := repository.NewExamRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	store, closeStore, err := setupCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up cache: %w", err)
	}
	defer closeStore()

	authorityService := service.NewAuthorityService(userRepo, clubRepo, membershipRepo, regionalRepo)
	auditLogService := service.NewAuditLogService(auditLogRepo, authorityService, service.SystemClock)

	collab := service.Collaborators{
		Audit:         auditLogService,
		Cache:         service.NewCacheService(store, cfg.Cache.PublicExamsTTL),
		Logger:        logger,
		NotifyTimeout: cfg.Notifications.Timeout,
	}

	if cfg.Email.Provider != "" {
		emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider))
		if err != nil {
			return fmt.Errorf("initializing email service: %w", err)
		}
		collab.Notifier = mailer.NewMembershipNotifier(emailService, cfg.BaseURL)
	} else {
		logger.Warn("email provider not configured, membership notifications disabled")
	}

	if cfg.Permify.Host != "" {
		permify, err := auth.NewPermifyService(cfg.Permify.Host,
			auth.WithTenant(cfg.Permify.Tenant),
			auth.WithSchemaVersion(cfg.Permify.SchemaVersion),
		)
		if err != nil {
			return fmt.Errorf("connecting to permify: %w", err)
		}
		collab.Sync = service.NewRelationshipSync(permify)

		reconciler := service.NewRelationshipReconciler(membershipRepo, regionalRepo, permify, cfg.Permify.SyncInterval, logger)
		reconciler.Start()
		defer reconciler.Stop()
	}

	identityService := service.NewIdentityService(userRepo, passwordHasher, tokenManager, logger)
	clubService := service.NewClubService(authorityService, clubRepo, collab)
	membershipService := service.NewMembershipService(authorityService, userRepo, clubRepo, membershipRepo, collab)
	regionalService := service.NewRegionalService(authorityService, userRepo, clubRepo, regionalRepo, collab)
	examService := service.NewExamService(authorityService, clubRepo, membershipRepo, examRepo, collab)

	authHandler := handler.NewAuthHandler(identityService)
	clubHandler := handler.NewClubHandler(clubService, authorityService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	regionalHandler := handler.NewRegionalHandler(regionalService)
	examHandler := handler.NewExamHandler(examService)
	auditLogHandler := handler.NewAuditLogHandler(auditLogService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.With(chimw.AllowContentType("application/json")).Post("/auth/login", authHandler.LoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Route("/clubs", func(r chi.Router) {
				r.Get("/", clubHandler.ListClubs)
				r.Post("/", clubHandler.CreateClub)
				r.Get("/slug/{slug}", clubHandler.GetClubBySlug)

				r.Route("/{clubID}", func(r chi.Router) {
					r.Get("/", clubHandler.GetClub)
					r.Put("/", clubHandler.UpdateClub)
					r.Delete("/", clubHandler.DeleteClub)
					r.Get("/authority", clubHandler.GetAuthority)
					r.Get("/units", clubHandler.ListUnits)
					r.Post("/units", clubHandler.CreateUnit)
					r.Get("/members", membershipHandler.ListMembers)
					r.Get("/requests", membershipHandler.ListPendingRequests)
					r.Post("/requests", membershipHandler.RequestMembership)
					r.Get("/regionals", regionalHandler.ListRegionalsOfClub)
					r.Get("/exams", examHandler.ListClubExams)
				})
			})

			r.Route("/units/{unitID}", func(r chi.Router) {
				r.Put("/", clubHandler.UpdateUnit)
				r.Delete("/", clubHandler.DeleteUnit)
			})

			r.Route("/memberships", func(r chi.Router) {
				r.Get("/mine", membershipHandler.ListMyMemberships)
				r.Route("/{membershipID}", func(r chi.Router) {
					r.Get("/", membershipHandler.GetMembership)
					r.Put("/", membershipHandler.UpdateMembership)
					r.Delete("/", membershipHandler.RemoveMembership)
					r.Post("/approve", membershipHandler.Approve)
					r.Post("/reject", membershipHandler.Reject)
				})
			})

			r.Route("/regionals/{regionalID}/clubs", func(r chi.Router) {
				r.Get("/", regionalHandler.ListClubsOfRegional)
				r.Post("/{clubID}", regionalHandler.LinkClub)
				r.Delete("/{clubID}", regionalHandler.UnlinkClub)
			})

			r.Route("/exams", func(r chi.Router) {
				r.Get("/public", examHandler.ListPublicExams)
				r.Post("/", examHandler.CreateExam)
				r.Route("/{examID}", func(r chi.Router) {
					r.Get("/", examHandler.GetExam)
					r.Put("/", examHandler.UpdateExam)
					r.Delete("/", examHandler.DeleteExam)
					r.Post("/copy", examHandler.CopyExam)
					r.Post("/questions", examHandler.AddQuestion)
					r.Put("/questions/order", examHandler.ReorderQuestions)
				})
			})

			r.Route("/questions/{questionID}", func(r chi.Router) {
				r.Put("/", examHandler.UpdateQuestion)
				r.Delete("/", examHandler.DeleteQuestion)
			})

			r.Route("/audit-logs", func(r chi.Router) {
				r.Get("/", auditLogHandler.GetAuditLogs)
				r.Get("/{id}", auditLogHandler.GetAuditLogByID)
			})
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutdown started")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// setupCache picks redis when configured and the in-process store otherwise.
func setupCache(ctx context.Context, cfg *config.Config) (cache.Store, func(), error) {
	if cfg.Redis.Addr != "" {
		store, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   "clubcore:",
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}

	store := cache.NewInMemoryCache(cfg.Cache.PublicExamsTTL, time.Minute)
	store.StartCleanup(ctx)
	return store, store.StopCleanup, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
