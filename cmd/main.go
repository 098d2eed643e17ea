// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"kanji_keep/internal/config"
	"kanji_keep/internal/extractor"
	"kanji_keep/internal/fetcher"
	"kanji_keep/internal/handlers"
	"kanji_keep/internal/middleware"
	"kanji_keep/internal/model"
	"kanji_keep/internal/repository"
	"kanji_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// Configを読み込み
	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発環境ではtint、本番はJSONのハンドラを使う
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
	)

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーマを最新化
	if err := db.AutoMigrate(
		&model.Tenant{},
		&model.Article{},
		&model.KanjiCount{},
		&model.KnownKanji{},
	); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	tenantRepo := repository.NewGormTenantRepository()
	articleRepo := repository.NewGormArticleRepository()
	knownRepo := repository.NewGormKnownKanjiRepository()

	contentFetcher := fetcher.NewHTTPFetcher(
		time.Duration(config.Cfg.App.FetchTimeoutSeconds)*time.Second,
		config.Cfg.App.UserAgent,
		config.Cfg.App.FetchMaxRetries,
	)
	htmlExtractor := extractor.NewGoqueryExtractor()

	tenantService := service.NewTenantService(db, tenantRepo)
	articleService := service.NewArticleService(db, articleRepo, contentFetcher, htmlExtractor)
	knownKanjiService := service.NewKnownKanjiService(db, knownRepo)
	rankingService := service.NewRankingService(db, articleRepo, knownRepo)

	// Authenticator を作成
	tenantAuthenticator := middleware.NewServiceTenantAuthenticator(tenantService)

	tenantHandler := handlers.NewTenantHandler(tenantService, logger)
	articleHandler := handlers.NewArticleHandler(articleService, logger)
	kanjiHandler := handlers.NewKanjiHandler(knownKanjiService, logger)
	rankingHandler := handlers.NewRankingHandler(rankingService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/tenants", tenantHandler.CreateTenant) // テナント作成 (認証不要)

		// --- Protected routes (require Tenant ID) ---
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying production authentication middleware")
				r.Use(middleware.TenantAuthMiddleware(tenantAuthenticator))
			} else {
				slog.Warn("Auth disabled: applying dev tenant context middleware")
				r.Use(middleware.DevTenantContextMiddleware)
			}

			// Article routes
			r.Route("/articles", func(r chi.Router) {
				r.Post("/", articleHandler.PostArticle)
				r.Get("/", articleHandler.GetArticles)
				r.Get("/ranked", rankingHandler.GetRankedArticles)
				r.Get("/{article_id}", articleHandler.GetArticle)
			})

			// Known kanji routes
			r.Route("/kanji", func(r chi.Router) {
				r.Post("/known", kanjiHandler.PostKnownKanji)
				r.Get("/known", kanjiHandler.GetKnownKanji)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// DB接続チェック
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second, // ページ取得を挟むので長め
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1) // Listen失敗は致命的
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
