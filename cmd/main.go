package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/henkobit/inventario/internal/handlers"
	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/middlewares"
	"github.com/henkobit/inventario/internal/repositories"
	"github.com/henkobit/inventario/internal/services"
	"github.com/henkobit/inventario/internal/session"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title inventario API
// @version 1.0.0
// @description Inventory scanning service: barcode readings against an article master
// @host localhost:5000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appPort, logLevel,
		databaseURL, secretKey,
		poolMinSize, poolMaxSize,
		importStrategy, importBatchSize,
		sessionExpSecond,
		redisAddr, redisDB, redisPassword, cacheTTLSecond,
		kafkaBroker, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appPort, logLevel,
		databaseURL, secretKey,
		poolMinSize, poolMaxSize,
		importStrategy, importBatchSize,
		sessionExpSecond,
		redisAddr, redisDB, redisPassword, cacheTTLSecond,
		kafkaBroker, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, session, import, Redis and Kafka configuration.
func parseConfig(path string) (
	appPort, logLevel string,
	databaseURL, secretKey string,
	poolMinSize, poolMaxSize int,
	importStrategy string, importBatchSize int,
	sessionExpSecond int,
	redisAddr string, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appPort = getEnv("PORT", "5000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	databaseURL = os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		err = errors.New("DATABASE_URL no configurada")
		return
	}
	if poolMinSize, err = strconv.Atoi(getEnv("PGPOOL_MIN_SIZE", "1")); err != nil {
		return
	}
	if poolMaxSize, err = strconv.Atoi(getEnv("PGPOOL_MAX_SIZE", "3")); err != nil {
		return
	}

	// Session config
	secretKey = os.Getenv("SECRET_KEY")
	if secretKey == "" {
		err = errors.New("SECRET_KEY no configurada")
		return
	}
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "43200")); err != nil {
		return
	}

	// Import config
	importStrategy = getEnv("IMPORT_STRATEGY", services.StrategyReplace)
	if importStrategy != services.StrategyReplace && importStrategy != services.StrategyMerge {
		err = fmt.Errorf("IMPORT_STRATEGY must be %q or %q", services.StrategyReplace, services.StrategyMerge)
		return
	}
	if importBatchSize, err = strconv.Atoi(getEnv("IMPORT_BATCH_SIZE", "2000")); err != nil {
		return
	}

	// Redis config (optional article cache)
	redisAddr = getEnv("REDIS_ADDR", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300")); err != nil {
		return
	}

	// Kafka config (optional scan event stream)
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "lecturas")

	return
}

// normalizeDSN forces encrypted transport when the connection string does not
// choose an sslmode itself.
func normalizeDSN(dsn string) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&sslmode=require"
	}
	return dsn + "?sslmode=require"
}

// run initializes the logger, database, optional Redis and Kafka, and the
// HTTP server. It wires routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appPort, logLevel string,
	databaseURL, secretKey string,
	poolMinSize, poolMaxSize int,
	importStrategy string, importBatchSize int,
	sessionExpSecond int,
	redisAddr string, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := normalizeDSN(databaseURL)
	logger.Log.Infof("Connecting to PostgreSQL")

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(poolMaxSize)
	db.SetMaxIdleConns(poolMinSize)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Bootstrap schema once, before serving traffic
	schemaRepo := repositories.NewSchemaRepository(db)
	if err := schemaRepo.Bootstrap(ctx); err != nil {
		logger.Log.Errorw("schema bootstrap failed", "error", err)
		return err
	}

	// Optional Redis article cache
	var scanCache services.ArticleCache
	var cacheInvalidator services.CacheInvalidator
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()

		cacheRepo := repositories.NewArticleCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
		scanCache = cacheRepo
		cacheInvalidator = cacheRepo
		logger.Log.Infof("Article cache enabled via Redis at %s", redisAddr)
	}

	// Optional Kafka scan event stream
	var scanEvents services.KafkaWriter
	if kafkaBroker != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		scanEvents = kw
		logger.Log.Infof("Scan events published to Kafka topic %s at %s", kafkaTopic, kafkaBroker)
	}

	// Initialize session manager
	sessions := session.New(secretKey, time.Duration(sessionExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	articleReadRepo := repositories.NewArticleReadRepository(db)
	articleWriteRepo := repositories.NewArticleWriteRepository(db, middlewares.GetTxFromContext)
	readingReadRepo := repositories.NewReadingReadRepository(db)
	readingWriteRepo := repositories.NewReadingWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo)
	scanService := services.NewScanService(articleReadRepo, scanCache, readingWriteRepo, scanEvents)
	importService := services.NewImportService(articleWriteRepo, cacheInvalidator, importStrategy, importBatchSize)
	readingService := services.NewReadingService(readingReadRepo, readingWriteRepo)
	articleService := services.NewArticleService(articleReadRepo, articleWriteRepo, cacheInvalidator)
	userService := services.NewUserDirectoryService(userReadRepo, userWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/api/login", handlers.NewLoginHandler(authService, sessions))

	// Session-protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(sessions))

		r.Post("/api/logout", handlers.NewLogoutHandler(sessions))
		r.Get("/api/lecturas", handlers.NewLecturasHandler(readingService))
		r.Get("/api/exportar", handlers.NewExportarHandler(readingService))
		r.Get("/api/articulos/count", handlers.NewContarArticulosHandler(articleService))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/api/escanear", handlers.NewEscanearHandler(scanService))
			r.Delete("/api/lecturas/limpiar", handlers.NewLimpiarLecturasHandler(readingService))
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AdminMiddleware)

			// The importer manages its own transaction around TRUNCATE+COPY,
			// so it stays outside the request tx middleware.
			r.Post("/api/articulos/importar", handlers.NewImportarHandler(importService))
			r.Get("/api/admin/usuarios", handlers.NewListarUsuariosHandler(userService))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Delete("/api/articulos/limpiar", handlers.NewLimpiarArticulosHandler(articleService))
				r.Post("/api/admin/usuarios", handlers.NewCrearUsuarioHandler(userService))
				r.Delete("/api/admin/usuarios/{id}", handlers.NewEliminarUsuarioHandler(userService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%s/swagger/doc.json", appPort)),
	))

	srv := &http.Server{
		Addr:    ":" + appPort,
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on :%s", appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
