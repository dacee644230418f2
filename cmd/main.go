package main

import (
	"context"
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

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/facades"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/handlers"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/jwt"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/middlewares"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/repositories"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-stablecoin-ramp API
// @version 1.0.0
// @description Gateway orchestrating fiat/stablecoin conversions: quote, transfer, settlement tracking and exchange rate caching
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		providerURL, providerKey,
		gwHost, gwPort, logLevel,
		jwtSecret, jwtExp,
		operatorUsername, operatorPasswordHash,
		pollIntervalSecond, ratesRefreshSecond, countries,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		providerURL, providerKey,
		gwHost, gwPort,
		logLevel,
		jwtSecret, jwtExp,
		operatorUsername, operatorPasswordHash,
		pollIntervalSecond, ratesRefreshSecond, countries,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, provider, gRPC, logging, JWT,
// operator and orchestration configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	providerURL, providerKey string,
	gwHost, gwPort, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	operatorUsername, operatorPasswordHash string,
	pollIntervalSecond, ratesRefreshSecond int,
	countries []string,
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
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "order-events")

	// Provider config
	providerURL = getEnv("PROVIDER_API_URL", "http://localhost:4000")
	providerKey = getEnv("PROVIDER_API_KEY", "")

	// gRPC config
	gwHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	gwPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Operator config
	operatorUsername = getEnv("OPERATOR_USERNAME", "ops")
	operatorPasswordHash = getEnv("OPERATOR_PASSWORD_HASH", "")

	// Orchestration config
	if pollIntervalSecond, err = strconv.Atoi(getEnv("POLL_INTERVAL_SECOND", "5")); err != nil {
		return
	}
	if ratesRefreshSecond, err = strconv.Atoi(getEnv("RATES_REFRESH_SECOND", "90")); err != nil {
		return
	}
	countries = strings.Split(getEnv("RAMP_COUNTRIES", "KE,GH,NG"), ",")

	return
}

// run initializes the logger, database, Redis, Kafka, gRPC client and HTTP
// server. It sets up routes, applies middleware, starts the scheduled rate
// refresh, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	providerURL, providerKey string,
	gwHost, gwPort, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	operatorUsername, operatorPasswordHash string,
	pollIntervalSecond, ratesRefreshSecond int,
	countries []string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for order lifecycle events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBroker),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Connect to gRPC rates service
	grpcAddr := fmt.Sprintf("%s:%s", gwHost, gwPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Log.Fatal("Failed to connect to gRPC service at", grpcAddr, ":", err)
	}
	defer conn.Close()
	exchangeClient := pb.NewExchangeServiceClient(conn)

	// Initialize JWT service
	jwtService := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize facades
	providerFacade := facades.NewProviderHTTPFacade(providerURL, providerKey)
	ratesFacade := facades.NewExchangeRatesGRPCFacade(exchangeClient)

	// Initialize repositories
	sessionRepo := repositories.NewProcessingSessionRepository(rdb)
	rateCacheRepo := repositories.NewRateCacheRepository(rdb)
	transferWriteRepo := repositories.NewTransferWriterRepository(db, middlewares.GetTxFromContext)
	transferReadRepo := repositories.NewTransferReaderRepository(db)

	// Initialize services
	paymentService := services.NewPaymentService(providerFacade, transferWriteRepo, kafkaWriter)
	statusPoller := services.NewStatusPoller(providerFacade, time.Duration(pollIntervalSecond)*time.Second)
	orderService := services.NewOrderService(statusPoller, sessionRepo, transferWriteRepo, kafkaWriter)
	rateService := services.NewRateService(ratesFacade, rateCacheRepo, countries, time.Duration(ratesRefreshSecond)*time.Second)
	tokenService := services.NewTokenService(operatorUsername, operatorPasswordHash, jwtService)

	// Initialize handlers
	tokenHandler := handlers.NewTokenHandler(tokenService)
	createOrderHandler := handlers.NewCreateOrderHandler(paymentService, orderService)
	orderStatusHandler := handlers.NewOrderStatusHandler(orderService, transferReadRepo)
	cancelOrderHandler := handlers.NewCancelOrderHandler(orderService, paymentService)
	completeWalletHandler := handlers.NewCompleteWalletHandler(paymentService)
	getRatesHandler := handlers.NewGetRatesHandler(rateService)
	revalidateRatesHandler := handlers.NewRevalidateRatesHandler(rateService, jwtService)

	// Scheduled rate revalidation
	ratesCtx, stopRates := context.WithCancel(ctx)
	defer stopRates()
	go rateService.Run(ratesCtx)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/v1/token", tokenHandler)
	r.Get("/api/v1/exchange/rates", getRatesHandler)
	// The revalidation handler performs its own bearer check before touching the cache
	r.Post("/api/v1/exchange/rates/revalidate", revalidateRatesHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwtService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.With(middlewares.TxMiddleware(db)).Post("/api/v1/order", createOrderHandler)
		r.Get("/api/v1/order/{transferID}", orderStatusHandler)
		r.Post("/api/v1/order/{transferID}/cancel", cancelOrderHandler)
		r.Post("/api/v1/order/wallet-complete", completeWalletHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
