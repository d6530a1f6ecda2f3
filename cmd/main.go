package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
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

	"github.com/sbilibin2017/room-booking/internal/handlers"
	"github.com/sbilibin2017/room-booking/internal/jwt"
	"github.com/sbilibin2017/room-booking/internal/logger"
	"github.com/sbilibin2017/room-booking/internal/middlewares"
	"github.com/sbilibin2017/room-booking/internal/repositories"
	"github.com/sbilibin2017/room-booking/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/room-booking/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title room-booking API
// @version 1.0.0
// @description Room reservation service: users, rooms, availability windows, reservations and payments
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// config holds the application, database, Redis, Kafka, gRPC, logging, and JWT settings.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	GRPCPort string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
}

// parseConfig loads environment variables from a file and falls back to defaults
// for every unset key.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// Kafka config, publishing is disabled when no broker is set
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "booking-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	return
}

// application wires repositories, services, and the token issuer together.
type application struct {
	db             *sqlx.DB
	tokens         *jwt.JWT
	users          *services.UserService
	rooms          *services.RoomService
	reservations   *services.ReservationService
	availabilities *services.AvailabilityService
	payments       *services.PaymentService
}

func newApplication(cfg config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) *application {
	tokens := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)
	txManager := repositories.NewTxManager(db)

	// Initialize repositories
	roomCache := repositories.NewRoomCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)

	return &application{
		db:     db,
		tokens: tokens,
		users: services.NewUserService(
			repositories.NewUserReadRepository(db),
			repositories.NewUserWriteRepository(db),
			tokens,
		),
		rooms: services.NewRoomService(
			repositories.NewRoomReadRepository(db),
			repositories.NewRoomWriteRepository(db),
			roomCache,
			txManager,
		),
		reservations: services.NewReservationService(
			repositories.NewReservationReadRepository(db),
			repositories.NewReservationWriteRepository(db),
			txManager,
			kafkaWriter,
		),
		availabilities: services.NewAvailabilityService(
			repositories.NewAvailabilityReadRepository(db),
			repositories.NewAvailabilityWriteRepository(db),
			time.Now,
		),
		payments: services.NewPaymentService(
			repositories.NewPaymentReadRepository(db),
			repositories.NewPaymentWriteRepository(db),
			txManager,
			kafkaWriter,
			time.Now,
		),
	}
}

// crudRoutes mounts list/create and retrieve/update/delete by id.
// Mutating routes run inside a request-wide transaction.
func crudRoutes(r chi.Router, tx func(http.Handler) http.Handler, list, create, get, update, del http.HandlerFunc) {
	r.Get("/", list)
	r.Get("/{id}", get)
	r.Group(func(r chi.Router) {
		r.Use(tx)
		r.Post("/", create)
		r.Put("/{id}", update)
		r.Delete("/{id}", del)
	})
}

// routes builds the HTTP router.
func (app *application) routes(swaggerURL string) http.Handler {
	tx := middlewares.TxMiddleware(app.db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/login", handlers.NewLoginHandler(app.users))
		r.Get("/active-users", handlers.NewActiveUsersHandler(app.users))
		r.Get("/reservations-by-user/{user_id}", handlers.NewReservationsByUserHandler(app.reservations))

		r.Route("/users", func(r chi.Router) {
			crudRoutes(r, tx,
				handlers.NewListUsersHandler(app.users),
				handlers.NewCreateUserHandler(app.users),
				handlers.NewGetUserHandler(app.users),
				handlers.NewUpdateUserHandler(app.users),
				handlers.NewDeleteUserHandler(app.users),
			)
		})
		r.Route("/rooms", func(r chi.Router) {
			crudRoutes(r, tx,
				handlers.NewListRoomsHandler(app.rooms),
				handlers.NewCreateRoomHandler(app.rooms),
				handlers.NewGetRoomHandler(app.rooms),
				handlers.NewUpdateRoomHandler(app.rooms),
				handlers.NewDeleteRoomHandler(app.rooms),
			)
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(app.tokens))

			r.Route("/reservations", func(r chi.Router) {
				crudRoutes(r, tx,
					handlers.NewListReservationsHandler(app.reservations),
					handlers.NewCreateReservationHandler(app.reservations),
					handlers.NewGetReservationHandler(app.reservations),
					handlers.NewUpdateReservationHandler(app.reservations),
					handlers.NewDeleteReservationHandler(app.reservations),
				)
			})
			r.Route("/availabilities", func(r chi.Router) {
				crudRoutes(r, tx,
					handlers.NewListAvailabilitiesHandler(app.availabilities),
					handlers.NewCreateAvailabilityHandler(app.availabilities),
					handlers.NewGetAvailabilityHandler(app.availabilities),
					handlers.NewUpdateAvailabilityHandler(app.availabilities),
					handlers.NewDeleteAvailabilityHandler(app.availabilities),
				)
			})
			r.Route("/payments", func(r chi.Router) {
				crudRoutes(r, tx,
					handlers.NewListPaymentsHandler(app.payments),
					handlers.NewCreatePaymentHandler(app.payments),
					handlers.NewGetPaymentHandler(app.payments),
					handlers.NewUpdatePaymentHandler(app.payments),
					handlers.NewDeletePaymentHandler(app.payments),
				)
			})
		})
	})

	return r
}

// run initializes the logger, database, Redis, Kafka writer, gRPC health server, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		log.Warn("KAFKA_BROKERS not set, events will not be published")
	}

	app := newApplication(cfg, db, rdb, kafkaWriter)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: app.routes(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	}

	// gRPC health server
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("gRPC health server listening on %s:%s", cfg.AppHost, cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		log.Errorw("Server failed, shutting down", "error", serveErr)
	}

	healthServer.Shutdown()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("Servers stopped gracefully")
	return serveErr
}
