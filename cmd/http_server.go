package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harisfebriyan12/kehadiran1/internal"
	"github.com/harisfebriyan12/kehadiran1/internal/attendance"
	attendancePostgres "github.com/harisfebriyan12/kehadiran1/internal/attendance/postgres"
	"github.com/harisfebriyan12/kehadiran1/internal/auth"
	authPostgres "github.com/harisfebriyan12/kehadiran1/internal/auth/postgres"
	"github.com/harisfebriyan12/kehadiran1/internal/bank"
	bankPostgres "github.com/harisfebriyan12/kehadiran1/internal/bank/postgres"
	"github.com/harisfebriyan12/kehadiran1/internal/core/events"
	"github.com/harisfebriyan12/kehadiran1/internal/payroll"
	payrollPostgres "github.com/harisfebriyan12/kehadiran1/internal/payroll/postgres"
	"github.com/harisfebriyan12/kehadiran1/internal/profile"
	profilePostgres "github.com/harisfebriyan12/kehadiran1/internal/profile/postgres"
	"github.com/harisfebriyan12/kehadiran1/internal/session"
	"github.com/harisfebriyan12/kehadiran1/internal/transport/rest"
	"github.com/harisfebriyan12/kehadiran1/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle page navigation and API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Redis    *redis.Client
	Router   *chi.Mux
	Sessions *session.Store
	Logger   *slog.Logger

	unwatch func()
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		deps.unwatch()
		deps.Sessions.Close()
		if err := deps.Redis.Close(); err != nil {
			deps.Logger.Error("redis close error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	// Session registry and role resolution
	sessions := session.NewStore(redisClient, config.Security.RefreshTokenDuration, lg)
	profileRepo := profilePostgres.NewRepository(gormDB)
	resolver := profile.NewResolver(profileRepo, lg)
	unwatch := sessions.Watch(resolver.HandleAuthEvent)

	// Auth
	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authRepo := authPostgres.NewRepository(gormDB)
	authService := auth.NewService(authRepo, tokenGen, sessions, config.Security.BCryptCost, lg)
	authHandler := auth.NewHandler(authService, resolver)

	// Domain services
	eventBus := events.NewEventBus(lg)

	profileService := profile.NewService(profileRepo, lg)
	profileHandler := profile.NewHandler(profileService)

	bankRepo := bankPostgres.NewRepository(gormDB)
	bankService := bank.NewService(bankRepo, lg)
	bankHandler := bank.NewHandler(bankService)

	attendanceRepo := attendancePostgres.NewRepository(gormDB)
	attendanceService := attendance.NewService(attendanceRepo, lg)
	attendanceHandler := attendance.NewHandler(attendanceService)

	payrollRepo := payrollPostgres.NewRepository(gormDB)
	payrollService := payroll.NewService(payrollRepo, profileRepo, bankService, eventBus, lg)
	payrollHandler := payroll.NewHandler(payrollService)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, redisClient, rest.Handlers{
		Auth:       authHandler,
		Profile:    profileHandler,
		Attendance: attendanceHandler,
		Payroll:    payrollHandler,
		Bank:       bankHandler,
	}, authService, resolver, lg)

	return &Dependencies{
		Config:   config,
		DB:       db,
		GormDB:   gormDB,
		Redis:    redisClient,
		Router:   router,
		Sessions: sessions,
		Logger:   lg,
		unwatch:  unwatch,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
