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

	"github.com/frahmantamala/permit-management/internal"
	"github.com/frahmantamala/permit-management/internal/auth"
	authpg "github.com/frahmantamala/permit-management/internal/auth/postgres"
	"github.com/frahmantamala/permit-management/internal/department"
	departmentpg "github.com/frahmantamala/permit-management/internal/department/postgres"
	"github.com/frahmantamala/permit-management/internal/permit"
	permitpg "github.com/frahmantamala/permit-management/internal/permit/postgres"
	"github.com/frahmantamala/permit-management/internal/personnel"
	personnelpg "github.com/frahmantamala/permit-management/internal/personnel/postgres"
	"github.com/frahmantamala/permit-management/internal/station"
	stationpg "github.com/frahmantamala/permit-management/internal/station/postgres"
	"github.com/frahmantamala/permit-management/internal/transport/rest"
	"github.com/frahmantamala/permit-management/internal/user"
	userpg "github.com/frahmantamala/permit-management/internal/user/postgres"
	"github.com/frahmantamala/permit-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

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
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config

	tokenGen := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.AccessTokenTTL)

	authRepo := authpg.NewRepository(deps.GormDB)
	authService := auth.NewService(authRepo, tokenGen, cfg.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)

	userRepo := userpg.NewUserRepository(deps.GormDB)
	userHandler := user.NewHandler(user.NewService(userRepo))

	departmentRepo := departmentpg.NewDepartmentRepository(deps.GormDB)
	departmentHandler := department.NewHandler(department.NewService(departmentRepo))

	stationRepo := stationpg.NewStationRepository(deps.GormDB)
	stationHandler := station.NewHandler(station.NewService(stationRepo))

	personnelRepo := personnelpg.NewPersonnelRepository(deps.GormDB)
	personnelHandler := personnel.NewHandler(personnel.NewService(personnelRepo))

	permitRepo := permitpg.NewPermitRepository(deps.GormDB)
	permitHandler := permit.NewHandler(permit.NewService(permitRepo))

	rest.RegisterAllRoutes(deps.Router, deps.DB, rest.Handlers{
		Auth:       authHandler,
		User:       userHandler,
		Department: departmentHandler,
		Station:    stationHandler,
		Personnel:  personnelHandler,
		Permit:     permitHandler,
	}, cfg.Server.AllowedOrigins, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.Level)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
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

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the existing pgx connection pool so both layers share it.
// TranslateError is required so unique violations surface as
// gorm.ErrDuplicatedKey for the repositories.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{TranslateError: true})
}
