package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/config"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	appHTTP "github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/handler/http"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/database"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/jwt"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/metrics"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/repository/postgresql"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/repository/sqlite"
	employeeService "github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/service/employee"
	leaveService "github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/service/leave"
	"github.com/go-chi/httplog/v3"
)

const version = "v1.0.0"

type stores struct {
	tx        database.Transactor
	employees employee.EmployeeRepository
	balances  leave.LeaveBalanceRepository
	requests  leave.LeaveRequestRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer st.close()

	m := metrics.New()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	empService := employeeService.NewEmployeeService(st.tx, st.employees, st.balances, cfg.Leave.DefaultEntitlement)
	lvService := leaveService.NewLeaveService(st.tx, st.requests, st.balances, st.employees, m)

	router := appHTTP.NewRouter(
		JWTService,
		appHTTP.NewEmployeeHandler(empService),
		appHTTP.NewLeaveHandler(lvService),
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Metrics:        m.Handler(),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}

func newLogger(app config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(app.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lms"),
		slog.String("version", version),
		slog.String("env", app.Env),
	)
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Database.SQLitePath, cfg.Database.LockTimeout)
		if err != nil {
			return nil, err
		}
		return &stores{
			tx:        store,
			employees: sqlite.NewEmployeeRepository(store),
			balances:  sqlite.NewLeaveBalanceRepository(store),
			requests:  sqlite.NewLeaveRequestRepository(store),
			close: func() {
				if err := store.Close(); err != nil {
					slog.Error("Failed to close store", "error", err)
				}
			},
		}, nil

	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgresql.ApplySchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			tx:        postgresql.NewTransactor(db, cfg.Database.LockTimeout),
			employees: postgresql.NewEmployeeRepository(db),
			balances:  postgresql.NewLeaveBalanceRepository(db),
			requests:  postgresql.NewLeaveRequestRepository(db),
			close:     db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported driver %q", cfg.Database.Driver)
}
