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

	"github.com/cmlabs-hris/hr-dashboard-go/internal/config"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	appHTTP "github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/email"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/fixture"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/postgresql"
	assetService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/service/catalog"
	dashboardService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/dashboard"
	leaveService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/report"
	trainingService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/training"
	"github.com/shopspring/decimal"
)

// stores is the primary data source plus the repositories built on it.
type stores struct {
	source      catalog.Source
	tx          database.Transactor
	employees   employee.EmployeeRepository
	leaves      leave.LeaveRepository
	payrolls    payroll.PayrollRepository
	trainings   training.TrainingRepository
	assets      asset.AssetRepository
	assignments asset.AssignmentRepository
	maintenance asset.MaintenanceRepository
	close       func()
}

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	))

	// Money fields are serialised as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fixtures, err := fixture.New(cfg.App.FixtureDir)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	st, err := openStores(ctx, cfg, fixtures)
	if err != nil {
		return err
	}
	defer st.close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("initialize local storage: %w", err)
	}

	hub := sse.NewHub()
	dataCatalog := catalog.New(st.source, fixtures)

	leaveSvc := leaveService.NewLeaveService(st.tx, st.leaves, st.employees, hub)
	assetSvc := assetService.NewAssetService(st.tx, st.assets, st.assignments, st.maintenance, st.employees, hub)
	trainingSvc := trainingService.NewTrainingService(st.tx, st.trainings, st.employees, hub)
	dashboardSvc := dashboardService.NewDashboardService(dataCatalog, cfg.App.UpcomingWindowDays)
	reportSvc := reportService.NewReportService(dataCatalog, st.payrolls, fileStorage, cfg.App.UpcomingWindowDays)

	scheduler := cron.NewScheduler(ctx)
	cron.NewAssetJobs(
		dataCatalog,
		st.assets,
		st.tx,
		hub,
		cfg.App.UpcomingWindowDays,
		cfg.Jobs.MaintenanceReminderInterval,
		cfg.Jobs.RevalueInterval,
	).WithNotifier(email.NewEmailService(cfg.SMTP)).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Env:            cfg.App.Env,
		LogLevel:       level,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
	}, appHTTP.Handlers{
		Employee:  appHTTP.NewEmployeeHandler(dashboardSvc),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc, dataCatalog),
		Asset:     appHTTP.NewAssetHandler(assetSvc, dataCatalog),
		Training:  appHTTP.NewTrainingHandler(trainingSvc, dataCatalog),
		Record:    appHTTP.NewRecordHandler(dataCatalog),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
		Report:    appHTTP.NewReportHandler(reportSvc),
		File:      appHTTP.NewFileHandler(fileStorage),
		Event:     appHTTP.NewEventHandler(hub),
	}, dataCatalog)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "jobs", scheduler.Jobs())
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStores connects to PostgreSQL when DB_HOST is set, applying the schema
// and seeding an empty database from fixtures. Otherwise it seeds the
// in-memory store.
func openStores(ctx context.Context, cfg *config.Config, fixtures catalog.Source) (*stores, error) {
	if !cfg.UseDatabase() {
		store := memory.NewStore()
		if err := store.Seed(ctx, fixtures); err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
		slog.Info("using in-memory store")
		return &stores{
			source:      store,
			tx:          store,
			employees:   memory.NewEmployeeRepository(store),
			leaves:      memory.NewLeaveRepository(store),
			payrolls:    memory.NewPayrollRepository(store),
			trainings:   memory.NewTrainingRepository(store),
			assets:      memory.NewAssetRepository(store),
			assignments: memory.NewAssignmentRepository(store),
			maintenance: memory.NewMaintenanceRepository(store),
			close:       func() {},
		}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := postgresql.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	if err := postgresql.Seed(ctx, db, fixtures); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed database: %w", err)
	}
	slog.Info("using postgresql store", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return &stores{
		source:      postgresql.NewSource(db),
		tx:          postgresql.NewTransactor(db),
		employees:   postgresql.NewEmployeeRepository(db),
		leaves:      postgresql.NewLeaveRepository(db),
		payrolls:    postgresql.NewPayrollRepository(db),
		trainings:   postgresql.NewTrainingRepository(db),
		assets:      postgresql.NewAssetRepository(db),
		assignments: postgresql.NewAssignmentRepository(db),
		maintenance: postgresql.NewMaintenanceRepository(db),
		close:       db.Close,
	}, nil
}
