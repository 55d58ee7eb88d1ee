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

	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/repository/postgresql"
	absenceService "github.com/cmlabs-hris/talenttrack-backend-go/internal/service/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/service/file"
	notificationService "github.com/cmlabs-hris/talenttrack-backend-go/internal/service/notification"
	vacationService "github.com/cmlabs-hris/talenttrack-backend-go/internal/service/vacation"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: httplog.SchemaECS.Concise(!cfg.IsLocal()).ReplaceAttr,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	if cfg.Database.MigrateOnStart {
		if err := database.RunMigrations(ctx, dsn); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		slog.Info("migrations applied")
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	fileService := file.NewFileService(fileStorage)

	transactor := postgresql.NewTransactor(db)
	absenceTypeRepo := postgresql.NewAbsenceTypeRepository(db)
	absenceRequestRepo := postgresql.NewAbsenceRequestRepository(db)
	decisionRepo := postgresql.NewApprovalDecisionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	balanceRepo := postgresql.NewVacationBalanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	notificationHub := sse.NewHub(16)
	notifService := notificationService.NewNotificationService(notificationRepo, notificationHub)
	typeService := absenceService.NewTypeService(absenceTypeRepo)
	requestService := absenceService.NewRequestService(transactor, absenceTypeRepo, absenceRequestRepo, fileService)
	workflowService := absenceService.NewWorkflowService(transactor, absenceRequestRepo, decisionRepo, notifService)
	balanceService := vacationService.NewBalanceService(balanceRepo, employeeRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Absence:      appHTTP.NewAbsenceHandler(typeService, requestService, cfg.Storage.MaxBytes),
		Approval:     appHTTP.NewApprovalHandler(requestService, workflowService),
		AbsenceType:  appHTTP.NewAbsenceTypeHandler(typeService),
		Vacation:     appHTTP.NewVacationHandler(balanceService),
		Notification: appHTTP.NewNotificationHandler(notifService),
		Audit:        appHTTP.NewAuditHandler(requestService, workflowService, balanceService),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		LogBodies:      cfg.IsLocal(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		UploadDir:      fileStorage.BasePath(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	srv.RegisterOnShutdown(notificationHub.Close)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
