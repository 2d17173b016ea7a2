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

	"github.com/YossiBuhnik/WorkLog1/internal/config"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/report"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	appHTTP "github.com/YossiBuhnik/WorkLog1/internal/handler/http"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/cron"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/email"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/jwt"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/oauth"
	"github.com/YossiBuhnik/WorkLog1/internal/repository/postgresql"
	serviceAuth "github.com/YossiBuhnik/WorkLog1/internal/service/auth"
	dashboardService "github.com/YossiBuhnik/WorkLog1/internal/service/dashboard"
	notificationService "github.com/YossiBuhnik/WorkLog1/internal/service/notification"
	reportService "github.com/YossiBuhnik/WorkLog1/internal/service/report"
	requestService "github.com/YossiBuhnik/WorkLog1/internal/service/request"
	userService "github.com/YossiBuhnik/WorkLog1/internal/service/user"
	workdayService "github.com/YossiBuhnik/WorkLog1/internal/service/workday"
	"github.com/go-chi/httplog/v3"
)

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

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklog"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if _, err := db.Migrate(ctx, cfg.App.MigrationsDir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	requestRepo := postgresql.NewRequestRepository(db, loc)
	holidayRepo := postgresql.NewHolidayRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	reportRepo := postgresql.NewReportRepository(db, loc)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.App.Env == "production")
	if err != nil {
		return fmt.Errorf("jwt: %w", err)
	}
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var mailer email.EmailService
	if cfg.SMTP.Host != "" {
		mailer, err = email.NewEmailService(cfg.SMTP)
		if err != nil {
			return fmt.Errorf("email: %w", err)
		}
	} else {
		slog.Warn("SMTP_HOST not set, e-mail notifications are disabled")
	}

	baseCalendar, err := workdayService.LoadBaseCalendar(cfg.Calendar)
	if err != nil {
		return fmt.Errorf("holiday calendar: %w", err)
	}
	var storedHolidays workday.HolidayRepository
	if cfg.Calendar.IncludeDBSet {
		storedHolidays = holidayRepo
	}

	basePolicy := report.Policy{
		VacationFilter:  report.VacationFilter(cfg.Report.VacationFilter),
		MonthMembership: report.MonthMembership(cfg.Report.MonthMembership),
		ClipToWindow:    cfg.Report.ClipToWindow,
	}

	notificationSvc := notificationService.NewNotificationService(notificationRepo, mailer, notificationService.Config{})
	defer notificationSvc.Stop()

	workdaySvc := workdayService.NewWorkdayService(storedHolidays, baseCalendar, cfg.Calendar.IncludeEves, loc)
	userSvc := userService.NewUserService(userRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, userSvc, JWTService, refreshTokenRepo)
	requestSvc := requestService.NewRequestService(requestRepo, userRepo, workdaySvc, notificationSvc)
	reportSvc := reportService.NewReportService(reportRepo, workdaySvc, basePolicy)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, loc)

	scheduler := cron.NewScheduler()
	cron.NewRequestJobs(requestRepo, notificationSvc, cfg.Jobs.PendingReminderInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL, cfg.App.Env == "production"),
		User:         appHTTP.NewUserHandler(userSvc),
		Request:      appHTTP.NewRequestHandler(requestSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Workday:      appHTTP.NewWorkdayHandler(workdaySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       level,
		AllowedOrigins: cfg.App.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
