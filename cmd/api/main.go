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

	"github.com/ikaze-hr/leave-backend-go/internal/config"
	appHTTP "github.com/ikaze-hr/leave-backend-go/internal/handler/http"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/cron"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/database"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/email"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/jwt"
	"github.com/ikaze-hr/leave-backend-go/internal/repository/postgresql"
	authService "github.com/ikaze-hr/leave-backend-go/internal/service/auth"
	employeeService "github.com/ikaze-hr/leave-backend-go/internal/service/employee"
	holidayService "github.com/ikaze-hr/leave-backend-go/internal/service/holiday"
	"github.com/ikaze-hr/leave-backend-go/internal/service/leave"
	notificationService "github.com/ikaze-hr/leave-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	orgRepo := postgresql.NewOrgRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	historyRepo := postgresql.NewHistoryRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	calendar := postgresql.NewDBCalendar(holidayRepo)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		fmt.Println("Error initializing email service:", err)
		os.Exit(1)
	}

	calc := leave.NewWorkingDaysCalculator(calendar, cfg.App.HolidayRegion)
	balance := leave.NewBalanceTracker(leaveRequestRepo, calc)
	resolver := leave.NewApproverResolver(employeeRepo, orgRepo)
	validator := leave.NewRequestValidator(balance)
	notificationSvc := notificationService.NewService(notificationRepo, employeeRepo, emailService)
	requestSvc := leave.NewRequestService(
		leaveRequestRepo,
		leaveTypeRepo,
		historyRepo,
		employeeRepo,
		resolver,
		calc,
		validator,
		notificationSvc,
	)
	typeSvc := leave.NewTypeService(leaveTypeRepo)
	employeeSvc := employeeService.NewService(employeeRepo, balance)
	authSvc := authService.NewService(employeeRepo, jwtService)
	holidaySvc := holidayService.NewService(holidayRepo, calendar, cfg.App.HolidayRegion)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(requestSvc, typeSvc, employeeSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Org:          appHTTP.NewOrgHandler(orgRepo),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
	})

	scheduler := cron.NewScheduler()
	leaveJobs := cron.NewLeaveJobs(leaveRequestRepo, leaveTypeRepo, employeeRepo, resolver, notificationSvc, cfg.Scheduler)
	if err := leaveJobs.RegisterJobs(scheduler); err != nil {
		fmt.Println("Error registering cron jobs:", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
