package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/techbridge-it/perfnote-backend-go/internal/config"
	appHTTP "github.com/techbridge-it/perfnote-backend-go/internal/handler/http"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/database"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/email"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/jwt"
	"github.com/techbridge-it/perfnote-backend-go/internal/repository/postgresql"
	accountService "github.com/techbridge-it/perfnote-backend-go/internal/service/account"
	activityService "github.com/techbridge-it/perfnote-backend-go/internal/service/activity"
	authService "github.com/techbridge-it/perfnote-backend-go/internal/service/auth"
	dashboardService "github.com/techbridge-it/perfnote-backend-go/internal/service/dashboard"
	employeeService "github.com/techbridge-it/perfnote-backend-go/internal/service/employee"
	noteService "github.com/techbridge-it/perfnote-backend-go/internal/service/note"
	tagService "github.com/techbridge-it/perfnote-backend-go/internal/service/tag"
	teamService "github.com/techbridge-it/perfnote-backend-go/internal/service/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	accountRepo := postgresql.NewAccountRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	noteRepo := postgresql.NewNoteRepository(db)
	tagRepo := postgresql.NewTagRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	activitySvc := activityService.NewActivityService(activityRepo, teamRepo, logger)
	authSvc := authService.NewAuthService(accountRepo, activitySvc, jwtSvc, emailSvc, cfg.App.FrontendURL)
	accountSvc := accountService.NewAccountService(accountRepo, activitySvc)
	teamSvc := teamService.NewTeamService(teamRepo, accountRepo, employeeRepo, txManager, activitySvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, activitySvc)
	noteSvc := noteService.NewNoteService(noteRepo, employeeRepo, teamRepo, activitySvc)
	tagSvc := tagService.NewTagService(tagRepo, employeeRepo, teamRepo, activitySvc)
	dashboardSvc := dashboardService.NewDashboardService(accountRepo, noteRepo, employeeRepo)

	router := appHTTP.NewRouter(cfg, jwtSvc, accountRepo, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Account:   appHTTP.NewAccountHandler(accountSvc),
		Team:      appHTTP.NewTeamHandler(teamSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Note:      appHTTP.NewNoteHandler(noteSvc),
		Tag:       appHTTP.NewTagHandler(tagSvc),
		Activity:  appHTTP.NewActivityHandler(activitySvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("server starting", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
