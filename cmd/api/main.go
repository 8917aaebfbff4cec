package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/foundx/foundx/internal/auth"
	"github.com/foundx/foundx/internal/config"
	"github.com/foundx/foundx/internal/database"
	"github.com/foundx/foundx/internal/fund"
	fundStore "github.com/foundx/foundx/internal/fund/store"
	foundxHttp "github.com/foundx/foundx/internal/http"
	fundHandler "github.com/foundx/foundx/internal/http/fund"
	"github.com/foundx/foundx/internal/http/middleware"
	projectHandler "github.com/foundx/foundx/internal/http/project"
	startupHandler "github.com/foundx/foundx/internal/http/startup"
	taskHandler "github.com/foundx/foundx/internal/http/task"
	userHandler "github.com/foundx/foundx/internal/http/user"
	"github.com/foundx/foundx/internal/importer"
	"github.com/foundx/foundx/internal/project"
	projectStore "github.com/foundx/foundx/internal/project/store"
	"github.com/foundx/foundx/internal/receipt"
	"github.com/foundx/foundx/internal/startup"
	startupStore "github.com/foundx/foundx/internal/startup/store"
	"github.com/foundx/foundx/internal/task"
	taskStore "github.com/foundx/foundx/internal/task/store"
	"github.com/foundx/foundx/internal/user"
	userStore "github.com/foundx/foundx/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	var (
		userService    = user.NewService(userStore.New(db), tokens)
		startupService = startup.NewService(startupStore.New(db))
		projectService = project.NewService(projectStore.New(db))
		taskService    = task.NewService(taskStore.New(db))
		fundService    = fund.NewService(fundStore.New(db))
		billClient     = receipt.NewClient(cfg.BillParser.URL, cfg.BillParser.Timeout)
		importService  = importer.NewService()
	)

	var (
		userH    = userHandler.NewHandler(userService)
		startupH = startupHandler.NewHandler(startupService)
		projectH = projectHandler.NewHandler(projectService)
		taskH    = taskHandler.NewHandler(taskService)
		fundH    = fundHandler.NewHandler(fundService, billClient, importService)
	)

	authenticate := middleware.Authenticate(tokens, userService)
	router := foundxHttp.New(cfg.CORS.Origin, authenticate, userH, startupH, projectH, taskH, fundH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
