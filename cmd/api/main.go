package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"impag-tasks/config"
	_ "impag-tasks/docs" // Swagger docs
	"impag-tasks/internal/httpserver"
	"impag-tasks/internal/middleware"
	"impag-tasks/pkg/claude"
	"impag-tasks/pkg/log"
)

// @title       Impag Tasks API
// @description Shared task tracker with AI-assisted bulk import, task numbering, and Google sign-in.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Impag Tasks...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		logger.Fatal(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Fatal(ctx, "Database unreachable: ", err)
		return
	}

	// 4. Claude client (optional, imports degrade without it)
	var llm claude.IClaude
	if cfg.Claude.APIKey != "" {
		llm, err = claude.New(claude.Config{
			APIKey:            cfg.Claude.APIKey,
			Model:             cfg.Claude.Model,
			RequestsPerMinute: cfg.Claude.RequestsPerMinute,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to initialize Claude client: ", err)
			return
		}
		logger.Infof(ctx, "AI duplicate detection enabled (model: %s)", llm.Model())
	} else {
		logger.Warn(ctx, "ANTHROPIC_API_KEY not set, imports will skip duplicate detection")
	}

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Auth: middleware.AuthConfig{
			GoogleClientID: cfg.Auth.GoogleClientID,
			AllowedEmails:  cfg.Auth.AllowedEmails,
		},
		LLM: llm,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
