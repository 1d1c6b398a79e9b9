package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"impag-tasks/internal/middleware"
	"impag-tasks/pkg/claude"
	"impag-tasks/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB
	auth       middleware.AuthConfig

	// llm is nil when no API key is configured; imports then skip
	// duplicate detection.
	llm claude.IClaude
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Auth       middleware.AuthConfig
	LLM        claude.IClaude
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		auth:        cfg.Auth,
		llm:         cfg.LLM,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	return nil
}
