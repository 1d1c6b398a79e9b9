package postgre

import (
	"database/sql"
	"fmt"

	"impag-tasks/internal/comment/repository"
	"impag-tasks/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the comment domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("comment/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("comment/repository/postgre.%s", method)
}
