package postgre

import (
	"database/sql"
	"fmt"

	"impag-tasks/internal/category/repository"
	"impag-tasks/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the category domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("category/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("category/repository/postgre.%s", method)
}
