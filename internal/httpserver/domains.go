package httpserver

import (
	"context"

	categoryHTTP "impag-tasks/internal/category/delivery/http"
	categoryRepo "impag-tasks/internal/category/repository/postgre"
	categoryUC "impag-tasks/internal/category/usecase"
	commentHTTP "impag-tasks/internal/comment/delivery/http"
	commentRepo "impag-tasks/internal/comment/repository/postgre"
	commentUC "impag-tasks/internal/comment/usecase"
	"impag-tasks/internal/middleware"
	taskHTTP "impag-tasks/internal/task/delivery/http"
	taskRepo "impag-tasks/internal/task/repository/postgre"
	taskUC "impag-tasks/internal/task/usecase"
	userHTTP "impag-tasks/internal/user/delivery/http"
	userRepo "impag-tasks/internal/user/repository/postgre"
	userUC "impag-tasks/internal/user/usecase"
)

// registerDomainRoutes initializes every domain bottom-up (repository,
// usecase, handler) and mounts the routes under /api.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	users := userUC.New(srv.l, userRepo.New(srv.postgresDB, srv.l))
	mw := middleware.New(srv.l, srv.auth, users)

	api := srv.gin.Group("/api")

	comments := commentUC.New(srv.l, commentRepo.New(srv.postgresDB, srv.l))
	tasks := taskUC.New(srv.l, taskRepo.New(srv.postgresDB, srv.l), srv.llm)
	categories := categoryUC.New(srv.l, categoryRepo.New(srv.postgresDB, srv.l))

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tasks, comments), mw)
	commentHTTP.RegisterRoutes(api, commentHTTP.New(srv.l, comments), mw)
	categoryHTTP.RegisterRoutes(api, categoryHTTP.New(srv.l, categories), mw)
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, users), mw)

	srv.l.Infof(ctx, "Domain routes registered")
	return nil
}
