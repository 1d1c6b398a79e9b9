package usecase

import (
	"time"

	"impag-tasks/internal/task/repository"
	"impag-tasks/pkg/claude"
	pkgLog "impag-tasks/pkg/log"
)

// archiveAfter is how long a completed task stays visible before the
// sweep moves it to the archive and releases its number.
const archiveAfter = 3 * 24 * time.Hour

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	// llm is nil when no API credential is configured; imports then
	// treat every candidate as non-duplicate.
	llm   claude.IClaude
	clock func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, llm claude.IClaude) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		llm:   llm,
		clock: func() time.Time { return time.Now().UTC() },
	}
}
