package usecase

import "context"

// sweepCompleted archives done tasks whose completion is older than the
// retention window. Runs lazily before listing reads, so the sweep
// needs no scheduler. Failures are logged and swallowed: a stale
// archive never blocks a read.
func (uc *implUseCase) sweepCompleted(ctx context.Context) {
	cutoff := uc.clock().Add(-archiveAfter)
	n, err := uc.repo.ArchiveCompletedBefore(ctx, cutoff)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.sweepCompleted: %v", err)
		return
	}
	if n > 0 {
		uc.l.Infof(ctx, "task.usecase.sweepCompleted: archived %d completed tasks", n)
	}
}
