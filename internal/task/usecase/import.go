package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task"
	"impag-tasks/internal/task/repository"
	"impag-tasks/pkg/lineparse"
)

// Import parses the pasted text, classifies candidates against the
// current active tasks, and creates the non-duplicates in one allocation
// transaction. The classifier runs outside the transaction so a slow or
// unreachable model never holds the allocation lock.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, input task.ImportInput) (task.ImportOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.ImportOutput{}, task.ErrEmptyInput
	}

	candidates := lineparse.Parse(input.RawText)
	if len(candidates) == 0 {
		return task.ImportOutput{}, task.ErrNothingParseable
	}

	snapshot, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{ExcludeArchived: true})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Import: snapshot: %v", err)
		return task.ImportOutput{}, err
	}

	annotated, status := uc.classifyDuplicates(ctx, snapshot, candidates)
	if status != classificationOk {
		uc.l.Warnf(ctx, "task.usecase.Import: duplicate detection degraded (status=%d), importing all %d candidates", status, len(candidates))
	}

	var (
		toCreate   []repository.CreateTaskOptions
		duplicates []task.DuplicateReport
	)
	for _, a := range annotated {
		if a.IsDuplicate {
			duplicates = append(duplicates, task.DuplicateReport{
				Title:             a.Title,
				Number:            a.Candidate.Number,
				MatchedExistingID: a.MatchedExistingID,
				Reason:            a.MatchReason,
			})
			continue
		}
		opt := repository.CreateTaskOptions{
			Number:     a.Candidate.Number,
			Title:      a.Title,
			Priority:   model.Priority(a.Priority),
			CreatedBy:  sc.UserID,
			AssignedTo: input.AssignedTo,
		}
		if a.OccurredOn != nil {
			opt.CreatedAt = *a.OccurredOn
		}
		toCreate = append(toCreate, opt)
	}

	var created []model.Task
	if len(toCreate) > 0 {
		err = uc.repo.InAllocationTx(ctx, func(tx repository.AllocationTx) error {
			var txErr error
			created, txErr = uc.createBatch(ctx, tx, toCreate)
			return txErr
		})
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.Import: create batch: %v", err)
			return task.ImportOutput{}, err
		}
	}

	out := task.ImportOutput{
		BatchID:         uuid.NewString(),
		Created:         created,
		Duplicates:      duplicates,
		TotalParsed:     len(candidates),
		TotalCreated:    len(created),
		TotalDuplicates: len(duplicates),
	}
	uc.l.Infof(ctx, "task.usecase.Import: batch %s parsed=%d created=%d duplicates=%d", out.BatchID, out.TotalParsed, out.TotalCreated, out.TotalDuplicates)
	return out, nil
}
