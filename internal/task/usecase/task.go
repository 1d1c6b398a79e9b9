package usecase

import (
	"context"
	"errors"
	"strings"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task"
	"impag-tasks/internal/task/repository"
)

// Create creates a single task and assigns it the next free number.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrTitleRequired
	}
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return model.Task{}, task.ErrInvalidPriority
	}

	opt := repository.CreateTaskOptions{
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
		CreatedBy:   sc.UserID,
		AssignedTo:  input.AssignedTo,
	}

	var created model.Task
	err := uc.repo.InAllocationTx(ctx, func(tx repository.AllocationTx) error {
		batch, txErr := uc.createBatch(ctx, tx, []repository.CreateTaskOptions{opt})
		if txErr != nil {
			return txErr
		}
		created = batch[0]
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return model.Task{}, err
	}
	return created, nil
}

// List returns tasks matching the filters, after sweeping overdue
// completed tasks into the archive.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	uc.sweepCompleted(ctx)

	if input.Status != "" && !model.ValidStatus(input.Status) {
		return nil, task.ErrInvalidStatus
	}
	if input.Priority != "" && !model.ValidPriority(input.Priority) {
		return nil, task.ErrInvalidPriority
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status:          input.Status,
		ExcludeArchived: input.Status == "",
		AssignedTo:      input.AssignedTo,
		CreatedBy:       input.CreatedBy,
		Priority:        input.Priority,
		CategoryID:      input.CategoryID,
		Uncategorized:   input.Uncategorized,
		DueBefore:       input.DueBefore,
		DueAfter:        input.DueAfter,
		Search:          input.Search,
		Skip:            input.Skip,
		Limit:           input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return nil, err
	}
	return tasks, nil
}

// ListArchive returns tasks archived within the last 30 days.
func (uc *implUseCase) ListArchive(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	uc.sweepCompleted(ctx)

	since := uc.clock().AddDate(0, 0, -30)
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status:        model.StatusArchived,
		ArchivedSince: &since,
		OrderBy:       "archived_at DESC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ListArchive: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Detail returns a single task by id.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Detail: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

// Update applies a partial update to task info fields.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return model.Task{}, task.ErrTitleRequired
	}
	if input.Priority != nil && !model.ValidPriority(*input.Priority) {
		return model.Task{}, task.ErrInvalidPriority
	}

	t, err := uc.repo.UpdateTaskInfo(ctx, repository.UpdateTaskOptions{
		ID:            input.ID,
		Title:         input.Title,
		Description:   input.Description,
		Priority:      input.Priority,
		DueDate:       input.DueDate,
		ClearDueDate:  input.ClearDueDate,
		CategoryID:    input.CategoryID,
		ClearCategory: input.ClearCategory,
		AssignedTo:    input.AssignedTo,
		ClearAssignee: input.ClearAssignee,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

// UpdateStatus transitions a task's status. Archiving releases the
// number; un-archiving reassigns a fresh one under the allocation lock.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, id int64, status model.Status) (model.Task, error) {
	if !model.ValidStatus(status) {
		return model.Task{}, task.ErrInvalidStatus
	}

	current, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.UpdateStatus: %v", err)
		return model.Task{}, err
	}

	next, needsNumber := task.ApplyStatusChange(current, status, uc.clock())
	if !needsNumber {
		updated, err := uc.repo.UpdateTaskState(ctx, next)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.UpdateStatus: %v", err)
			return model.Task{}, err
		}
		return updated, nil
	}

	// Leaving the archive: the fresh number must be computed and written
	// in the same transaction, or a concurrent allocator could take it.
	var updated model.Task
	err = uc.repo.InAllocationTx(ctx, func(tx repository.AllocationTx) error {
		active, txErr := tx.ActiveNumbers(ctx)
		if txErr != nil {
			return txErr
		}
		taken := make(map[int]bool, len(active))
		for _, n := range active {
			taken[n] = true
		}
		number := newFreeNumbers(taken).next()
		next.Number = &number

		updated, txErr = tx.UpdateTaskState(ctx, next)
		return txErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.UpdateStatus: unarchive: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

// Delete archives a task, which hides it from listings and releases its
// number. Nothing is ever removed from storage.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	_, err := uc.UpdateStatus(ctx, sc, id, model.StatusArchived)
	return err
}
