package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task/repository"
)

func getByID(id int64) repository.GetOneTaskOptions {
	return repository.GetOneTaskOptions{ID: id}
}

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// memRepo is an in-memory repository with transactional rollback, so
// all-or-nothing import behavior can be asserted without a database.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]model.Task

	failList   bool
	failInsert bool
}

func newMemRepo(seed ...model.Task) *memRepo {
	r := &memRepo{tasks: map[int64]model.Task{}}
	for _, t := range seed {
		if t.ID > r.nextID {
			r.nextID = t.ID
		}
		r.tasks[t.ID] = t
	}
	return r
}

func (r *memRepo) snapshot() map[int64]model.Task {
	out := make(map[int64]model.Task, len(r.tasks))
	for id, t := range r.tasks {
		out[id] = t
	}
	return out
}

func (r *memRepo) all() []model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if opt.ID != 0 {
		if t, ok := r.tasks[opt.ID]; ok {
			return t, nil
		}
		return model.Task{}, repository.ErrNotFound
	}
	for _, t := range r.tasks {
		if t.Number != nil && *t.Number == opt.Number && t.Status != model.StatusArchived {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (r *memRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if r.failList {
		return nil, repository.ErrFailedToList
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Status == "" && opt.ExcludeArchived && t.Status == model.StatusArchived {
			continue
		}
		if opt.ArchivedSince != nil && (t.ArchivedAt == nil || t.ArchivedAt.Before(*opt.ArchivedSince)) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) UpdateTaskInfo(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.ClearDueDate {
		t.DueDate = nil
	} else if opt.DueDate != nil {
		t.DueDate = opt.DueDate
	}
	if opt.ClearCategory {
		t.CategoryID = nil
	} else if opt.CategoryID != nil {
		t.CategoryID = opt.CategoryID
	}
	if opt.ClearAssignee {
		t.AssignedTo = nil
	} else if opt.AssignedTo != nil {
		t.AssignedTo = opt.AssignedTo
	}
	r.tasks[opt.ID] = t
	return t, nil
}

func (r *memRepo) UpdateTaskState(ctx context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memRepo) ArchiveCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	now := time.Now().UTC()
	for id, t := range r.tasks {
		if t.Status == model.StatusDone && t.CompletedAt != nil && t.CompletedAt.Before(cutoff) {
			t.Status = model.StatusArchived
			t.ArchivedAt = &now
			t.Number = nil
			r.tasks[id] = t
			n++
		}
	}
	return n, nil
}

func (r *memRepo) InAllocationTx(ctx context.Context, fn func(tx repository.AllocationTx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	before := r.snapshot()
	if err := fn(&memTx{r: r}); err != nil {
		r.tasks = before
		return err
	}
	return nil
}

type memTx struct {
	r *memRepo
}

func (tx *memTx) ActiveNumbers(ctx context.Context) ([]int, error) {
	var out []int
	for _, t := range tx.r.tasks {
		if t.Number != nil && t.Status != model.StatusArchived {
			out = append(out, *t.Number)
		}
	}
	sort.Ints(out)
	return out, nil
}

func (tx *memTx) TasksHoldingNumbers(ctx context.Context, numbers []int) ([]model.Task, error) {
	want := map[int]bool{}
	for _, n := range numbers {
		want[n] = true
	}
	var out []model.Task
	for _, t := range tx.r.tasks {
		if t.Number != nil && want[*t.Number] && t.Status != model.StatusArchived {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].Number < *out[j].Number })
	return out, nil
}

func (tx *memTx) ReassignNumber(ctx context.Context, taskID int64, number int) error {
	t, ok := tx.r.tasks[taskID]
	if !ok {
		return repository.ErrNotFound
	}
	t.Number = &number
	tx.r.tasks[taskID] = t
	return nil
}

func (tx *memTx) InsertTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if tx.r.failInsert {
		return model.Task{}, errors.New("insert failed")
	}
	tx.r.nextID++
	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := opt.Status
	if status == "" {
		status = model.StatusPending
	}
	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	t := model.Task{
		ID:          tx.r.nextID,
		Number:      opt.Number,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     opt.DueDate,
		CategoryID:  opt.CategoryID,
		CreatedBy:   opt.CreatedBy,
		AssignedTo:  opt.AssignedTo,
		CreatedAt:   createdAt,
	}
	tx.r.tasks[t.ID] = t
	return t, nil
}

func (tx *memTx) UpdateTaskState(ctx context.Context, t model.Task) (model.Task, error) {
	if _, ok := tx.r.tasks[t.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	tx.r.tasks[t.ID] = t
	return t, nil
}
