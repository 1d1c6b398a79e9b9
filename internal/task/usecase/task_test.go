package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task"
	"impag-tasks/internal/task/usecase"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	t.Run("assigns the smallest free number", func(t *testing.T) {
		repo := newMemRepo(
			seedTask(10, 1, "Primera"),
			seedTask(11, 3, "Tercera"),
		)
		uc := usecase.New(&mockLogger{}, repo, nil)

		created, err := uc.Create(ctx, sc, task.CreateInput{Title: "Nueva tarea"})
		if err != nil {
			t.Fatal(err)
		}
		if created.Number == nil || *created.Number != 2 {
			t.Errorf("number = %v, want 2", created.Number)
		}
		if created.Priority != model.PriorityMedium {
			t.Errorf("priority = %q, want medium", created.Priority)
		}
		if created.CreatedBy != 1 {
			t.Errorf("created_by = %d, want 1", created.CreatedBy)
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMemRepo(), nil)
		if _, err := uc.Create(ctx, sc, task.CreateInput{Title: "   "}); !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("err = %v, want ErrTitleRequired", err)
		}
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMemRepo(), nil)
		if _, err := uc.Create(ctx, sc, task.CreateInput{Title: "Tarea", Priority: "critical"}); !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("err = %v, want ErrInvalidPriority", err)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	t.Run("done stamps completed_at", func(t *testing.T) {
		repo := newMemRepo(seedTask(10, 1, "Tarea"))
		uc := usecase.New(&mockLogger{}, repo, nil)

		updated, err := uc.UpdateStatus(ctx, sc, 10, model.StatusDone)
		if err != nil {
			t.Fatal(err)
		}
		if updated.CompletedAt == nil {
			t.Error("CompletedAt not set")
		}
	})

	t.Run("archive releases the number", func(t *testing.T) {
		repo := newMemRepo(seedTask(10, 1, "Tarea"))
		uc := usecase.New(&mockLogger{}, repo, nil)

		updated, err := uc.UpdateStatus(ctx, sc, 10, model.StatusArchived)
		if err != nil {
			t.Fatal(err)
		}
		if updated.Number != nil {
			t.Errorf("number = %v, want nil", updated.Number)
		}
		if updated.ArchivedAt == nil {
			t.Error("ArchivedAt not set")
		}
	})

	t.Run("unarchive assigns the smallest free number", func(t *testing.T) {
		archived := seedTask(10, 0, "Archivada")
		archived.Number = nil
		archived.Status = model.StatusArchived
		repo := newMemRepo(
			archived,
			seedTask(11, 1, "Activa"),
			seedTask(12, 3, "Otra"),
		)
		uc := usecase.New(&mockLogger{}, repo, nil)

		updated, err := uc.UpdateStatus(ctx, sc, 10, model.StatusPending)
		if err != nil {
			t.Fatal(err)
		}
		if updated.Number == nil || *updated.Number != 2 {
			t.Errorf("number = %v, want 2", updated.Number)
		}
		if updated.ArchivedAt != nil {
			t.Error("ArchivedAt still set")
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMemRepo(), nil)
		if _, err := uc.UpdateStatus(ctx, sc, 10, "paused"); !errors.Is(err, task.ErrInvalidStatus) {
			t.Errorf("err = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("missing task maps to not found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMemRepo(), nil)
		if _, err := uc.UpdateStatus(ctx, sc, 99, model.StatusDone); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("err = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	t.Run("sweeps stale completed tasks into the archive", func(t *testing.T) {
		old := time.Now().UTC().Add(-4 * 24 * time.Hour)
		recent := time.Now().UTC().Add(-time.Hour)

		stale := seedTask(10, 1, "Terminada hace dias")
		stale.Status = model.StatusDone
		stale.CompletedAt = &old
		fresh := seedTask(11, 2, "Terminada hoy")
		fresh.Status = model.StatusDone
		fresh.CompletedAt = &recent

		repo := newMemRepo(stale, fresh)
		uc := usecase.New(&mockLogger{}, repo, nil)

		tasks, err := uc.List(ctx, sc, task.ListInput{})
		if err != nil {
			t.Fatal(err)
		}
		if len(tasks) != 1 || tasks[0].ID != 11 {
			t.Fatalf("listed %d tasks, want only task 11", len(tasks))
		}

		swept, err := repo.GetOneTask(ctx, getByID(10))
		if err != nil {
			t.Fatal(err)
		}
		if swept.Status != model.StatusArchived || swept.Number != nil {
			t.Errorf("swept task = status %q number %v", swept.Status, swept.Number)
		}
	})

	t.Run("explicit status filter includes archived", func(t *testing.T) {
		archived := seedTask(10, 0, "Archivada")
		archived.Number = nil
		archived.Status = model.StatusArchived
		repo := newMemRepo(archived, seedTask(11, 1, "Activa"))
		uc := usecase.New(&mockLogger{}, repo, nil)

		tasks, err := uc.List(ctx, sc, task.ListInput{Status: model.StatusArchived})
		if err != nil {
			t.Fatal(err)
		}
		if len(tasks) != 1 || tasks[0].ID != 10 {
			t.Fatalf("listed %d tasks, want only task 10", len(tasks))
		}
	})
}

func TestListArchive(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	recently := time.Now().UTC().Add(-24 * time.Hour)
	longAgo := time.Now().UTC().AddDate(0, 0, -45)

	fresh := seedTask(10, 0, "Archivada ayer")
	fresh.Number = nil
	fresh.Status = model.StatusArchived
	fresh.ArchivedAt = &recently
	stale := seedTask(11, 0, "Archivada hace 45 dias")
	stale.Number = nil
	stale.Status = model.StatusArchived
	stale.ArchivedAt = &longAgo

	repo := newMemRepo(fresh, stale)
	uc := usecase.New(&mockLogger{}, repo, nil)

	tasks, err := uc.ListArchive(ctx, sc)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != 10 {
		t.Fatalf("listed %d tasks, want only task 10", len(tasks))
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	repo := newMemRepo(seedTask(10, 1, "Tarea"))
	uc := usecase.New(&mockLogger{}, repo, nil)

	if err := uc.Delete(ctx, sc, 10); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetOneTask(ctx, getByID(10))
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != model.StatusArchived {
		t.Errorf("status = %q, want archived", got.Status)
	}
}

func TestNextNumber(t *testing.T) {
	ctx := context.Background()

	archived := seedTask(12, 0, "Archivada")
	archived.Number = nil
	archived.Status = model.StatusArchived

	repo := newMemRepo(
		seedTask(10, 1, "Primera"),
		seedTask(11, 2, "Segunda"),
		archived,
	)
	uc := usecase.New(&mockLogger{}, repo, nil)

	next, err := uc.NextNumber(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if next != 3 {
		t.Errorf("next = %d, want 3", next)
	}
}
