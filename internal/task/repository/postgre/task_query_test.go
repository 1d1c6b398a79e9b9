package postgre

import (
	"strings"
	"testing"
	"time"

	"impag-tasks/internal/model"
	repo "impag-tasks/internal/task/repository"
)

func TestBuildGetOneQuery(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		where, args := buildGetOneQuery(repo.GetOneTaskOptions{ID: 7})
		if where != "id = $1" {
			t.Errorf("where = %q", where)
		}
		if len(args) != 1 || args[0] != int64(7) {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("by number excludes archived", func(t *testing.T) {
		where, _ := buildGetOneQuery(repo.GetOneTaskOptions{Number: 3})
		if !strings.Contains(where, "task_number = $1") || !strings.Contains(where, "status != 'archived'") {
			t.Errorf("where = %q", where)
		}
	})
}

func TestBuildListQuery(t *testing.T) {
	t.Run("default excludes archived without args", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{ExcludeArchived: true})
		if !strings.Contains(mods, "status != 'archived'") {
			t.Errorf("mods = %q", mods)
		}
		if !strings.Contains(mods, "ORDER BY created_at DESC") {
			t.Errorf("mods = %q", mods)
		}
		if strings.Contains(mods, "LIMIT") {
			t.Errorf("unbounded list got a LIMIT: %q", mods)
		}
		if len(args) != 0 {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("status filter wins over exclude", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{Status: model.StatusArchived, ExcludeArchived: true})
		if !strings.Contains(mods, "status = $1") || strings.Contains(mods, "status != 'archived'") {
			t.Errorf("mods = %q", mods)
		}
		if len(args) != 1 {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("search expands to title and description", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{Search: "bomba"})
		if !strings.Contains(mods, "title ILIKE $1") || !strings.Contains(mods, "description ILIKE $1") {
			t.Errorf("mods = %q", mods)
		}
		if len(args) != 1 || args[0] != "%bomba%" {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("uncategorized beats category id", func(t *testing.T) {
		id := int64(4)
		mods, args := buildListQuery(repo.ListTasksOptions{Uncategorized: true, CategoryID: &id})
		if !strings.Contains(mods, "category_id IS NULL") || strings.Contains(mods, "category_id = ") {
			t.Errorf("mods = %q", mods)
		}
		if len(args) != 0 {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("pagination placeholders follow filters", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{Search: "x", Limit: 20, Skip: 40})
		if !strings.Contains(mods, "LIMIT $2") || !strings.Contains(mods, "OFFSET $3") {
			t.Errorf("mods = %q", mods)
		}
		if len(args) != 3 {
			t.Errorf("args = %v", args)
		}
	})
}

func TestBuildUpdateQuery(t *testing.T) {
	t.Run("nothing to set", func(t *testing.T) {
		sets, args := buildUpdateQuery(repo.UpdateTaskOptions{ID: 1})
		if sets != "" || args != nil {
			t.Errorf("sets = %q, args = %v", sets, args)
		}
	})

	t.Run("clear flags write NULL without args", func(t *testing.T) {
		sets, args := buildUpdateQuery(repo.UpdateTaskOptions{ID: 1, ClearDueDate: true, ClearAssignee: true})
		if !strings.Contains(sets, "due_date = NULL") || !strings.Contains(sets, "assigned_to = NULL") {
			t.Errorf("sets = %q", sets)
		}
		if !strings.Contains(sets, "last_updated = NOW()") {
			t.Errorf("sets = %q", sets)
		}
		if len(args) != 0 {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("set fields are parameterized in order", func(t *testing.T) {
		title := "Nueva"
		due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		sets, args := buildUpdateQuery(repo.UpdateTaskOptions{ID: 1, Title: &title, DueDate: &due})
		if !strings.Contains(sets, "title = $1") || !strings.Contains(sets, "due_date = $2") {
			t.Errorf("sets = %q", sets)
		}
		if len(args) != 2 {
			t.Errorf("args = %v", args)
		}
	})
}
