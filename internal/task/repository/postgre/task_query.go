package postgre

import (
	"fmt"
	"strings"

	repo "impag-tasks/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-zero fields are applied as AND conditions.
func buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Number != 0 {
		conditions = append(conditions, fmt.Sprintf("task_number = $%d AND status != 'archived'", idx))
		args = append(args, opt.Number)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	arg := func(v any) string {
		args = append(args, v)
		p := fmt.Sprintf("$%d", idx)
		idx++
		return p
	}

	if opt.Status != "" {
		conditions = append(conditions, "status = "+arg(opt.Status))
	} else if opt.ExcludeArchived {
		conditions = append(conditions, "status != 'archived'")
	}
	if opt.AssignedTo != nil {
		conditions = append(conditions, "assigned_to = "+arg(*opt.AssignedTo))
	}
	if opt.CreatedBy != nil {
		conditions = append(conditions, "created_by = "+arg(*opt.CreatedBy))
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = "+arg(opt.Priority))
	}
	if opt.Uncategorized {
		conditions = append(conditions, "category_id IS NULL")
	} else if opt.CategoryID != nil {
		conditions = append(conditions, "category_id = "+arg(*opt.CategoryID))
	}
	if opt.DueBefore != nil {
		conditions = append(conditions, "due_date <= "+arg(*opt.DueBefore))
	}
	if opt.DueAfter != nil {
		conditions = append(conditions, "due_date >= "+arg(*opt.DueAfter))
	}
	if opt.Search != "" {
		p := arg("%" + opt.Search + "%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE %s OR description ILIKE %s)", p, p))
	}
	if opt.ArchivedSince != nil {
		conditions = append(conditions, "archived_at >= "+arg(*opt.ArchivedSince))
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, "ORDER BY "+orderBy)

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT "+arg(opt.Limit))
	}
	if opt.Skip > 0 {
		parts = append(parts, "OFFSET "+arg(opt.Skip))
	}

	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateTaskInfo.
func buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	set := func(column string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, v)
		idx++
	}

	if opt.Title != nil {
		set("title", *opt.Title)
	}
	if opt.Description != nil {
		set("description", *opt.Description)
	}
	if opt.Priority != nil {
		set("priority", *opt.Priority)
	}
	if opt.ClearDueDate {
		sets = append(sets, "due_date = NULL")
	} else if opt.DueDate != nil {
		set("due_date", *opt.DueDate)
	}
	if opt.ClearCategory {
		sets = append(sets, "category_id = NULL")
	} else if opt.CategoryID != nil {
		set("category_id", *opt.CategoryID)
	}
	if opt.ClearAssignee {
		sets = append(sets, "assigned_to = NULL")
	} else if opt.AssignedTo != nil {
		set("assigned_to", *opt.AssignedTo)
	}

	if len(sets) == 0 {
		return "", nil
	}
	sets = append(sets, "last_updated = NOW()")
	return strings.Join(sets, ", "), args
}
