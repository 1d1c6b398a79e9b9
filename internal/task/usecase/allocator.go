package usecase

import (
	"context"
	"sort"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task/repository"
)

// reassignment moves an existing task off a number an incoming candidate
// claims for itself.
type reassignment struct {
	TaskID    int64
	OldNumber int
	NewNumber int
}

// allocationPlan is the outcome of planning one allocation wave.
type allocationPlan struct {
	// Reassignments are applied first, in ascending old-number order, so
	// every claimed number is free before any insert happens.
	Reassignments []reassignment
	// Assigned holds, in candidate order, the final number of every
	// incoming candidate. Explicit claims are honored; the rest get the
	// smallest free numbers.
	Assigned []int
}

// freeNumbers hands out the smallest positive numbers not in taken,
// ascending, marking each one taken as it goes.
type freeNumbers struct {
	taken  map[int]bool
	cursor int
}

func newFreeNumbers(taken map[int]bool) *freeNumbers {
	return &freeNumbers{taken: taken, cursor: 1}
}

func (f *freeNumbers) next() int {
	for f.taken[f.cursor] {
		f.cursor++
	}
	f.taken[f.cursor] = true
	return f.cursor
}

// planAllocation computes numbers for a batch of incoming candidates
// against the current holder set. requested carries each candidate's
// explicit number claim, nil when the candidate has none.
//
// Existing tasks whose numbers are claimed get renumbered onto the
// smallest numbers free after the whole batch settles, so a renumbered
// task can never collide with a later insert of the same wave. A number
// claimed twice within the batch goes to the first claimant; later
// claimants fall back to free numbers.
func planAllocation(active []int, holders []model.Task, requested []*int) allocationPlan {
	taken := make(map[int]bool, len(active))
	for _, n := range active {
		taken[n] = true
	}

	claimed := make(map[int]bool)
	for _, r := range requested {
		if r != nil {
			claimed[*r] = true
		}
	}

	// Free numbers must avoid both current holders and incoming claims.
	reserved := make(map[int]bool, len(taken)+len(claimed))
	for n := range taken {
		reserved[n] = true
	}
	for n := range claimed {
		reserved[n] = true
	}
	free := newFreeNumbers(reserved)

	var plan allocationPlan
	sort.Slice(holders, func(i, j int) bool {
		return deref(holders[i].Number) < deref(holders[j].Number)
	})
	for _, h := range holders {
		if h.Number == nil || !claimed[*h.Number] {
			continue
		}
		plan.Reassignments = append(plan.Reassignments, reassignment{
			TaskID:    h.ID,
			OldNumber: *h.Number,
			NewNumber: free.next(),
		})
	}

	granted := make(map[int]bool)
	plan.Assigned = make([]int, len(requested))
	for i, r := range requested {
		if r != nil && !granted[*r] {
			granted[*r] = true
			plan.Assigned[i] = *r
			continue
		}
		plan.Assigned[i] = free.next()
	}
	return plan
}

func deref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// createBatch allocates numbers for the given options and inserts them,
// all inside one allocation transaction.
func (uc *implUseCase) createBatch(ctx context.Context, tx repository.AllocationTx, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	active, err := tx.ActiveNumbers(ctx)
	if err != nil {
		return nil, err
	}

	requested := make([]*int, len(opts))
	var wanted []int
	seen := make(map[int]bool)
	for i, opt := range opts {
		requested[i] = opt.Number
		if opt.Number != nil && !seen[*opt.Number] {
			seen[*opt.Number] = true
			wanted = append(wanted, *opt.Number)
		}
	}

	var holders []model.Task
	if len(wanted) > 0 {
		holders, err = tx.TasksHoldingNumbers(ctx, wanted)
		if err != nil {
			return nil, err
		}
	}

	plan := planAllocation(active, holders, requested)
	for _, r := range plan.Reassignments {
		uc.l.Infof(ctx, "task.usecase.createBatch: moving task %d from #%d to #%d", r.TaskID, r.OldNumber, r.NewNumber)
		if err := tx.ReassignNumber(ctx, r.TaskID, r.NewNumber); err != nil {
			return nil, err
		}
	}

	created := make([]model.Task, 0, len(opts))
	for i, opt := range opts {
		opt.Number = &plan.Assigned[i]
		t, err := tx.InsertTask(ctx, opt)
		if err != nil {
			return nil, err
		}
		created = append(created, t)
	}
	return created, nil
}

// NextNumber returns the smallest positive number not held by any
// non-archived task. A fresh read under the allocation lock, so the
// preview matches what an immediate create would assign.
func (uc *implUseCase) NextNumber(ctx context.Context) (int, error) {
	var next int
	err := uc.repo.InAllocationTx(ctx, func(tx repository.AllocationTx) error {
		active, err := tx.ActiveNumbers(ctx)
		if err != nil {
			return err
		}
		taken := make(map[int]bool, len(active))
		for _, n := range active {
			taken[n] = true
		}
		next = newFreeNumbers(taken).next()
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.NextNumber: %v", err)
		return 0, err
	}
	return next, nil
}
