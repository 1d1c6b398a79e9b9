package usecase

import (
	"testing"

	"impag-tasks/internal/model"
)

func intp(n int) *int { return &n }

func TestPlanAllocation(t *testing.T) {
	t.Run("no claims packs from smallest free", func(t *testing.T) {
		plan := planAllocation([]int{1, 2, 4}, nil, []*int{nil, nil, nil})
		want := []int{3, 5, 6}
		for i, n := range want {
			if plan.Assigned[i] != n {
				t.Errorf("Assigned[%d] = %d, want %d", i, plan.Assigned[i], n)
			}
		}
		if len(plan.Reassignments) != 0 {
			t.Errorf("unexpected reassignments: %v", plan.Reassignments)
		}
	})

	t.Run("claimed numbers displace holders past the batch", func(t *testing.T) {
		holders := []model.Task{
			{ID: 20, Number: intp(2)},
			{ID: 30, Number: intp(3)},
		}
		plan := planAllocation([]int{1, 2, 3}, holders, []*int{intp(2), intp(3), intp(4)})

		// Holders of 2 and 3 must land on numbers free after the whole
		// batch: 1..4 are occupied or claimed, so 5 and 6.
		if len(plan.Reassignments) != 2 {
			t.Fatalf("got %d reassignments, want 2", len(plan.Reassignments))
		}
		if plan.Reassignments[0].TaskID != 20 || plan.Reassignments[0].NewNumber != 5 {
			t.Errorf("first reassignment = %+v, want task 20 to 5", plan.Reassignments[0])
		}
		if plan.Reassignments[1].TaskID != 30 || plan.Reassignments[1].NewNumber != 6 {
			t.Errorf("second reassignment = %+v, want task 30 to 6", plan.Reassignments[1])
		}
		for i, want := range []int{2, 3, 4} {
			if plan.Assigned[i] != want {
				t.Errorf("Assigned[%d] = %d, want %d", i, plan.Assigned[i], want)
			}
		}
	})

	t.Run("claim without holder is granted directly", func(t *testing.T) {
		plan := planAllocation([]int{1}, nil, []*int{intp(7)})
		if len(plan.Reassignments) != 0 {
			t.Errorf("unexpected reassignments: %v", plan.Reassignments)
		}
		if plan.Assigned[0] != 7 {
			t.Errorf("Assigned[0] = %d, want 7", plan.Assigned[0])
		}
	})

	t.Run("duplicate claim within batch goes to the first claimant", func(t *testing.T) {
		plan := planAllocation(nil, nil, []*int{intp(5), intp(5), nil})
		if plan.Assigned[0] != 5 {
			t.Errorf("Assigned[0] = %d, want 5", plan.Assigned[0])
		}
		if plan.Assigned[1] == 5 {
			t.Error("second claimant also got 5")
		}
		seen := map[int]bool{}
		for _, n := range plan.Assigned {
			if seen[n] {
				t.Fatalf("number %d assigned twice", n)
			}
			seen[n] = true
		}
	})

	t.Run("all assigned numbers are unique against holders", func(t *testing.T) {
		active := []int{1, 2, 3, 8}
		holders := []model.Task{{ID: 10, Number: intp(2)}}
		plan := planAllocation(active, holders, []*int{intp(2), nil, nil})

		used := map[int]bool{1: true, 3: true, 8: true}
		for _, r := range plan.Reassignments {
			if used[r.NewNumber] {
				t.Fatalf("reassignment to occupied number %d", r.NewNumber)
			}
			used[r.NewNumber] = true
		}
		for _, n := range plan.Assigned {
			if used[n] {
				t.Fatalf("assignment to occupied number %d", n)
			}
			used[n] = true
		}
	})
}

func TestFreeNumbers(t *testing.T) {
	f := newFreeNumbers(map[int]bool{1: true, 2: true, 4: true})
	for _, want := range []int{3, 5, 6} {
		if got := f.next(); got != want {
			t.Errorf("next() = %d, want %d", got, want)
		}
	}
}
