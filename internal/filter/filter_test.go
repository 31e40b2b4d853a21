package filter

import (
	"reflect"
	"testing"

	"taskdeck/internal/api"
)

func sample() []api.Task {
	return []api.Task{
		{ID: 1, Title: "Buy milk", Description: "two liters", Status: api.StatusPending, Priority: api.PriorityMedium},
		{ID: 2, Title: "Write report", Description: "includes milk budget", Status: api.StatusInProgress, Priority: api.PriorityHigh},
		{ID: 3, Title: "Call dentist", Status: api.StatusCompleted, Priority: api.PriorityLow},
		{ID: 4, Title: "MILK the cows", Status: api.StatusPending, Priority: api.PriorityHigh},
	}
}

func ids(tasks []api.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestApply_EmptyCriteriaIsIdentity(t *testing.T) {
	in := sample()
	got := Criteria{}.Apply(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("Apply() = %v, want input unchanged %v", ids(got), ids(in))
	}
}

func TestApply_QueryMatchesTitleOrDescription(t *testing.T) {
	got := Criteria{Query: "milk"}.Apply(sample())
	want := []int64{1, 2, 4}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("Apply() ids = %v, want %v", ids(got), want)
	}
}

func TestApply_QueryIsCaseInsensitive(t *testing.T) {
	got := Criteria{Query: "BUY"}.Apply(sample())
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("Apply() ids = %v, want [1]", ids(got))
	}
}

func TestApply_PredicatesAreAnded(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want []int64
	}{
		{"status only", Criteria{Status: api.StatusPending}, []int64{1, 4}},
		{"priority only", Criteria{Priority: api.PriorityHigh}, []int64{2, 4}},
		{"status and priority", Criteria{Status: api.StatusPending, Priority: api.PriorityHigh}, []int64{4}},
		{"all three", Criteria{Query: "milk", Status: api.StatusPending, Priority: api.PriorityHigh}, []int64{4}},
		{"no match", Criteria{Query: "dentist", Status: api.StatusPending}, []int64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(tc.c.Apply(sample()))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Apply() ids = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApply_PreservesOrderAndInput(t *testing.T) {
	in := sample()
	before := append([]api.Task(nil), in...)

	got := Criteria{Priority: api.PriorityHigh}.Apply(in)

	if !reflect.DeepEqual(ids(got), []int64{2, 4}) {
		t.Fatalf("Apply() ids = %v, want [2 4]", ids(got))
	}
	if !reflect.DeepEqual(in, before) {
		t.Fatal("Apply() mutated its input")
	}
}

func TestIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Fatal("IsZero() = false for empty criteria, want true")
	}
	if (Criteria{Query: "x"}).IsZero() {
		t.Fatal("IsZero() = true with a query, want false")
	}
}
