package store

import (
	"reflect"
	"testing"

	"taskdeck/internal/api"
)

func TestReplaceAndCurrent(t *testing.T) {
	s := New()
	in := []api.Task{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
	}

	s.Replace(in)

	got := s.Current()
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("Current() = %v, want %v", got, in)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestCurrentReturnsACopy(t *testing.T) {
	s := New()
	s.Replace([]api.Task{{ID: 1, Title: "first"}})

	snap := s.Current()
	snap[0].Title = "mutated"

	if got, _ := s.Find(1); got.Title != "first" {
		t.Fatalf("store task title = %q, want %q after mutating a snapshot", got.Title, "first")
	}
}

func TestReplaceDetachesFromCaller(t *testing.T) {
	s := New()
	in := []api.Task{{ID: 1, Title: "first"}}
	s.Replace(in)

	in[0].Title = "mutated"

	if got, _ := s.Find(1); got.Title != "first" {
		t.Fatalf("store task title = %q, want %q after mutating the input", got.Title, "first")
	}
}

func TestFind(t *testing.T) {
	s := New()
	s.Replace([]api.Task{{ID: 7, Title: "seventh", Status: api.StatusPending}})

	got, ok := s.Find(7)
	if !ok {
		t.Fatal("Find(7) ok = false, want true")
	}
	if got.Title != "seventh" {
		t.Fatalf("Find(7) title = %q, want %q", got.Title, "seventh")
	}

	if _, ok := s.Find(9999); ok {
		t.Fatal("Find(9999) ok = true, want false")
	}
}

func TestReplaceWithNilEmptiesTheStore(t *testing.T) {
	s := New()
	s.Replace([]api.Task{{ID: 1}})
	s.Replace(nil)

	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Find(1); ok {
		t.Fatal("Find(1) ok = true after Replace(nil), want false")
	}
}
