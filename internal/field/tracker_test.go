package field

import (
	"reflect"
	"testing"

	"github.com/fieldkit/fieldkit/internal/errors"
)

func TestNewTrackerNilRenderer(t *testing.T) {
	_, err := NewTracker(nil)
	if !errors.IsValidation(err) {
		t.Errorf("error = %v, want a validation error", err)
	}
}

func TestTrackerInitialValue(t *testing.T) {
	p := &probe{}

	tracker, err := NewTracker(p)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	if tracker.Value() != "" {
		t.Errorf("default initial value = %q, want empty", tracker.Value())
	}

	tracker, err = NewTracker(p, WithInitialValue("seed"))
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	if tracker.Value() != "seed" {
		t.Errorf("initial value = %q, want %q", tracker.Value(), "seed")
	}
}

func TestTrackerChangeUpdatesNextRender(t *testing.T) {
	p := &probe{}
	tracker, err := NewTracker(p)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}

	tracker.HandleChange("abc")

	if tracker.Value() != "abc" {
		t.Errorf("Value() = %q, want %q", tracker.Value(), "abc")
	}

	tracker.Render(Props{Label: "Name"})
	if p.last.Value != "abc" {
		t.Errorf("rendered Value slot = %q, want %q", p.last.Value, "abc")
	}
	if p.last.Label != "Name" {
		t.Error("non-value slots should pass through")
	}
}

func TestTrackerChangeViaRenderedOnChange(t *testing.T) {
	p := &probe{}
	tracker, err := NewTracker(p)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}

	tracker.Render(Props{})
	if p.last.OnChange == nil {
		t.Fatal("rendered props should carry the tracker's handler")
	}

	// Simulate the interactive layer reporting an edit.
	p.last.OnChange("typed")

	tracker.Render(Props{})
	if p.last.Value != "typed" {
		t.Errorf("next render Value slot = %q, want %q", p.last.Value, "typed")
	}
}

func TestTrackerHandlerIsStable(t *testing.T) {
	p := &probe{}
	tracker, err := NewTracker(p)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}

	tracker.Render(Props{})
	first := reflect.ValueOf(p.last.OnChange).Pointer()
	tracker.HandleChange("x")
	tracker.Render(Props{})
	second := reflect.ValueOf(p.last.OnChange).Pointer()

	if first != second {
		t.Error("OnChange identity should be stable across renders")
	}
}

func TestTrackerChangeHook(t *testing.T) {
	p := &probe{}
	var seen []string
	tracker, err := NewTracker(p, WithChangeHook(func(v string) {
		seen = append(seen, v)
	}))
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}

	tracker.HandleChange("a")
	tracker.HandleChange("ab")

	want := []string{"a", "ab"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("hook saw %v, want %v", seen, want)
	}
}
