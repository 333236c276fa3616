package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPublishRunsEveryHandler(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("webhook down")

	var calls []string
	d.Subscribe(EventEmployeeHired, func(context.Context, Event) error {
		calls = append(calls, "first")
		return boom
	})
	d.Subscribe(EventEmployeeHired, func(_ context.Context, e Event) error {
		calls = append(calls, "second")
		if e.EmployeeID != 42 {
			t.Fatalf("expected employee 42, got %d", e.EmployeeID)
		}
		return nil
	})
	d.Subscribe(EventEmployeeTerminated, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventEmployeeHired, 42, time.Now(), nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined handler error, got %v", err)
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("unexpected handler calls %v", calls)
	}
}

func TestNewEventAssignsID(t *testing.T) {
	a := NewEvent(EventStaffCreated, 1, time.Now(), nil)
	b := NewEvent(EventStaffCreated, 1, time.Now(), nil)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
}
