package appointment

import (
	"testing"
	"time"
)

func TestLatestPerTask_FirstSeenWins(t *testing.T) {
	early := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	// Pre-sorted descending by start_time, as the repository guarantees.
	items := []*Appointment{
		{ID: 5, TaskID: 7, StartTime: &late},
		{ID: 4, TaskID: 7, StartTime: &early},
		{ID: 6, TaskID: 8, StartTime: &early},
	}

	latest := LatestPerTask(items)
	if len(latest) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(latest))
	}
	if latest[7].ID != 5 {
		t.Errorf("expected the latest appointment for task 7, got id %d", latest[7].ID)
	}
	if latest[8].ID != 6 {
		t.Errorf("expected task 8 appointment, got id %d", latest[8].ID)
	}
}
