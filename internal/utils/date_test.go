package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	tests := []struct {
		name    string
		str     string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", str: "2024-06-03T10:00:00+02:00", want: time.Date(2024, 6, 3, 10, 0, 0, 0, time.FixedZone("", 2*60*60))},
		{name: "datetime without timezone", str: "2024-06-03T10:00:00", want: time.Date(2024, 6, 3, 10, 0, 0, 0, berlin)},
		{name: "date only", str: "2024-06-03", want: time.Date(2024, 6, 3, 0, 0, 0, 0, berlin)},
		{name: "garbage", str: "not-a-date", wantErr: true},
		{name: "empty", str: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.str, berlin)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.str)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStartCurrentDay(t *testing.T) {
	in := time.Date(2024, 6, 3, 15, 42, 7, 123, time.UTC)
	got := StartCurrentDay(in)

	want := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got.Location() != in.Location() {
		t.Fatalf("expected location to be preserved")
	}
}

func TestWeekWindow(t *testing.T) {
	weekStart := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

	start, end := WeekWindow(weekStart)

	wantStart := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 9, 23, 59, 59, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("expected window start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Fatalf("expected window end %v, got %v", wantEnd, end)
	}
}

func TestWeekWindow_CrossesMonthBoundary(t *testing.T) {
	weekStart := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)

	_, end := WeekWindow(weekStart)

	wantEnd := time.Date(2024, 7, 4, 23, 59, 59, 0, time.UTC)
	if !end.Equal(wantEnd) {
		t.Fatalf("expected window end %v, got %v", wantEnd, end)
	}
}
