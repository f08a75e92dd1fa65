package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "9:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "00:00", want: 0},
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "nine", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClock(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidClock) {
					t.Fatalf("expected ErrInvalidClock, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestClockString(t *testing.T) {
	if got := MustClock("09:05").String(); got != "09:05" {
		t.Fatalf("expected 09:05, got %s", got)
	}
	if got := MustClock("13:00").Add(30).String(); got != "13:30" {
		t.Fatalf("expected 13:30, got %s", got)
	}
}

func TestDate(t *testing.T) {
	if _, err := ParseDate("2023-02-30"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate for impossible day, got %v", err)
	}

	d := MustDate("2023-06-14")
	if d.Weekday() != time.Wednesday {
		t.Fatalf("expected Wednesday, got %s", d.Weekday())
	}
	if got := d.StartOfWeek(); got != "2023-06-11" {
		t.Fatalf("expected week to start on 2023-06-11, got %s", got)
	}
	if got := MustDate("2023-12-31").AddDays(1); got != "2024-01-01" {
		t.Fatalf("expected 2024-01-01, got %s", got)
	}
}

func TestWorkingHoursGrid(t *testing.T) {
	grid := DefaultWorkingHours().Grid()

	// 09:00 through 17:30 in 30 minute steps.
	if len(grid) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(grid))
	}
	if grid[0].Time != MustClock("09:00") || grid[len(grid)-1].Time != MustClock("17:30") {
		t.Fatalf("unexpected bounds %s..%s", grid[0].Time, grid[len(grid)-1].Time)
	}

	for _, s := range grid {
		want := SlotOpen
		if s.Time == MustClock("13:00") {
			want = SlotBlocked
		}
		if s.State != want {
			t.Errorf("slot %s: expected %s, got %s", s.Time, want, s.State)
		}
	}

	day := DaySchedule{Slots: grid}
	if err := day.Validate(); err != nil {
		t.Fatalf("grid should be a valid day: %v", err)
	}
}

func TestWorkingHoursValidate(t *testing.T) {
	w := DefaultWorkingHours()
	w.LunchStart, w.LunchEnd = MustClock("08:00"), MustClock("08:30")
	if err := w.Validate(); err == nil {
		t.Fatalf("expected lunch outside hours to be rejected")
	}

	w = DefaultWorkingHours()
	w.Granularity = 0
	if err := w.Validate(); err == nil {
		t.Fatalf("expected zero granularity to be rejected")
	}
}

func TestWorkingHoursOnGrid(t *testing.T) {
	w := DefaultWorkingHours()
	tests := []struct {
		in   string
		want bool
	}{
		{in: "09:00", want: true},
		{in: "13:30", want: true},
		{in: "19:00", want: true},
		{in: "08:30", want: true},
		{in: "09:15", want: false},
		{in: "08:45", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := w.OnGrid(MustClock(tt.in)); got != tt.want {
				t.Fatalf("OnGrid(%s) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlotsRequired(t *testing.T) {
	tests := []struct {
		duration, granularity, want int
	}{
		{30, 30, 1},
		{20, 30, 1},
		{50, 30, 2},
		{60, 30, 2},
		{61, 30, 3},
		{0, 30, 0},
	}
	for _, tc := range tests {
		if got := SlotsRequired(tc.duration, tc.granularity); got != tc.want {
			t.Errorf("SlotsRequired(%d, %d) = %d, want %d", tc.duration, tc.granularity, got, tc.want)
		}
	}
}

func TestDayScheduleValidate(t *testing.T) {
	tests := []struct {
		name  string
		slots []TimeSlot
		ok    bool
	}{
		{"ordered", []TimeSlot{{Time: 540, State: SlotOpen}, {Time: 570, State: SlotBooked, Occupant: "a"}}, true},
		{"duplicate", []TimeSlot{{Time: 540, State: SlotOpen}, {Time: 540, State: SlotOpen}}, false},
		{"unordered", []TimeSlot{{Time: 570, State: SlotOpen}, {Time: 540, State: SlotOpen}}, false},
		{"booked without occupant", []TimeSlot{{Time: 540, State: SlotBooked}}, false},
		{"open with occupant", []TimeSlot{{Time: 540, State: SlotOpen, Occupant: "a"}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := DaySchedule{Slots: tc.slots}.Validate()
			if (err == nil) != tc.ok {
				t.Fatalf("ok=%v, got err %v", tc.ok, err)
			}
		})
	}
}
