package dates

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != New(2024, time.June, 1) {
		t.Errorf("got %v", d)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("String() = %q", d.String())
	}

	for _, bad := range []string{"", "2024-13-01", "06/01/2024", "2024-02-30"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestDate_AddDaysCrossesMonthAndYear(t *testing.T) {
	if got := New(2024, time.December, 31).AddDays(1); got != New(2025, time.January, 1) {
		t.Errorf("got %v", got)
	}
	if got := New(2024, time.March, 1).AddDays(-1); got != New(2024, time.February, 29) {
		t.Errorf("got %v", got)
	}
}

func TestDate_Scan(t *testing.T) {
	var d Date
	if err := d.Scan("2024-06-03"); err != nil || d != New(2024, time.June, 3) {
		t.Errorf("scan string: %v %v", d, err)
	}
	if err := d.Scan([]byte("2024-06-04 00:00:00")); err != nil || d != New(2024, time.June, 4) {
		t.Errorf("scan bytes: %v %v", d, err)
	}
	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Errorf("scan nil: %v %v", d, err)
	}
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Due  Date  `json:"due"`
		Done *Date `json:"done"`
	}

	out, err := json.Marshal(wrapper{Due: New(2024, time.June, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"due":"2024-06-01","done":null}` {
		t.Errorf("marshal = %s", out)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"due":"2025-01-31"}`), &w); err != nil {
		t.Fatal(err)
	}
	if w.Due != New(2025, time.January, 31) {
		t.Errorf("unmarshal = %v", w.Due)
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"", NoTime, false},
		{"09:30", "09:30", false},
		{"18:05:59", "18:05", false},
		{"24:00", NoTime, true},
		{"9am", NoTime, true},
	}
	for _, tt := range tests {
		got, err := ParseClockTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClockTime(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClockTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWallClockKeepsLocalFields(t *testing.T) {
	zone := time.FixedZone("ICT", 7*60*60)
	in := time.Date(2024, time.July, 1, 5, 30, 15, 999, zone)

	got := WallClock(in)
	want := time.Date(2024, time.July, 1, 5, 30, 15, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("WallClock(%s) = %s, want %s", in, got, want)
	}
	if DateOf(got) != New(2024, time.July, 1) {
		t.Errorf("local date moved to %s", DateOf(got))
	}
}
