package helper

import (
	"testing"
	"time"
)

func TestDayName(t *testing.T) {
	cases := []struct {
		date   string
		want   string
		wantOK bool
	}{
		{"2024-01-01", "senin", true},  // Senin
		{"2024-01-02", "selasa", true},
		{"2024-01-05", "jumat", true},
		{"2024-01-06", "sabtu", true},
		{"2024-01-07", "", false}, // Minggu bukan hari sekolah
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.date)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.date, err)
		}
		got, ok := DayName(d)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("DayName(%s) = (%q, %v), want (%q, %v)", tc.date, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestDatesInRange(t *testing.T) {
	start, _ := ParseDate("2024-03-01")
	end, _ := ParseDate("2024-03-05")

	dates, err := DatesInRange(start, end)
	if err != nil {
		t.Fatalf("DatesInRange: %v", err)
	}
	if len(dates) != 5 {
		t.Fatalf("len = %d, want 5", len(dates))
	}
	if FormatDate(dates[0]) != "2024-03-01" || FormatDate(dates[4]) != "2024-03-05" {
		t.Errorf("range bounds salah: %s .. %s", FormatDate(dates[0]), FormatDate(dates[4]))
	}

	// satu hari = satu tanggal
	single, err := DatesInRange(start, start)
	if err != nil || len(single) != 1 {
		t.Errorf("single day: len=%d err=%v", len(single), err)
	}

	// end sebelum start = error
	if _, err := DatesInRange(end, start); err == nil {
		t.Error("expected error untuk end < start")
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "07:30", "13:05", "23:59"}
	invalid := []string{"24:00", "7:30", "07:60", "0730", "07:3", "", "ab:cd"}

	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-08-17")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("ParseDate harus 00:00, got %v", d)
	}
	if d.Weekday() != time.Saturday {
		t.Errorf("2024-08-17 harus Sabtu, got %v", d.Weekday())
	}

	for _, bad := range []string{"17-08-2024", "2024/08/17", "2024-13-01", "abc"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, 5, 10, 15, 45, 30, 0, time.UTC)
	d := DateOnly(ts)
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("DateOnly harus memotong jam, got %v", d)
	}
}
