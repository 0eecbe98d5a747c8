// file: internals/helpers/schooltime.go
package helper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"absenku_backend/internals/configs"
)

// Nama hari sekolah (tidak ada minggu — sekolah libur).
const (
	DaySenin  = "senin"
	DaySelasa = "selasa"
	DayRabu   = "rabu"
	DayKamis  = "kamis"
	DayJumat  = "jumat"
	DaySabtu  = "sabtu"
)

var SchoolDays = []string{DaySenin, DaySelasa, DayRabu, DayKamis, DayJumat, DaySabtu}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    DaySenin,
	time.Tuesday:   DaySelasa,
	time.Wednesday: DayRabu,
	time.Thursday:  DayKamis,
	time.Friday:    DayJumat,
	time.Saturday:  DaySabtu,
	// Minggu sengaja tidak dipetakan
}

// SchoolNow: waktu "sekarang" dalam timezone sekolah.
func SchoolNow() time.Time {
	return time.Now().In(configs.SchoolLocation())
}

// SchoolToday: tanggal hari ini (00:00 waktu sekolah).
func SchoolToday() time.Time {
	return DateOnly(SchoolNow())
}

// DateOnly memotong jam/menit/detik, mempertahankan timezone sekolah.
func DateOnly(t time.Time) time.Time {
	tt := t.In(configs.SchoolLocation())
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, configs.SchoolLocation())
}

// DayName memetakan tanggal ke nama hari sekolah ("senin".."sabtu").
// ok=false untuk hari Minggu (bukan hari sekolah).
func DayName(t time.Time) (string, bool) {
	name, ok := weekdayNames[t.In(configs.SchoolLocation()).Weekday()]
	return name, ok
}

// IsValidDayName memvalidasi input day_of_week.
func IsValidDayName(s string) bool {
	for _, d := range SchoolDays {
		if s == d {
			return true
		}
	}
	return false
}

// DatesInRange mengembalikan seluruh tanggal [start, end] inklusif.
// Error kalau end sebelum start.
func DatesInRange(start, end time.Time) ([]time.Time, error) {
	s := DateOnly(start)
	e := DateOnly(end)
	if e.Before(s) {
		return nil, fmt.Errorf("end_date sebelum start_date")
	}
	var out []time.Time
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out, nil
}

const dateLayout = "2006-01-02"

// ParseDate: "YYYY-MM-DD" → tanggal 00:00 timezone sekolah.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), configs.SchoolLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal harus format YYYY-MM-DD: %q", s)
	}
	return t, nil
}

// FormatDate: kebalikan ParseDate.
func FormatDate(t time.Time) string {
	return t.In(configs.SchoolLocation()).Format(dateLayout)
}

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClockTime memvalidasi "HH:mm" (zero-padded).
// Format ini membuat perbandingan string == perbandingan waktu.
func IsValidClockTime(s string) bool {
	return hhmmRe.MatchString(strings.TrimSpace(s))
}
