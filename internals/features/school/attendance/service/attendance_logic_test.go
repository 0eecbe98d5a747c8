package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	attModel "absenku_backend/internals/features/school/attendance/model"
	helper "absenku_backend/internals/helpers"
)

func strPtr(s string) *string { return &s }

func TestApplyMark(t *testing.T) {
	actor := uuid.New()
	now := time.Date(2024, 3, 4, 7, 30, 0, 0, time.UTC)
	earlier := now.Add(-2 * time.Hour)

	t.Run("hadir tanpa check-in mengisi jam check-in", func(t *testing.T) {
		rec := attModel.AttendanceModel{}
		applyMark(&rec, attModel.AttendanceHadir, nil, actor, now)

		if rec.AttendanceStatus != attModel.AttendanceHadir {
			t.Errorf("status = %s", rec.AttendanceStatus)
		}
		if rec.AttendanceCheckInTime == nil || !rec.AttendanceCheckInTime.Equal(now) {
			t.Errorf("check-in harus di-set ke now, got %v", rec.AttendanceCheckInTime)
		}
	})

	t.Run("override tidak_hadir mempertahankan jam check-in lama", func(t *testing.T) {
		rec := attModel.AttendanceModel{
			AttendanceStatus:      attModel.AttendanceHadir,
			AttendanceCheckInTime: &earlier,
		}
		applyMark(&rec, attModel.AttendanceTidakHadir, strPtr("pulang tanpa izin"), actor, now)

		if rec.AttendanceStatus != attModel.AttendanceTidakHadir {
			t.Errorf("status = %s", rec.AttendanceStatus)
		}
		if rec.AttendanceCheckInTime == nil || !rec.AttendanceCheckInTime.Equal(earlier) {
			t.Errorf("check-in lama hilang: %v", rec.AttendanceCheckInTime)
		}
		if rec.AttendanceNotes == nil || *rec.AttendanceNotes != "pulang tanpa izin" {
			t.Errorf("notes = %v", rec.AttendanceNotes)
		}
	})

	t.Run("hadir dengan check-in lama tidak menimpa jam", func(t *testing.T) {
		rec := attModel.AttendanceModel{
			AttendanceStatus:      attModel.AttendanceAlpa,
			AttendanceCheckInTime: &earlier,
		}
		applyMark(&rec, attModel.AttendanceHadir, nil, actor, now)

		if !rec.AttendanceCheckInTime.Equal(earlier) {
			t.Errorf("jam check-in pertama harus otoritatif, got %v", rec.AttendanceCheckInTime)
		}
	})

	t.Run("notes nil tidak menghapus notes lama", func(t *testing.T) {
		rec := attModel.AttendanceModel{AttendanceNotes: strPtr("catatan wali kelas")}
		applyMark(&rec, attModel.AttendanceSakit, nil, actor, now)

		if rec.AttendanceNotes == nil || *rec.AttendanceNotes != "catatan wali kelas" {
			t.Errorf("notes = %v", rec.AttendanceNotes)
		}
	})

	t.Run("aktor selalu tercatat", func(t *testing.T) {
		rec := attModel.AttendanceModel{AttendanceCreatedBy: uuid.New()}
		applyMark(&rec, attModel.AttendanceIzin, nil, actor, now)

		if rec.AttendanceCreatedBy != actor {
			t.Errorf("created_by = %s, want %s", rec.AttendanceCreatedBy, actor)
		}
	})
}

func TestSkipExcusedOverwrite(t *testing.T) {
	if !SkipExcusedOverwrite(attModel.AttendanceHadir) {
		t.Error("hadir harus dilewati, bukan diturunkan jadi izin/sakit")
	}
	for _, s := range []attModel.AttendanceStatus{
		attModel.AttendanceTidakHadir, attModel.AttendanceIzin,
		attModel.AttendanceSakit, attModel.AttendanceAlpa,
	} {
		if SkipExcusedOverwrite(s) {
			t.Errorf("%s harus boleh ditimpa materialisasi", s)
		}
	}
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []attModel.AttendanceStatus{
		attModel.AttendanceHadir, attModel.AttendanceTidakHadir,
		attModel.AttendanceIzin, attModel.AttendanceSakit, attModel.AttendanceAlpa,
	} {
		if !s.Valid() {
			t.Errorf("%s harus valid", s)
		}
	}
	for _, s := range []attModel.AttendanceStatus{"", "present", "HADIR", "bolos"} {
		if s.Valid() {
			t.Errorf("%q tidak boleh valid", s)
		}
	}
}

func TestCountSchoolDays(t *testing.T) {
	// Senin 2024-01-01 .. Minggu 2024-01-07
	start, _ := helper.ParseDate("2024-01-01")
	end, _ := helper.ParseDate("2024-01-07")

	cases := []struct {
		name   string
		active []string
		want   int
	}{
		{"senin-jumat", []string{"senin", "selasa", "rabu", "kamis", "jumat"}, 5},
		{"enam hari", []string{"senin", "selasa", "rabu", "kamis", "jumat", "sabtu"}, 6},
		{"dua hari", []string{"senin", "rabu"}, 2},
		{"tanpa jadwal", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountSchoolDays(start, end, tc.active); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}

	// dua minggu penuh: hari aktif dihitung dua kali
	end2, _ := helper.ParseDate("2024-01-14")
	if got := CountSchoolDays(start, end2, []string{"senin"}); got != 2 {
		t.Errorf("dua senin, got %d", got)
	}
}

func TestComputeStats(t *testing.T) {
	counts := map[attModel.AttendanceStatus]int64{
		attModel.AttendanceHadir:      40,
		attModel.AttendanceTidakHadir: 3,
		attModel.AttendanceAlpa:       2,
		attModel.AttendanceIzin:       4,
		attModel.AttendanceSakit:      1,
	}

	// 10 siswa × 5 hari sekolah = denominator 50
	got := ComputeStats(counts, 5, 10, 5)

	if got.PresentDays != 40 {
		t.Errorf("present = %d", got.PresentDays)
	}
	if got.AbsentDays != 5 {
		t.Errorf("absent (tidak_hadir+alpa) = %d, want 5", got.AbsentDays)
	}
	if got.LeaveDays != 5 {
		t.Errorf("leave (izin+sakit) = %d, want 5", got.LeaveDays)
	}
	if got.AttendanceRate != 0.8 {
		t.Errorf("rate = %v, want 0.8", got.AttendanceRate)
	}

	t.Run("denominator nol", func(t *testing.T) {
		s := ComputeStats(counts, 5, 0, 0)
		if s.AttendanceRate != 0 {
			t.Errorf("rate = %v, want 0", s.AttendanceRate)
		}
	})

	t.Run("rate dibatasi 1", func(t *testing.T) {
		over := map[attModel.AttendanceStatus]int64{attModel.AttendanceHadir: 100}
		s := ComputeStats(over, 5, 2, 5)
		if s.AttendanceRate != 1 {
			t.Errorf("rate = %v, want 1", s.AttendanceRate)
		}
	})
}
