package service

import (
	"reflect"
	"testing"
	"time"

	attModel "absenku_backend/internals/features/school/attendance/model"
	attService "absenku_backend/internals/features/school/attendance/service"
	leaveModel "absenku_backend/internals/features/school/leaves/model"
	helper "absenku_backend/internals/helpers"
)

func TestMaterializedStatus(t *testing.T) {
	cases := []struct {
		in   leaveModel.LeaveType
		want attModel.AttendanceStatus
	}{
		{leaveModel.LeaveTypeIzin, attModel.AttendanceIzin},
		{leaveModel.LeaveTypeSakit, attModel.AttendanceSakit},
	}
	for _, tc := range cases {
		if got := MaterializedStatus(tc.in); got != tc.want {
			t.Errorf("MaterializedStatus(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

// Jalankan aturan materialisasi Approve di atas rentang tanggal tanpa DB:
// DatesInRange mengekspansi rentang, SkipExcusedOverwrite memutuskan nasib
// tanggal yang sudah punya record, SummarizeMaterialization menghasilkan audit.
func planMaterialization(t *testing.T, start, end time.Time, existing map[string]attModel.AttendanceStatus) (int, []string) {
	t.Helper()
	dates, err := helper.DatesInRange(start, end)
	if err != nil {
		t.Fatalf("DatesInRange: %v", err)
	}
	outcomes := make([]MaterializationOutcome, 0, len(dates))
	for _, d := range dates {
		skipped := false
		if st, ok := existing[d.Format("2006-01-02")]; ok {
			skipped = attService.SkipExcusedOverwrite(st)
		}
		outcomes = append(outcomes, MaterializationOutcome{Date: d, Skipped: skipped})
	}
	return SummarizeMaterialization(outcomes)
}

func TestMaterializationPlan(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		return d
	}

	t.Run("rentang 3 hari tanpa record lama ditulis semua", func(t *testing.T) {
		created, skipped := planMaterialization(t, day("2026-03-02"), day("2026-03-04"), nil)
		if created != 3 || len(skipped) != 0 {
			t.Errorf("created=%d skipped=%v, want 3 dan kosong", created, skipped)
		}
	})

	t.Run("hari yang sudah hadir dilewati dan dilaporkan", func(t *testing.T) {
		created, skipped := planMaterialization(t, day("2026-03-02"), day("2026-03-04"),
			map[string]attModel.AttendanceStatus{
				"2026-03-03": attModel.AttendanceHadir,
			})
		if created != 2 {
			t.Errorf("created = %d, want 2", created)
		}
		if want := []string{"2026-03-03"}; !reflect.DeepEqual(skipped, want) {
			t.Errorf("skipped = %v, want %v", skipped, want)
		}
	})

	t.Run("record lama non-hadir tetap ditimpa", func(t *testing.T) {
		created, skipped := planMaterialization(t, day("2026-03-02"), day("2026-03-03"),
			map[string]attModel.AttendanceStatus{
				"2026-03-02": attModel.AttendanceAlpa,
				"2026-03-03": attModel.AttendanceTidakHadir,
			})
		if created != 2 || len(skipped) != 0 {
			t.Errorf("created=%d skipped=%v, want 2 dan kosong", created, skipped)
		}
	})

	t.Run("seluruh rentang sudah hadir tidak ada yang ditulis", func(t *testing.T) {
		created, skipped := planMaterialization(t, day("2026-03-02"), day("2026-03-03"),
			map[string]attModel.AttendanceStatus{
				"2026-03-02": attModel.AttendanceHadir,
				"2026-03-03": attModel.AttendanceHadir,
			})
		if created != 0 {
			t.Errorf("created = %d, want 0", created)
		}
		if want := []string{"2026-03-02", "2026-03-03"}; !reflect.DeepEqual(skipped, want) {
			t.Errorf("skipped = %v, want %v", skipped, want)
		}
	})
}

func TestLeaveTypeValid(t *testing.T) {
	if !leaveModel.LeaveTypeIzin.Valid() || !leaveModel.LeaveTypeSakit.Valid() {
		t.Error("izin/sakit harus valid")
	}
	for _, s := range []leaveModel.LeaveType{"", "cuti", "IZIN", "sick"} {
		if s.Valid() {
			t.Errorf("%q tidak boleh valid", s)
		}
	}
}
