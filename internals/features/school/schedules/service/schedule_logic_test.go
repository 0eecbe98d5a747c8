package service

import (
	"testing"

	"github.com/google/uuid"

	scheduleModel "absenku_backend/internals/features/school/schedules/model"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identik", "08:00", "09:00", "08:00", "09:00", true},
		{"b di dalam a", "07:00", "12:00", "08:00", "09:00", true},
		{"a di dalam b", "08:00", "09:00", "07:00", "12:00", true},
		{"tumpang sebagian", "08:00", "09:30", "09:00", "10:00", true},
		{"batas bersentuhan tidak bentrok", "08:00", "09:00", "09:00", "10:00", false},
		{"batas bersentuhan kebalik", "09:00", "10:00", "08:00", "09:00", false},
		{"terpisah jauh", "07:00", "08:00", "10:00", "11:00", false},
		{"selisih satu menit bentrok", "08:00", "09:01", "09:00", "10:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
			// simetris
			if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Errorf("Overlaps tidak simetris untuk %s", tc.name)
			}
		})
	}
}

func TestScheduleInputValidate(t *testing.T) {
	classID := uuid.New()
	base := func() ScheduleInput {
		return ScheduleInput{
			ClassID:      classID,
			DayOfWeek:    "senin",
			StartTime:    "07:00",
			EndTime:      "08:30",
			Subject:      "Matematika",
			AcademicYear: "2024/2025",
		}
	}

	if err := func() error { in := base(); return in.Validate() }(); err != nil {
		t.Fatalf("input valid ditolak: %v", err)
	}

	t.Run("day dinormalisasi lowercase", func(t *testing.T) {
		in := base()
		in.DayOfWeek = "  SENIN "
		if err := in.Validate(); err != nil {
			t.Fatalf("unexpected: %v", err)
		}
		if in.DayOfWeek != "senin" {
			t.Errorf("day = %q", in.DayOfWeek)
		}
	})

	bad := []struct {
		name   string
		mutate func(*ScheduleInput)
	}{
		{"hari minggu", func(in *ScheduleInput) { in.DayOfWeek = "minggu" }},
		{"hari tidak dikenal", func(in *ScheduleInput) { in.DayOfWeek = "monday" }},
		{"start tanpa zero-pad", func(in *ScheduleInput) { in.StartTime = "7:00" }},
		{"end jam 24", func(in *ScheduleInput) { in.EndTime = "24:00" }},
		{"end sebelum start", func(in *ScheduleInput) { in.StartTime = "10:00"; in.EndTime = "08:00" }},
		{"end sama dengan start", func(in *ScheduleInput) { in.StartTime = "08:00"; in.EndTime = "08:00" }},
		{"subject kosong", func(in *ScheduleInput) { in.Subject = "  " }},
		{"tahun ajaran kosong", func(in *ScheduleInput) { in.AcademicYear = "" }},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			in := base()
			tc.mutate(&in)
			if err := in.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBatchConflict(t *testing.T) {
	classA := uuid.New()
	classB := uuid.New()
	guru := uuid.New()
	guruLain := uuid.New()

	mk := func(class uuid.UUID, teacher *uuid.UUID, day, start, end string) ScheduleInput {
		return ScheduleInput{
			ClassID:      class,
			TeacherID:    teacher,
			DayOfWeek:    day,
			StartTime:    start,
			EndTime:      end,
			Subject:      "X",
			AcademicYear: "2024/2025",
		}
	}

	t.Run("kelas sama bentrok", func(t *testing.T) {
		ins := []ScheduleInput{
			mk(classA, nil, "senin", "07:00", "08:30"),
			mk(classA, nil, "senin", "08:00", "09:00"),
		}
		i, j, ok := BatchConflict(ins)
		if !ok || i != 0 || j != 1 {
			t.Errorf("got (%d,%d,%v)", i, j, ok)
		}
	})

	t.Run("guru sama beda kelas bentrok", func(t *testing.T) {
		ins := []ScheduleInput{
			mk(classA, &guru, "selasa", "07:00", "08:30"),
			mk(classB, &guru, "selasa", "08:00", "09:00"),
		}
		if _, _, ok := BatchConflict(ins); !ok {
			t.Error("guru double-booked harus terdeteksi")
		}
	})

	t.Run("hari beda tidak bentrok", func(t *testing.T) {
		ins := []ScheduleInput{
			mk(classA, &guru, "senin", "07:00", "08:30"),
			mk(classA, &guru, "selasa", "07:00", "08:30"),
		}
		if _, _, ok := BatchConflict(ins); ok {
			t.Error("hari berbeda tidak boleh bentrok")
		}
	})

	t.Run("slot berurutan tidak bentrok", func(t *testing.T) {
		ins := []ScheduleInput{
			mk(classA, &guru, "rabu", "07:00", "08:00"),
			mk(classA, &guru, "rabu", "08:00", "09:00"),
		}
		if _, _, ok := BatchConflict(ins); ok {
			t.Error("batas bersentuhan tidak boleh bentrok")
		}
	})

	t.Run("beda kelas beda guru aman", func(t *testing.T) {
		ins := []ScheduleInput{
			mk(classA, &guru, "kamis", "07:00", "08:30"),
			mk(classB, &guruLain, "kamis", "07:00", "08:30"),
		}
		if _, _, ok := BatchConflict(ins); ok {
			t.Error("tidak ada resource yang sama, tidak boleh bentrok")
		}
	})

	t.Run("tahun ajaran beda tidak bentrok", func(t *testing.T) {
		a := mk(classA, nil, "jumat", "07:00", "08:30")
		b := mk(classA, nil, "jumat", "07:00", "08:30")
		b.AcademicYear = "2025/2026"
		if _, _, ok := BatchConflict([]ScheduleInput{a, b}); ok {
			t.Error("tahun ajaran berbeda tidak boleh bentrok")
		}
	})
}

func TestApplyScheduleUpdate(t *testing.T) {
	guru := uuid.New()
	guruBaru := uuid.New()

	base := func() scheduleModel.ScheduleModel {
		return scheduleModel.ScheduleModel{
			ScheduleDayOfWeek:    "senin",
			ScheduleStartTime:    "07:00",
			ScheduleEndTime:      "08:30",
			ScheduleSubject:      "Matematika",
			ScheduleTeacherID:    &guru,
			ScheduleAcademicYear: "2024/2025",
			ScheduleIsActive:     true,
		}
	}

	t.Run("field nil dibiarkan", func(t *testing.T) {
		m := base()
		applyScheduleUpdate(&m, ScheduleUpdate{})
		if m.ScheduleSubject != "Matematika" || m.ScheduleTeacherID == nil || *m.ScheduleTeacherID != guru {
			t.Errorf("patch kosong mengubah record: %+v", m)
		}
	})

	t.Run("ganti guru", func(t *testing.T) {
		m := base()
		applyScheduleUpdate(&m, ScheduleUpdate{TeacherID: &guruBaru})
		if m.ScheduleTeacherID == nil || *m.ScheduleTeacherID != guruBaru {
			t.Errorf("teacher = %v, want %s", m.ScheduleTeacherID, guruBaru)
		}
	})

	t.Run("lepas guru jadi NULL", func(t *testing.T) {
		m := base()
		applyScheduleUpdate(&m, ScheduleUpdate{ClearTeacher: true})
		if m.ScheduleTeacherID != nil {
			t.Errorf("teacher harus nil, got %v", m.ScheduleTeacherID)
		}
	})

	t.Run("clear menang atas teacher_id", func(t *testing.T) {
		m := base()
		applyScheduleUpdate(&m, ScheduleUpdate{TeacherID: &guruBaru, ClearTeacher: true})
		if m.ScheduleTeacherID != nil {
			t.Errorf("teacher harus nil, got %v", m.ScheduleTeacherID)
		}
	})

	t.Run("patch jam parsial", func(t *testing.T) {
		m := base()
		end := "09:00"
		applyScheduleUpdate(&m, ScheduleUpdate{EndTime: &end})
		if m.ScheduleStartTime != "07:00" || m.ScheduleEndTime != "09:00" {
			t.Errorf("jam = %s-%s", m.ScheduleStartTime, m.ScheduleEndTime)
		}
	})
}
