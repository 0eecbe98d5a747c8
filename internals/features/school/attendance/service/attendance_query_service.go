// file: internals/features/school/attendance/service/attendance_query_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "absenku_backend/internals/features/school/attendance/model"
	scheduleModel "absenku_backend/internals/features/school/schedules/model"
	studentModel "absenku_backend/internals/features/school/students/model"
	helper "absenku_backend/internals/helpers"
)

/* =========================
   Listing
   ========================= */

type ListFilter struct {
	StudentID *uuid.UUID
	ClassID   *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *AttendanceService) filtered(ctx context.Context, f ListFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&attModel.AttendanceModel{})
	if f.StudentID != nil {
		q = q.Where("attendance_student_id = ?", *f.StudentID)
	}
	if f.ClassID != nil {
		q = q.Where("attendance_class_id = ?", *f.ClassID)
	}
	if f.StartDate != nil {
		q = q.Where("attendance_date >= ?", helper.DateOnly(*f.StartDate))
	}
	if f.EndDate != nil {
		q = q.Where("attendance_date <= ?", helper.DateOnly(*f.EndDate))
	}
	return q
}

// List mengembalikan record urut tanggal ASC lalu student_id ASC
// (urutan deterministik untuk pagination).
func (s *AttendanceService) List(ctx context.Context, f ListFilter, p helper.Params) ([]attModel.AttendanceModel, int64, error) {
	q := s.filtered(ctx, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []attModel.AttendanceModel
	if err := q.
		Order("attendance_date ASC, attendance_student_id ASC").
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// TodayEntry: satu siswa + record absensinya hari ini (nil kalau belum ada).
type TodayEntry struct {
	Student    studentModel.StudentModel  `json:"student"`
	Attendance *attModel.AttendanceModel  `json:"attendance,omitempty"`
}

// TodayByClass: seluruh siswa aktif kelas + status absensi hari ini
// ("hari ini" menurut timezone sekolah).
func (s *AttendanceService) TodayByClass(ctx context.Context, classID uuid.UUID) ([]TodayEntry, error) {
	today := helper.SchoolToday()

	var students []studentModel.StudentModel
	if err := s.DB.WithContext(ctx).
		Where("student_class_id = ? AND student_is_active = TRUE", classID).
		Order("student_full_name ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	var recs []attModel.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_class_id = ? AND attendance_date = ?", classID, today).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	byStudent := make(map[uuid.UUID]*attModel.AttendanceModel, len(recs))
	for i := range recs {
		byStudent[recs[i].AttendanceStudentID] = &recs[i]
	}

	out := make([]TodayEntry, 0, len(students))
	for _, st := range students {
		out = append(out, TodayEntry{Student: st, Attendance: byStudent[st.StudentID]})
	}
	return out, nil
}

/* =========================
   Stats
   ========================= */

type Stats struct {
	TotalDays      int64   `json:"total_days"`
	PresentDays    int64   `json:"present_days"`
	AbsentDays     int64   `json:"absent_days"`
	LeaveDays      int64   `json:"leave_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// Stats menghitung agregat absensi. Rate memakai denominator
// siswa × hari sekolah: tanggal yang day-of-week-nya punya jadwal aktif.
// Siswa tanpa record di hari sekolah tetap dihitung di denominator
// (absennya record ≠ status tidak_hadir).
func (s *AttendanceService) Stats(ctx context.Context, classID *uuid.UUID, start, end *time.Time) (*Stats, error) {
	f := ListFilter{ClassID: classID, StartDate: start, EndDate: end}

	// Hitung per status
	type statusRow struct {
		Status attModel.AttendanceStatus
		N      int64
	}
	var rows []statusRow
	if err := s.filtered(ctx, f).
		Select("attendance_status AS status, COUNT(*) AS n").
		Group("attendance_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[attModel.AttendanceStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}

	var totalDays int64
	if err := s.filtered(ctx, f).
		Distinct("attendance_date").
		Count(&totalDays).Error; err != nil {
		return nil, err
	}

	// Rentang efektif: pakai min/max tanggal record kalau tidak diberikan
	rangeStart, rangeEnd := start, end
	if rangeStart == nil || rangeEnd == nil {
		type bounds struct {
			MinDate *time.Time
			MaxDate *time.Time
		}
		var b bounds
		if err := s.filtered(ctx, f).
			Select("MIN(attendance_date) AS min_date, MAX(attendance_date) AS max_date").
			Scan(&b).Error; err != nil {
			return nil, err
		}
		if rangeStart == nil {
			rangeStart = b.MinDate
		}
		if rangeEnd == nil {
			rangeEnd = b.MaxDate
		}
	}

	// Hari ber-jadwal aktif (sumber "hari sekolah")
	dayQ := s.DB.WithContext(ctx).Model(&scheduleModel.ScheduleModel{}).
		Where("schedule_is_active = TRUE")
	if classID != nil {
		dayQ = dayQ.Where("schedule_class_id = ?", *classID)
	}
	var activeDayNames []string
	if err := dayQ.Distinct().Pluck("schedule_day_of_week", &activeDayNames).Error; err != nil {
		return nil, err
	}

	// Jumlah siswa untuk denominator
	stQ := s.DB.WithContext(ctx).Model(&studentModel.StudentModel{}).
		Where("student_is_active = TRUE")
	if classID != nil {
		stQ = stQ.Where("student_class_id = ?", *classID)
	}
	var studentCount int64
	if err := stQ.Count(&studentCount).Error; err != nil {
		return nil, err
	}

	schoolDays := 0
	if rangeStart != nil && rangeEnd != nil {
		schoolDays = CountSchoolDays(*rangeStart, *rangeEnd, activeDayNames)
	}

	out := ComputeStats(counts, totalDays, studentCount, schoolDays)
	return &out, nil
}

// CountSchoolDays: jumlah tanggal di [start, end] yang day-of-week-nya
// termasuk daftar hari ber-jadwal aktif. Minggu tidak pernah dihitung.
func CountSchoolDays(start, end time.Time, activeDayNames []string) int {
	active := make(map[string]bool, len(activeDayNames))
	for _, d := range activeDayNames {
		active[d] = true
	}
	dates, err := helper.DatesInRange(start, end)
	if err != nil {
		return 0
	}
	n := 0
	for _, d := range dates {
		if name, ok := helper.DayName(d); ok && active[name] {
			n++
		}
	}
	return n
}

// ComputeStats: murni dari agregat.
//   absent = tidak_hadir + alpa; leave = izin + sakit;
//   rate = hadir / (siswa × hari sekolah), dibatasi [0, 1].
func ComputeStats(counts map[attModel.AttendanceStatus]int64, totalDays, studentCount int64, schoolDays int) Stats {
	present := counts[attModel.AttendanceHadir]
	absent := counts[attModel.AttendanceTidakHadir] + counts[attModel.AttendanceAlpa]
	leave := counts[attModel.AttendanceIzin] + counts[attModel.AttendanceSakit]

	rate := 0.0
	if denom := studentCount * int64(schoolDays); denom > 0 {
		rate = float64(present) / float64(denom)
		if rate > 1 {
			rate = 1
		}
	}
	return Stats{
		TotalDays:      totalDays,
		PresentDays:    present,
		AbsentDays:     absent,
		LeaveDays:      leave,
		AttendanceRate: rate,
	}
}
