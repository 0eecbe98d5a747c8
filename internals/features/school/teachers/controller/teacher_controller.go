// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/features/school/teachers/dto"
	teacherModel "absenku_backend/internals/features/school/teachers/model"
	helper "absenku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

func (ctrl *TeacherController) findByID(c *fiber.Ctx) (*teacherModel.TeacherModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id tidak valid")
	}
	var m teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("teacher_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

// POST /api/a/teachers
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.TeacherCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := teacherModel.TeacherModel{
		TeacherUserID:   req.TeacherUserID,
		TeacherNIP:      strings.TrimSpace(req.TeacherNIP),
		TeacherFullName: strings.TrimSpace(req.TeacherFullName),
		TeacherEmail:    req.TeacherEmail,
		TeacherPhone:    req.TeacherPhone,
		TeacherAddress:  req.TeacherAddress,
		TeacherIsActive: true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIP sudah terdaftar")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Guru dibuat", m)
}

// GET /api/t/teachers?active=&q=
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&teacherModel.TeacherModel{})
	if c.Query("active") != "" {
		q = q.Where("teacher_is_active = ?", c.QueryBool("active"))
	} else {
		q = q.Where("teacher_is_active = TRUE")
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("teacher_full_name ILIKE ? OR teacher_nip ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	p := helper.ParseFiber(c, "full_name", "asc", helper.DefaultOpts)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []teacherModel.TeacherModel
	if err := q.Order("teacher_full_name ASC").
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	meta.Count = len(rows)
	return helper.JsonList(c, "Daftar guru", rows, &meta)
}

// GET /api/t/teachers/:id
func (ctrl *TeacherController) GetByID(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail guru", m)
}

// GET /api/t/teachers/by-nip/:nip
func (ctrl *TeacherController) GetByNIP(c *fiber.Ctx) error {
	nip := strings.TrimSpace(c.Params("nip"))
	var m teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("teacher_nip = ?", nip).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail guru", m)
}

// PATCH /api/a/teachers/:id
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.TeacherUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if req.TeacherNIP != nil {
		m.TeacherNIP = strings.TrimSpace(*req.TeacherNIP)
	}
	if req.TeacherFullName != nil {
		m.TeacherFullName = strings.TrimSpace(*req.TeacherFullName)
	}
	if req.TeacherEmail != nil {
		m.TeacherEmail = req.TeacherEmail
	}
	if req.TeacherPhone != nil {
		m.TeacherPhone = req.TeacherPhone
	}
	if req.TeacherAddress != nil {
		m.TeacherAddress = req.TeacherAddress
	}
	if req.TeacherIsActive != nil {
		m.TeacherIsActive = *req.TeacherIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIP sudah terdaftar")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Guru diperbarui", m)
}

// DELETE /api/a/teachers/:id — nonaktifkan
func (ctrl *TeacherController) Deactivate(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	m.TeacherIsActive = false
	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Guru dinonaktifkan", m)
}

/* ===================== PENUGASAN KELAS ===================== */

// POST /api/a/teachers/:id/classes
func (ctrl *TeacherController) AssignClass(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.TeacherAssignClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	asg := teacherModel.TeacherClassModel{
		TeacherClassTeacherID:    m.TeacherID,
		TeacherClassClassID:      req.TeacherClassClassID,
		TeacherClassAcademicYear: strings.TrimSpace(req.TeacherClassAcademicYear),
		TeacherClassIsHomeroom:   req.TeacherClassIsHomeroom,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&asg).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Guru sudah ditugaskan ke kelas ini untuk tahun ajaran tersebut")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Penugasan kelas dibuat", asg)
}

// DELETE /api/a/teachers/:id/classes/:assignment_id
func (ctrl *TeacherController) UnassignClass(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	asgID, err := uuid.Parse(c.Params("assignment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "assignment_id tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("teacher_class_id = ? AND teacher_class_teacher_id = ?", asgID, m.TeacherID).
		Delete(&teacherModel.TeacherClassModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Penugasan kelas dihapus", fiber.Map{"teacher_class_id": asgID})
}

// GET /api/t/teachers/:id/classes
func (ctrl *TeacherController) Classes(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []teacherModel.TeacherClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("teacher_class_teacher_id = ?", m.TeacherID).
		Order("teacher_class_academic_year DESC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Penugasan kelas guru", rows)
}
