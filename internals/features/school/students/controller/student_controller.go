// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "absenku_backend/internals/features/school/classes/model"
	"absenku_backend/internals/features/school/students/dto"
	studentModel "absenku_backend/internals/features/school/students/model"
	helper "absenku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

func (ctrl *StudentController) findByID(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id tidak valid")
	}
	var m studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

func (ctrl *StudentController) activeClass(c *fiber.Ctx, classID uuid.UUID) error {
	var cl classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_id = ? AND class_is_active = TRUE", classID).
		First(&cl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Kelas tujuan tidak ditemukan atau nonaktif")
		}
		return err
	}
	return nil
}

// POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if err := ctrl.activeClass(c, req.StudentClassID); err != nil {
		return helper.WritePGError(c, err)
	}

	m := studentModel.StudentModel{
		StudentUserID:      req.StudentUserID,
		StudentNISN:        strings.TrimSpace(req.StudentNISN),
		StudentFullName:    strings.TrimSpace(req.StudentFullName),
		StudentClassID:     req.StudentClassID,
		StudentEmail:       req.StudentEmail,
		StudentPhone:       req.StudentPhone,
		StudentAddress:     req.StudentAddress,
		StudentParentName:  req.StudentParentName,
		StudentParentPhone: req.StudentParentPhone,
		StudentIsActive:    true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NISN sudah terdaftar")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Siswa dibuat", m)
}

// GET /api/t/students?class_id=&active=&q=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{})
	if s := c.Query("class_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("student_class_id = ?", id)
	}
	if c.Query("active") != "" {
		q = q.Where("student_is_active = ?", c.QueryBool("active"))
	} else {
		q = q.Where("student_is_active = TRUE")
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("student_full_name ILIKE ? OR student_nisn ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	p := helper.ParseFiber(c, "full_name", "asc", helper.DefaultOpts)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []studentModel.StudentModel
	if err := q.Order("student_full_name ASC").
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	meta.Count = len(rows)
	return helper.JsonList(c, "Daftar siswa", rows, &meta)
}

// GET /api/t/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail siswa", m)
}

// GET /api/t/students/by-nisn/:nisn
func (ctrl *StudentController) GetByNISN(c *fiber.Ctx) error {
	nisn := strings.TrimSpace(c.Params("nisn"))
	var m studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_nisn = ?", nisn).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail siswa", m)
}

// PATCH /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if req.StudentNISN != nil {
		m.StudentNISN = strings.TrimSpace(*req.StudentNISN)
	}
	if req.StudentFullName != nil {
		m.StudentFullName = strings.TrimSpace(*req.StudentFullName)
	}
	if req.StudentEmail != nil {
		m.StudentEmail = req.StudentEmail
	}
	if req.StudentPhone != nil {
		m.StudentPhone = req.StudentPhone
	}
	if req.StudentAddress != nil {
		m.StudentAddress = req.StudentAddress
	}
	if req.StudentParentName != nil {
		m.StudentParentName = req.StudentParentName
	}
	if req.StudentParentPhone != nil {
		m.StudentParentPhone = req.StudentParentPhone
	}
	if req.StudentIsActive != nil {
		m.StudentIsActive = *req.StudentIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NISN sudah terdaftar")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Siswa diperbarui", m)
}

// PATCH /api/a/students/:id/transfer — pindah kelas
func (ctrl *StudentController) Transfer(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.StudentTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.StudentClassID == m.StudentClassID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Siswa sudah di kelas tersebut")
	}
	if err := ctrl.activeClass(c, req.StudentClassID); err != nil {
		return helper.WritePGError(c, err)
	}

	m.StudentClassID = req.StudentClassID
	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Siswa dipindah kelas", m)
}

// DELETE /api/a/students/:id — nonaktifkan (histori absensi tetap)
func (ctrl *StudentController) Deactivate(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	m.StudentIsActive = false
	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Siswa dinonaktifkan", m)
}
