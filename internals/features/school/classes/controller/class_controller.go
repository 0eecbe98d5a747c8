// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "absenku_backend/internals/features/school/classes/model"
	"absenku_backend/internals/features/school/classes/dto"
	studentModel "absenku_backend/internals/features/school/students/model"
	helper "absenku_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

func (ctrl *ClassController) findByID(c *fiber.Ctx) (*classModel.ClassModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id tidak valid")
	}
	var m classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

// POST /api/a/classes
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := classModel.ClassModel{
		ClassName:         strings.TrimSpace(req.ClassName),
		ClassGrade:        strings.TrimSpace(req.ClassGrade),
		ClassAcademicYear: strings.TrimSpace(req.ClassAcademicYear),
		ClassIsActive:     true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kelas dengan nama & tahun ajaran ini sudah ada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Kelas dibuat", m)
}

// GET /api/u/classes?grade=&academic_year=&active=
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&classModel.ClassModel{})
	if g := c.Query("grade"); g != "" {
		q = q.Where("class_grade = ?", g)
	}
	if y := c.Query("academic_year"); y != "" {
		q = q.Where("class_academic_year = ?", y)
	}
	if c.Query("active") != "" {
		q = q.Where("class_is_active = ?", c.QueryBool("active"))
	} else {
		q = q.Where("class_is_active = TRUE")
	}

	var rows []classModel.ClassModel
	if err := q.Order("class_academic_year DESC, class_name ASC").Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Daftar kelas", rows)
}

// GET /api/u/classes/:id
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail kelas", m)
}

// GET /api/t/classes/:id/students — roster siswa aktif
func (ctrl *ClassController) Students(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_class_id = ? AND student_is_active = TRUE", m.ClassID).
		Order("student_full_name ASC").
		Find(&students).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Siswa kelas", fiber.Map{
		"class":    m,
		"students": students,
	})
}

// PATCH /api/a/classes/:id
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.ClassUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if req.ClassName != nil {
		m.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if req.ClassGrade != nil {
		m.ClassGrade = strings.TrimSpace(*req.ClassGrade)
	}
	if req.ClassAcademicYear != nil {
		m.ClassAcademicYear = strings.TrimSpace(*req.ClassAcademicYear)
	}
	if req.ClassIsActive != nil {
		m.ClassIsActive = *req.ClassIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kelas dengan nama & tahun ajaran ini sudah ada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Kelas diperbarui", m)
}

// DELETE /api/a/classes/:id — nonaktifkan (histori absensi tetap)
func (ctrl *ClassController) Deactivate(c *fiber.Ctx) error {
	m, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	m.ClassIsActive = false
	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Kelas dinonaktifkan", m)
}
