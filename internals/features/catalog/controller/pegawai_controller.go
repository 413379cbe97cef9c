// file: internals/features/catalog/controller/pegawai_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tepian_backend/internals/features/catalog/dto"
	model "tepian_backend/internals/features/catalog/model"
	helper "tepian_backend/internals/helpers"
)

type PegawaiController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPegawaiController(db *gorm.DB) *PegawaiController {
	return &PegawaiController{DB: db, Validator: validator.New()}
}

func (ctl *PegawaiController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Pegawai{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.ValidPegawaiStatus[status] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status pegawai tidak dikenal")
		}
		q = q.Where("pegawai_status = ?", status)
	}

	var list []model.Pegawai
	if err := q.Order("pegawai_nama ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}
	return helper.JsonList(c, "", list, nil)
}

func (ctl *PegawaiController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pegawai_id tidak valid")
	}

	var p model.Pegawai
	if err := ctl.DB.First(&p, "pegawai_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}
	return helper.JsonOK(c, "", p)
}

func (ctl *PegawaiController) Create(c *fiber.Ctx) error {
	var req dto.CreatePegawaiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	p, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pegawai")
	}
	return helper.JsonCreated(c, "Pegawai berhasil dibuat", p)
}

func (ctl *PegawaiController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pegawai_id tidak valid")
	}

	var p model.Pegawai
	if err := ctl.DB.First(&p, "pegawai_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}

	var req dto.PatchPegawaiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := req.ApplyTo(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pegawai")
	}
	return helper.JsonUpdated(c, "Pegawai berhasil diperbarui", p)
}

func (ctl *PegawaiController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pegawai_id tidak valid")
	}

	res := ctl.DB.Delete(&model.Pegawai{}, "pegawai_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pegawai")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pegawai berhasil dihapus", fiber.Map{"pegawai_id": id})
}
