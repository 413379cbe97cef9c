// file: internals/features/catalog/controller/peralatan_controller.go
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

type PeralatanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPeralatanController(db *gorm.DB) *PeralatanController {
	return &PeralatanController{DB: db, Validator: validator.New()}
}

func (ctl *PeralatanController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Peralatan{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.ValidPeralatanStatus[status] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status peralatan tidak dikenal")
		}
		q = q.Where("peralatan_status = ?", status)
	}

	var list []model.Peralatan
	if err := q.Order("peralatan_name ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peralatan")
	}
	return helper.JsonList(c, "", list, nil)
}

func (ctl *PeralatanController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "peralatan_id tidak valid")
	}

	var p model.Peralatan
	if err := ctl.DB.First(&p, "peralatan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Peralatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peralatan")
	}
	return helper.JsonOK(c, "", p)
}

func (ctl *PeralatanController) Create(c *fiber.Ctx) error {
	var req dto.CreatePeralatanRequest
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat peralatan")
	}
	return helper.JsonCreated(c, "Peralatan berhasil dibuat", p)
}

func (ctl *PeralatanController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "peralatan_id tidak valid")
	}

	var p model.Peralatan
	if err := ctl.DB.First(&p, "peralatan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Peralatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peralatan")
	}

	var req dto.PatchPeralatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := req.ApplyTo(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan peralatan")
	}
	return helper.JsonUpdated(c, "Peralatan berhasil diperbarui", p)
}

func (ctl *PeralatanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "peralatan_id tidak valid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parameter_peralatan_peralatan_id = ?", id).
			Delete(&model.ParameterPeralatan{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Peralatan{}, "peralatan_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Peralatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus peralatan")
	}
	return helper.JsonDeleted(c, "Peralatan berhasil dihapus", fiber.Map{"peralatan_id": id})
}
