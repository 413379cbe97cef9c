// file: internals/features/catalog/controller/parameter_controller.go
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
	orderModel "tepian_backend/internals/features/orders/model"
	helper "tepian_backend/internals/helpers"
)

type ParameterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewParameterController(db *gorm.DB) *ParameterController {
	return &ParameterController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *ParameterController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Parameter{})
	if jpID := strings.TrimSpace(c.Query("jenis_pengujian_id")); jpID != "" {
		id, err := uuid.Parse(jpID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "jenis_pengujian_id tidak valid")
		}
		q = q.Where("parameter_jenis_pengujian_id = ?", id)
	}

	var params []model.Parameter
	if err := q.Preload("Peralatan.Peralatan").
		Order("parameter_name ASC").
		Find(&params).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data parameter")
	}
	return helper.JsonList(c, "", params, nil)
}

// ========== GetByID ==========
func (ctl *ParameterController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "parameter_id tidak valid")
	}

	var p model.Parameter
	if err := ctl.DB.Preload("JenisPengujian.Cluster").Preload("Peralatan.Peralatan").
		First(&p, "parameter_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parameter tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data parameter")
	}
	return helper.JsonOK(c, "", p)
}

// ========== Create ==========
func (ctl *ParameterController) Create(c *fiber.Ctx) error {
	var req dto.CreateParameterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var jp model.JenisPengujian
	if err := ctl.DB.First(&jp, "jenis_pengujian_id = ?", req.ParameterJenisPengujianID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis pengujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa jenis pengujian")
	}

	// validasi peralatan yang dirujuk
	for _, pp := range req.Peralatan {
		var alat model.Peralatan
		if err := ctl.DB.First(&alat, "peralatan_id = ?", pp.PeralatanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Peralatan "+pp.PeralatanID.String()+" tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa peralatan")
		}
	}

	p := req.ToModel()
	if err := ctl.DB.Create(p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat parameter")
	}
	return helper.JsonCreated(c, "Parameter berhasil dibuat", p)
}

// ========== Patch ==========
func (ctl *ParameterController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "parameter_id tidak valid")
	}

	var p model.Parameter
	if err := ctl.DB.First(&p, "parameter_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parameter tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data parameter")
	}

	var req dto.PatchParameterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if req.ParameterHarga.Set && req.ParameterHarga.Value != nil && *req.ParameterHarga.Value < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Harga parameter tidak boleh negatif")
	}
	req.ApplyTo(&p)

	if err := ctl.DB.Save(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan parameter")
	}
	return helper.JsonUpdated(c, "Parameter berhasil diperbarui", p)
}

// ========== Delete ==========
// Ditolak bila parameter sudah pernah dirujuk order item.
func (ctl *ParameterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "parameter_id tidak valid")
	}

	var used int64
	if err := ctl.DB.Model(&orderModel.OrderItem{}).
		Where("order_item_parameter_id = ?", id).
		Count(&used).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa pemakaian parameter")
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter sudah dipakai order, tidak bisa dihapus")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parameter_peralatan_parameter_id = ?", id).
			Delete(&model.ParameterPeralatan{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Parameter{}, "parameter_id = ?", id)
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
			return helper.JsonError(c, fiber.StatusNotFound, "Parameter tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus parameter")
	}
	return helper.JsonDeleted(c, "Parameter berhasil dihapus", fiber.Map{"parameter_id": id})
}
