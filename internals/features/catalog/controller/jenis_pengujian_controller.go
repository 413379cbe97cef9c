// file: internals/features/catalog/controller/jenis_pengujian_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "tepian_backend/internals/features/catalog/dto"
	model "tepian_backend/internals/features/catalog/model"
	orderModel "tepian_backend/internals/features/orders/model"
	helper "tepian_backend/internals/helpers"
)

type JenisPengujianController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewJenisPengujianController(db *gorm.DB) *JenisPengujianController {
	return &JenisPengujianController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *JenisPengujianController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.JenisPengujian{})
	if clusterID := strings.TrimSpace(c.Query("cluster_id")); clusterID != "" {
		id, err := uuid.Parse(clusterID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "cluster_id tidak valid")
		}
		q = q.Where("jenis_pengujian_cluster_id = ?", id)
	}

	var list []model.JenisPengujian
	if err := q.Preload("Parameter").
		Order("jenis_pengujian_name ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jenis pengujian")
	}
	return helper.JsonList(c, "", list, nil)
}

// ========== GetByID ==========
func (ctl *JenisPengujianController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "jenis_pengujian_id tidak valid")
	}

	var jp model.JenisPengujian
	if err := ctl.DB.Preload("Cluster").Preload("Parameter.Peralatan.Peralatan").
		First(&jp, "jenis_pengujian_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis pengujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jenis pengujian")
	}
	return helper.JsonOK(c, "", jp)
}

// ========== Create ==========
func (ctl *JenisPengujianController) Create(c *fiber.Ctx) error {
	var req dto.CreateJenisPengujianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// FK harus resolve, biar errornya jelas (bukan error constraint)
	var cluster model.Cluster
	if err := ctl.DB.First(&cluster, "cluster_id = ?", req.JenisPengujianClusterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Cluster tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa cluster")
	}

	jp := req.ToModel()
	if err := ctl.DB.Create(jp).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama jenis pengujian sudah dipakai di cluster ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jenis pengujian")
	}
	return helper.JsonCreated(c, "Jenis pengujian berhasil dibuat", jp)
}

// ========== Patch ==========
func (ctl *JenisPengujianController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "jenis_pengujian_id tidak valid")
	}

	var jp model.JenisPengujian
	if err := ctl.DB.First(&jp, "jenis_pengujian_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis pengujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jenis pengujian")
	}

	var req dto.PatchJenisPengujianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.ApplyTo(&jp)

	if err := ctl.DB.Save(&jp).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama jenis pengujian sudah dipakai di cluster ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jenis pengujian")
	}
	return helper.JsonUpdated(c, "Jenis pengujian berhasil diperbarui", jp)
}

// ========== Delete ==========
// Ditolak bila salah satu parameternya sudah pernah dipakai order item.
func (ctl *JenisPengujianController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "jenis_pengujian_id tidak valid")
	}

	var used int64
	if err := ctl.DB.Model(&orderModel.OrderItem{}).
		Where("order_item_parameter_id IN (?)",
			ctl.DB.Model(&model.Parameter{}).
				Select("parameter_id").
				Where("parameter_jenis_pengujian_id = ?", id),
		).
		Count(&used).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa pemakaian parameter")
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis pengujian sudah dipakai order, tidak bisa dihapus")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parameter_jenis_pengujian_id = ?", id).
			Delete(&model.Parameter{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.JenisPengujian{}, "jenis_pengujian_id = ?", id)
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
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis pengujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jenis pengujian")
	}
	return helper.JsonDeleted(c, "Jenis pengujian berhasil dihapus", fiber.Map{"jenis_pengujian_id": id})
}
