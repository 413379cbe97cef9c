// file: internals/features/catalog/controller/cluster_controller.go
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
	helper "tepian_backend/internals/helpers"
)

type ClusterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClusterController(db *gorm.DB) *ClusterController {
	return &ClusterController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *ClusterController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Cluster{})
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		q = q.Where("cluster_is_active = ?", active == "true")
	}

	var clusters []model.Cluster
	if err := q.Preload("JenisPengujian").
		Order("cluster_name ASC").
		Find(&clusters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data cluster")
	}
	return helper.JsonList(c, "", clusters, nil)
}

// ========== GetByID ==========
func (ctl *ClusterController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cluster_id tidak valid")
	}

	var cluster model.Cluster
	if err := ctl.DB.Preload("JenisPengujian.Parameter").
		First(&cluster, "cluster_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cluster tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data cluster")
	}
	return helper.JsonOK(c, "", cluster)
}

// ========== Create ==========
func (ctl *ClusterController) Create(c *fiber.Ctx) error {
	var req dto.CreateClusterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cluster := req.ToModel()
	if err := ctl.DB.Create(cluster).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama cluster sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat cluster")
	}
	return helper.JsonCreated(c, "Cluster berhasil dibuat", cluster)
}

// ========== Patch ==========
func (ctl *ClusterController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cluster_id tidak valid")
	}

	var cluster model.Cluster
	if err := ctl.DB.First(&cluster, "cluster_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cluster tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data cluster")
	}

	var req dto.PatchClusterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.ApplyTo(&cluster)

	if err := ctl.DB.Save(&cluster).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama cluster sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan cluster")
	}
	return helper.JsonUpdated(c, "Cluster berhasil diperbarui", cluster)
}

// ========== Delete ==========
// Ditolak bila cluster masih punya jenis pengujian (guard referensial,
// bukan cascade).
func (ctl *ClusterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cluster_id tidak valid")
	}

	var count int64
	if err := ctl.DB.Model(&model.JenisPengujian{}).
		Where("jenis_pengujian_cluster_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi cluster")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cluster masih memiliki jenis pengujian, tidak bisa dihapus")
	}

	res := ctl.DB.Delete(&model.Cluster{}, "cluster_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus cluster")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cluster tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Cluster berhasil dihapus", fiber.Map{"cluster_id": id})
}
