// file: internals/features/pengujian/controller/pengujian_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tepian_backend/internals/features/pengujian/dto"
	model "tepian_backend/internals/features/pengujian/model"
	service "tepian_backend/internals/features/pengujian/service"
	helper "tepian_backend/internals/helpers"
	"tepian_backend/internals/helpers/storage"
)

type PengujianController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Store     storage.BlobStore
}

func NewPengujianController(db *gorm.DB, store storage.BlobStore) *PengujianController {
	return &PengujianController{DB: db, Validator: validator.New(), Store: store}
}

// ========== Create (pengujian + order, satu transaksi) ==========
func (ctl *PengujianController) Create(c *fiber.Ctx) error {
	var req dto.CreatePengujianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	pengujian, order, err := service.CreatePengujian(ctl.DB, ctl.Store, service.CreatePengujianInput{
		RequesterID: userID,
		Role:        helper.GetRole(c),
		Req:         req,
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengajuan")
	}

	return helper.JsonCreated(c, "Pengajuan pengujian berhasil dibuat", dto.CreatePengujianResponse{
		Pengujian: pengujian,
		Order:     order,
	})
}

// ========== List ==========
// User biasa hanya melihat miliknya; admin melihat semua
// (opsional difilter ?user_id=).
func (ctl *PengujianController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.Model(&model.Pengujian{})
	if helper.IsAdmin(c) {
		if uid := c.Query("user_id"); uid != "" {
			id, err := uuid.Parse(uid)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
			}
			q = q.Where("pengujian_user_id = ?", id)
		}
	} else {
		q = q.Where("pengujian_user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("pengujian_status = ?", status)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Pengujian
	if err := q.Preload("Items.Parameter").
		Order("pengujian_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar pengujian", rows, &pg)
}

// ========== GetByID ==========
func (ctl *PengujianController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var row model.Pengujian
	if err := ctl.DB.Preload("Items.Parameter").
		First(&row, "pengujian_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !helper.IsAdmin(c) && row.PengujianUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pemilik pengajuan ini")
	}

	return helper.JsonOK(c, "Detail pengujian", row)
}

// ========== UpdateItemHasil (admin) ==========
func (ctl *PengujianController) UpdateItemHasil(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID item tidak valid")
	}

	var req dto.UpdatePengujianItemHasilRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var item model.PengujianItem
	if err := ctl.DB.First(&item, "pengujian_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Item pengujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.Hasil != nil {
		item.PengujianItemHasil = helper.NormalizeOptionalText(req.Hasil)
	}
	if req.Keterangan != nil {
		item.PengujianItemKeterangan = helper.NormalizeOptionalText(req.Keterangan)
	}
	if err := ctl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan hasil")
	}

	return helper.JsonUpdated(c, "Hasil item pengujian diperbarui", item)
}

// ========== Delete (admin) ==========
func (ctl *PengujianController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pengujian_item_pengujian_id = ?", id).
			Delete(&model.PengujianItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("pengujian_id = ?", id).Delete(&model.Pengujian{})
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
			return helper.JsonError(c, fiber.StatusNotFound, "Pengujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengujian")
	}

	return helper.JsonDeleted(c, "Pengujian berhasil dihapus", fiber.Map{"pengujian_id": id})
}
