// file: internals/features/worksheets/controller/worksheet_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tepian_backend/internals/features/worksheets/dto"
	model "tepian_backend/internals/features/worksheets/model"
	service "tepian_backend/internals/features/worksheets/service"
	helper "tepian_backend/internals/helpers"
	"tepian_backend/internals/helpers/storage"
)

type WorksheetController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Store     storage.BlobStore
}

func NewWorksheetController(db *gorm.DB, store storage.BlobStore) *WorksheetController {
	return &WorksheetController{DB: db, Validator: validator.New(), Store: store}
}

func jsonFromService(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// ========== GetByPengujian (find-or-create) ==========
func (ctl *WorksheetController) GetByPengujian(c *fiber.Ctx) error {
	pengujianID, err := uuid.Parse(c.Params("pengujianId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengujian tidak valid")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	ws, err := service.FindOrCreate(ctl.DB, pengujianID, userID, helper.IsAdmin(c))
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonOK(c, "Worksheet", ws)
}

// ========== Submit (admin) ==========
func (ctl *WorksheetController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitWorksheetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ws, err := service.Submit(ctl.DB, req)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Worksheet disimpan", ws)
}

// ========== GetByID ==========
func (ctl *WorksheetController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var ws model.Worksheet
	if err := ctl.DB.
		Preload("Items.Parameter.JenisPengujian.Cluster").
		Preload("PegawaiUtama").
		Preload("PegawaiPendamping").
		First(&ws, "worksheet_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Worksheet tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if err := service.Authorize(ctl.DB, &ws, userID, helper.IsAdmin(c)); err != nil {
		return jsonFromService(c, err)
	}

	return helper.JsonOK(c, "Detail worksheet", ws)
}

// ========== List (admin) ==========
func (ctl *WorksheetController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Worksheet{})
	if status := c.Query("status"); status != "" {
		if !model.ValidWorksheetStatus[status] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status worksheet tidak valid")
		}
		q = q.Where("worksheet_status = ?", status)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Worksheet
	if err := q.Order("worksheet_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar worksheet", rows, &pg)
}

// ========== Update ==========
func (ctl *WorksheetController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateWorksheetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	ws, err := service.Update(ctl.DB, id, req, userID, helper.IsAdmin(c))
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Worksheet diperbarui", ws)
}

// ========== UpdateItem ==========
func (ctl *WorksheetController) UpdateItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID item tidak valid")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateWorksheetItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	item, err := service.UpdateItem(ctl.DB, itemID, req, userID, helper.IsAdmin(c))
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Item worksheet diperbarui", item)
}

// ========== Delete (admin) ==========
func (ctl *WorksheetController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := service.Delete(ctl.DB, id); err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonDeleted(c, "Worksheet berhasil dihapus", fiber.Map{"worksheet_id": id})
}

// ========== Export xlsx ==========
func (ctl *WorksheetController) Export(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	f, filename, err := service.Export(ctl.DB, ctl.Store, id, userID, helper.IsAdmin(c))
	if err != nil {
		return jsonFromService(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return f.Write(c.Response().BodyWriter())
}
