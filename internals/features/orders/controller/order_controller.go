// file: internals/features/orders/controller/order_controller.go
package controller

import (
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tepian_backend/internals/features/orders/dto"
	model "tepian_backend/internals/features/orders/model"
	service "tepian_backend/internals/features/orders/service"
	userModel "tepian_backend/internals/features/users/model"
	helper "tepian_backend/internals/helpers"
	"tepian_backend/internals/helpers/storage"
)

type OrderController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Store     storage.BlobStore
}

func NewOrderController(db *gorm.DB, store storage.BlobStore) *OrderController {
	return &OrderController{DB: db, Validator: validator.New(), Store: store}
}

// readFormFile membaca field multipart bernama name menjadi UploadedFile.
func readFormFile(c *fiber.Ctx, name string) (service.UploadedFile, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return service.UploadedFile{}, fiber.NewError(fiber.StatusBadRequest, "File '"+name+"' wajib diunggah")
	}
	f, err := fh.Open()
	if err != nil {
		return service.UploadedFile{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return service.UploadedFile{}, err
	}
	return service.UploadedFile{
		Mime: fh.Header.Get("Content-Type"),
		Data: data,
	}, nil
}

func jsonFromService(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

func parseOrderID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID order tidak valid")
	}
	return id, nil
}

// ========== List ==========
func (ctl *OrderController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.Model(&model.Order{})
	if helper.IsAdmin(c) {
		if uid := c.Query("user_id"); uid != "" {
			id, err := uuid.Parse(uid)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
			}
			q = q.Where("order_user_id = ?", id)
		}
	} else {
		q = q.Where("order_user_id = ?", userID)
	}
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		if !model.ValidOrderStatus[status] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status order tidak valid")
		}
		q = q.Where("order_status = ?", status)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Order
	if err := q.Preload("Items.Parameter").
		Order("order_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar order", rows, &pg)
}

// ========== GetByID ==========
func (ctl *OrderController) GetByID(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var row model.Order
	if err := ctl.DB.Preload("Items.Parameter").
		First(&row, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !helper.IsAdmin(c) && row.OrderUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pemilik order ini")
	}

	return helper.JsonOK(c, "Detail order", row)
}

// ========== Patch (admin) ==========
// Status lewat endpoint ini adalah override eksplisit: tidak melewati
// tabel transisi, termasuk boleh keluar dari CANCELLED.
func (ctl *OrderController) Patch(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}

	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var row model.Order
	if err := ctl.DB.First(&row, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := req.ApplyTo(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	if err := service.SyncPengujianStatus(ctl.DB, &row); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyinkronkan status pengujian")
	}

	return helper.JsonUpdated(c, "Order diperbarui", row)
}

// ========== Delete (admin) ==========
func (ctl *OrderController) Delete(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_item_order_id = ?", id).
			Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("order_id = ?", id).Delete(&model.Order{})
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
			return helper.JsonError(c, fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus order")
	}

	return helper.JsonDeleted(c, "Order berhasil dihapus", fiber.Map{"order_id": id})
}

// ========== Lifecycle ==========

func (ctl *OrderController) Revise(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	var req dto.ReviseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		// body kosong diperbolehkan; notes dikosongkan
		req.Note = nil
	}
	row, err := service.ReviseOrder(ctl.DB, id, req.Note)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Order dikembalikan ke PENDING untuk revisi", row)
}

func (ctl *OrderController) Cancel(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	row, err := service.CancelOrder(ctl.DB, id, userID, helper.IsAdmin(c))
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Order dibatalkan", row)
}

// ========== Dokumen ==========

func (ctl *OrderController) UploadPenawaran(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	f, err := readFormFile(c, "file")
	if err != nil {
		return jsonFromService(c, err)
	}
	row, err := service.UploadPenawaran(ctl.DB, ctl.Store, id, f)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Surat penawaran diunggah", row)
}

func (ctl *OrderController) UploadSuratPersetujuan(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	f, err := readFormFile(c, "file")
	if err != nil {
		return jsonFromService(c, err)
	}
	row, err := service.UploadSuratPersetujuan(ctl.DB, ctl.Store, id, userID, helper.IsAdmin(c), f)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Surat persetujuan diunggah", row)
}

func (ctl *OrderController) ApprovePersetujuan(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	row, err := service.ApprovePersetujuan(ctl.DB, id)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Surat persetujuan disetujui", row)
}

func (ctl *OrderController) RejectPersetujuan(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	var req dto.RejectPersetujuanRequest
	if err := c.BodyParser(&req); err != nil {
		// body kosong diperbolehkan; alasan jatuh ke default
		req.Reason = nil
	}
	row, err := service.RejectPersetujuan(ctl.DB, ctl.Store, id, req.Reason)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Surat persetujuan ditolak", row)
}

func (ctl *OrderController) UploadInvoice(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	invoiceNumber := strings.TrimSpace(c.FormValue("invoice_number"))
	f, err := readFormFile(c, "file")
	if err != nil {
		return jsonFromService(c, err)
	}
	row, err := service.UploadInvoice(ctl.DB, ctl.Store, id, invoiceNumber, f)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Invoice diterbitkan", row)
}

func (ctl *OrderController) UploadBuktiBayar(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	f, err := readFormFile(c, "file")
	if err != nil {
		return jsonFromService(c, err)
	}
	row, err := service.UploadBuktiBayar(ctl.DB, ctl.Store, id, userID, helper.IsAdmin(c), f)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Bukti bayar diunggah", row)
}

func (ctl *OrderController) VerifyPayment(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	row, err := service.VerifyPayment(ctl.DB, id)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Pembayaran terverifikasi", row)
}

func (ctl *OrderController) RejectPayment(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	var req dto.RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		req.Reason = nil
	}
	row, err := service.RejectPayment(ctl.DB, ctl.Store, id, req.Reason)
	if err != nil {
		return jsonFromService(c, err)
	}
	return helper.JsonUpdated(c, "Pembayaran ditolak", row)
}

// ========== Pembayaran online (Midtrans Snap) ==========

func (ctl *OrderController) Pay(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return jsonFromService(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var row model.Order
	if err := ctl.DB.First(&row, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !helper.IsAdmin(c) && row.OrderUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pemilik order ini")
	}
	if row.OrderInvoiceFile == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Invoice belum diterbitkan")
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", row.OrderUserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	token, redirectURL, err := service.GenerateSnapToken(&row, user.UserName, user.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	return helper.JsonOK(c, "Transaksi pembayaran dibuat", fiber.Map{
		"token":        token,
		"redirect_url": redirectURL,
	})
}

// Notification menerima webhook Midtrans (tanpa auth).
func (ctl *OrderController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := service.HandlePaymentWebhook(ctl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "Notifikasi diproses", nil)
}
