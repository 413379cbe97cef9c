// file: internals/features/orders/service/order_document_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "tepian_backend/internals/features/orders/model"
	pengujianModel "tepian_backend/internals/features/pengujian/model"
	helper "tepian_backend/internals/helpers"
	"tepian_backend/internals/helpers/storage"
)

// DefaultRejectionReason dipakai ketika admin menolak dokumen tanpa
// menyertakan alasan.
const DefaultRejectionReason = "Dokumen tidak lengkap"

type UploadedFile struct {
	Mime string
	Data []byte
}

func findOrder(db *gorm.DB, orderID uuid.UUID) (*model.Order, error) {
	var o model.Order
	if err := db.First(&o, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return nil, err
	}
	return &o, nil
}

// SyncPengujianStatus menyamakan status semua pengujian yang menumpang
// order ini dengan status ordernya, supaya kedua sisi lifecycle tidak
// saling menyimpang.
func SyncPengujianStatus(db *gorm.DB, o *model.Order) error {
	return db.Model(&pengujianModel.Pengujian{}).
		Where("pengujian_order_id = ?", o.OrderID).
		Update("pengujian_status", o.OrderStatus).Error
}

// saveOrder menyimpan order lalu menyinkronkan status pengujiannya.
func saveOrder(db *gorm.DB, o *model.Order) error {
	if err := db.Save(o).Error; err != nil {
		return err
	}
	return SyncPengujianStatus(db, o)
}

// applyEvent menjalankan tabel transisi; event yang tidak diizinkan
// dari status sekarang dibiarkan no-op.
func applyEvent(o *model.Order, ev model.OrderEvent) {
	if next, ok := model.NextOrderStatus(o.OrderStatus, ev); ok {
		o.OrderStatus = next
	}
}

// storePDF memvalidasi lalu menyimpan dokumen PDF, sekaligus membuang
// file lama kalau ada.
func storePDF(store storage.BlobStore, oldURL *string, category string, orderID uuid.UUID, f UploadedFile) (string, error) {
	if err := helper.ValidatePDF(f.Mime, f.Data); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File harus berupa PDF")
	}
	key := storage.BuildKey(category, category, orderID.String(), "pdf")
	if err := store.Put(key, f.Data, "application/pdf"); err != nil {
		return "", err
	}
	deleteBlobByURL(store, oldURL)
	return store.URLFor(key), nil
}

func deleteBlobByURL(store storage.BlobStore, url *string) {
	if url == nil || *url == "" {
		return
	}
	ls, ok := store.(*storage.LocalStore)
	if !ok {
		return
	}
	if key := ls.KeyFromURL(*url); key != "" {
		if err := store.Delete(key); err != nil {
			log.Println("[WARN] Gagal menghapus file lama:", err)
		}
	}
}

/* =========================================================
   Penawaran (admin)
   ========================================================= */

func UploadPenawaran(db *gorm.DB, store storage.BlobStore, orderID uuid.UUID, f UploadedFile) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if o.OrderStatus == model.OrderStatusCancelled {
		return nil, fiber.NewError(fiber.StatusConflict, "Order sudah dibatalkan")
	}

	url, err := storePDF(store, o.OrderPenawaranFile, "penawaran", orderID, f)
	if err != nil {
		return nil, err
	}
	o.OrderPenawaranFile = &url
	applyEvent(o, model.EventUploadPenawaran)

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

/* =========================================================
   Surat persetujuan (user upload, admin approve/reject)
   ========================================================= */

func UploadSuratPersetujuan(db *gorm.DB, store storage.BlobStore, orderID, userID uuid.UUID, isAdmin bool, f UploadedFile) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.OrderUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Bukan pemilik order ini")
	}
	if o.OrderStatus == model.OrderStatusCancelled {
		return nil, fiber.NewError(fiber.StatusConflict, "Order sudah dibatalkan")
	}

	url, err := storePDF(store, o.OrderSuratPersetujuanFile, "persetujuan", orderID, f)
	if err != nil {
		return nil, err
	}
	status := model.PersetujuanStatusPending
	o.OrderSuratPersetujuanFile = &url
	o.OrderPersetujuanStatus = &status
	o.OrderPersetujuanRejectionReason = nil

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ApprovePersetujuan hanya sah ketika order sedang berjalan
// (IN_PROGRESS); surat yang disetujui sebelum penawaran naik tidak
// punya makna.
func ApprovePersetujuan(db *gorm.DB, orderID uuid.UUID) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if o.OrderSuratPersetujuanFile == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Surat persetujuan belum diunggah")
	}
	if o.OrderStatus != model.OrderStatusInProgress {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Persetujuan hanya bisa disetujui saat order berstatus IN_PROGRESS")
	}

	status := model.PersetujuanStatusApproved
	o.OrderPersetujuanStatus = &status
	o.OrderPersetujuanRejectionReason = nil

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

// RejectPersetujuan menolak surat: file dibuang supaya user mengunggah
// ulang, alasan disimpan apa adanya (default kalau kosong).
func RejectPersetujuan(db *gorm.DB, store storage.BlobStore, orderID uuid.UUID, reason *string) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if o.OrderSuratPersetujuanFile == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Surat persetujuan belum diunggah")
	}

	deleteBlobByURL(store, o.OrderSuratPersetujuanFile)

	status := model.PersetujuanStatusRejected
	r := DefaultRejectionReason
	if v := helper.NormalizeOptionalText(reason); v != nil {
		r = *v
	}
	o.OrderSuratPersetujuanFile = nil
	o.OrderPersetujuanStatus = &status
	o.OrderPersetujuanRejectionReason = &r

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

/* =========================================================
   Invoice (admin)
   ========================================================= */

// UploadInvoice menuntut surat persetujuan sudah APPROVED; nomor
// invoice wajib menyertai filenya.
func UploadInvoice(db *gorm.DB, store storage.BlobStore, orderID uuid.UUID, invoiceNumber string, f UploadedFile) (*model.Order, error) {
	if invoiceNumber == "" || len(f.Data) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File invoice dan nomor invoice wajib diisi")
	}

	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if o.OrderPersetujuanStatus == nil || *o.OrderPersetujuanStatus != model.PersetujuanStatusApproved {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Invoice hanya bisa diterbitkan setelah surat persetujuan disetujui")
	}

	url, err := storePDF(store, o.OrderInvoiceFile, "invoice", orderID, f)
	if err != nil {
		return nil, err
	}
	o.OrderInvoiceFile = &url
	o.OrderInvoiceNumber = &invoiceNumber
	applyEvent(o, model.EventUploadInvoice)

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

/* =========================================================
   Bukti bayar (user upload, admin verify/reject)
   ========================================================= */

func UploadBuktiBayar(db *gorm.DB, store storage.BlobStore, orderID, userID uuid.UUID, isAdmin bool, f UploadedFile) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.OrderUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Bukan pemilik order ini")
	}
	if o.OrderInvoiceFile == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Invoice belum diterbitkan")
	}

	url, err := storePDF(store, o.OrderBuktiBayarFile, "bukti-bayar", orderID, f)
	if err != nil {
		return nil, err
	}
	status := model.PaymentStatusPendingVerification
	o.OrderBuktiBayarFile = &url
	o.OrderPaymentStatus = &status
	o.OrderPaymentRejectionReason = nil

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

func VerifyPayment(db *gorm.DB, orderID uuid.UUID) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if o.OrderBuktiBayarFile == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Bukti bayar belum diunggah")
	}

	status := model.PaymentStatusPaid
	o.OrderPaymentStatus = &status
	o.OrderPaymentRejectionReason = nil

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

func RejectPayment(db *gorm.DB, store storage.BlobStore, orderID uuid.UUID, reason *string) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if o.OrderBuktiBayarFile == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Bukti bayar belum diunggah")
	}

	deleteBlobByURL(store, o.OrderBuktiBayarFile)

	status := model.PaymentStatusRejected
	r := DefaultRejectionReason
	if v := helper.NormalizeOptionalText(reason); v != nil {
		r = *v
	}
	o.OrderBuktiBayarFile = nil
	o.OrderPaymentStatus = &status
	o.OrderPaymentRejectionReason = &r

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

/* =========================================================
   Revise & Cancel
   ========================================================= */

// ReviseOrder mengembalikan order ke PENDING dari status apa pun,
// termasuk CANCELLED. Catatan revisi admin menimpa notes order.
func ReviseOrder(db *gorm.DB, orderID uuid.UUID, note *string) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	applyEvent(o, model.EventRevise)
	o.OrderNotes = helper.NormalizeOptionalText(note)
	o.OrderUpdatedAt = time.Now()

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}

func CancelOrder(db *gorm.DB, orderID, userID uuid.UUID, isAdmin bool) (*model.Order, error) {
	o, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.OrderUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Bukan pemilik order ini")
	}
	next, ok := model.NextOrderStatus(o.OrderStatus, model.EventCancel)
	if !ok {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Order berstatus "+o.OrderStatus+" tidak bisa dibatalkan")
	}
	o.OrderStatus = next

	if err := saveOrder(db, o); err != nil {
		return nil, err
	}
	return o, nil
}
