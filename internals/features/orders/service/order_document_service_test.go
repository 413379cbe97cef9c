// file: internals/features/orders/service/order_document_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	model "tepian_backend/internals/features/orders/model"
	pengujianModel "tepian_backend/internals/features/pengujian/model"
	"tepian_backend/internals/helpers/storage"
	"tepian_backend/internals/helpers/testdb"
)

func pdfFile() UploadedFile {
	return UploadedFile{
		Mime: "application/pdf",
		Data: []byte("%PDF-1.4\nisi dokumen uji"),
	}
}

func newOrder(t *testing.T, db *gorm.DB, status string) *model.Order {
	t.Helper()
	o := &model.Order{
		OrderNumber:      "ORD-" + uuid.NewString(),
		OrderUserID:      uuid.New(),
		OrderPengujianID: uuid.New(),
		OrderTotalAmount: 250000,
		OrderStatus:      status,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func newStore(t *testing.T) storage.BlobStore {
	t.Helper()
	return storage.NewLocalStore(t.TempDir())
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "harus fiber.Error, dapat %v", err)
	return fe.Code
}

func TestUploadPenawaran_AutoInProgress(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)

	for _, from := range []string{
		model.OrderStatusPending, model.OrderStatusConfirmed,
		model.OrderStatusInProgress, model.OrderStatusCompleted,
	} {
		o := newOrder(t, db, from)
		got, err := UploadPenawaran(db, store, o.OrderID, pdfFile())
		require.NoError(t, err, "dari %s", from)
		assert.Equal(t, model.OrderStatusInProgress, got.OrderStatus)
		assert.NotNil(t, got.OrderPenawaranFile)
	}
}

func TestUploadPenawaran_CancelledStaysCancelled(t *testing.T) {
	db := testdb.Open(t)
	o := newOrder(t, db, model.OrderStatusCancelled)

	_, err := UploadPenawaran(db, newStore(t), o.OrderID, pdfFile())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestUploadPenawaran_RejectsNonPDF(t *testing.T) {
	db := testdb.Open(t)
	o := newOrder(t, db, model.OrderStatusPending)

	_, err := UploadPenawaran(db, newStore(t), o.OrderID, UploadedFile{
		Mime: "image/png",
		Data: []byte("bukan pdf"),
	})
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestPersetujuanFlow(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusPending)

	// upload penawaran dulu supaya order berjalan
	_, err := UploadPenawaran(db, store, o.OrderID, pdfFile())
	require.NoError(t, err)

	// user unggah surat → status persetujuan PENDING, tidak auto-approve
	got, err := UploadSuratPersetujuan(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)
	require.NotNil(t, got.OrderPersetujuanStatus)
	assert.Equal(t, model.PersetujuanStatusPending, *got.OrderPersetujuanStatus)
	assert.Equal(t, model.OrderStatusInProgress, got.OrderStatus)

	// approve sah karena order IN_PROGRESS
	got, err = ApprovePersetujuan(db, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.PersetujuanStatusApproved, *got.OrderPersetujuanStatus)
}

func TestApprovePersetujuan_RequiresInProgress(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusPending)

	_, err := UploadSuratPersetujuan(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)

	// order masih PENDING → conflict
	_, err = ApprovePersetujuan(db, o.OrderID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestRejectPersetujuan_ClearsFileAndKeepsReason(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusInProgress)

	_, err := UploadSuratPersetujuan(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)

	reason := "Dokumen tidak lengkap"
	got, err := RejectPersetujuan(db, store, o.OrderID, &reason)
	require.NoError(t, err)
	assert.Equal(t, model.PersetujuanStatusRejected, *got.OrderPersetujuanStatus)
	assert.Nil(t, got.OrderSuratPersetujuanFile, "file harus dikosongkan supaya diunggah ulang")
	assert.Equal(t, reason, *got.OrderPersetujuanRejectionReason)
}

func TestRejectPersetujuan_DefaultReason(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusInProgress)

	_, err := UploadSuratPersetujuan(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)

	got, err := RejectPersetujuan(db, store, o.OrderID, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRejectionReason, *got.OrderPersetujuanRejectionReason)
}

func TestUploadInvoice_RequiresApprovedPersetujuan(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusInProgress)

	_, err := UploadInvoice(db, store, o.OrderID, "INV-001", pdfFile())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestUploadInvoice_RequiresNumber(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusInProgress)

	_, err := UploadInvoice(db, store, o.OrderID, "", pdfFile())
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// order tidak berubah
	var check model.Order
	require.NoError(t, db.First(&check, "order_id = ?", o.OrderID).Error)
	assert.Nil(t, check.OrderInvoiceFile)
	assert.Equal(t, model.OrderStatusInProgress, check.OrderStatus)
}

func TestUploadInvoice_CompletesOrder(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusInProgress)

	_, err := UploadSuratPersetujuan(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)
	_, err = ApprovePersetujuan(db, o.OrderID)
	require.NoError(t, err)

	got, err := UploadInvoice(db, store, o.OrderID, "INV-001", pdfFile())
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, got.OrderStatus)
	assert.Equal(t, "INV-001", *got.OrderInvoiceNumber)
	assert.NotNil(t, got.OrderInvoiceFile)
}

func TestPaymentFlow(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusInProgress)

	// bukti bayar sebelum invoice → conflict
	_, err := UploadBuktiBayar(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	_, err = UploadSuratPersetujuan(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)
	_, err = ApprovePersetujuan(db, o.OrderID)
	require.NoError(t, err)
	_, err = UploadInvoice(db, store, o.OrderID, "INV-002", pdfFile())
	require.NoError(t, err)

	got, err := UploadBuktiBayar(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPendingVerification, *got.OrderPaymentStatus)

	got, err = VerifyPayment(db, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, *got.OrderPaymentStatus)
}

func TestRejectPayment_ClearsFile(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)
	o := newOrder(t, db, model.OrderStatusInProgress)

	_, err := UploadSuratPersetujuan(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)
	_, err = ApprovePersetujuan(db, o.OrderID)
	require.NoError(t, err)
	_, err = UploadInvoice(db, store, o.OrderID, "INV-003", pdfFile())
	require.NoError(t, err)
	_, err = UploadBuktiBayar(db, store, o.OrderID, o.OrderUserID, false, pdfFile())
	require.NoError(t, err)

	got, err := RejectPayment(db, store, o.OrderID, nil)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusRejected, *got.OrderPaymentStatus)
	assert.Nil(t, got.OrderBuktiBayarFile)
	assert.Equal(t, DefaultRejectionReason, *got.OrderPaymentRejectionReason)
}

func TestUploadSuratPersetujuan_OwnershipEnforced(t *testing.T) {
	db := testdb.Open(t)
	o := newOrder(t, db, model.OrderStatusInProgress)

	_, err := UploadSuratPersetujuan(db, newStore(t), o.OrderID, uuid.New(), false, pdfFile())
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestReviseOrder_BackToPending(t *testing.T) {
	db := testdb.Open(t)
	for _, from := range []string{model.OrderStatusCompleted, model.OrderStatusCancelled} {
		o := newOrder(t, db, from)
		got, err := ReviseOrder(db, o.OrderID, nil)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusPending, got.OrderStatus)
	}
}

func TestCancelOrder(t *testing.T) {
	db := testdb.Open(t)

	o := newOrder(t, db, model.OrderStatusPending)
	got, err := CancelOrder(db, o.OrderID, o.OrderUserID, false)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, got.OrderStatus)

	done := newOrder(t, db, model.OrderStatusCompleted)
	_, err = CancelOrder(db, done.OrderID, done.OrderUserID, false)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestReviseOrder_PersistsNote(t *testing.T) {
	db := testdb.Open(t)
	o := newOrder(t, db, model.OrderStatusCompleted)

	note := "  Perbaiki alamat penagihan  "
	got, err := ReviseOrder(db, o.OrderID, &note)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, got.OrderStatus)
	require.NotNil(t, got.OrderNotes)
	assert.Equal(t, "Perbaiki alamat penagihan", *got.OrderNotes)

	// revisi berikutnya tanpa catatan menimpa notes lama
	got, err = ReviseOrder(db, o.OrderID, nil)
	require.NoError(t, err)
	assert.Nil(t, got.OrderNotes)
}

func TestLifecycle_SyncsPengujianStatus(t *testing.T) {
	db := testdb.Open(t)
	store := newStore(t)

	o := newOrder(t, db, model.OrderStatusPending)
	p := pengujianModel.Pengujian{
		PengujianNomor:            "PGJ-20240101-009",
		PengujianUserID:           o.OrderUserID,
		PengujianJenisPengujianID: uuid.New(),
		PengujianOrderID:          &o.OrderID,
	}
	require.NoError(t, db.Create(&p).Error)

	_, err := UploadPenawaran(db, store, o.OrderID, pdfFile())
	require.NoError(t, err)

	var after pengujianModel.Pengujian
	require.NoError(t, db.First(&after, "pengujian_id = ?", p.PengujianID).Error)
	assert.Equal(t, model.OrderStatusInProgress, after.PengujianStatus,
		"status pengujian harus mengikuti status order induknya")

	_, err = ReviseOrder(db, o.OrderID, nil)
	require.NoError(t, err)
	require.NoError(t, db.First(&after, "pengujian_id = ?", p.PengujianID).Error)
	assert.Equal(t, model.OrderStatusPending, after.PengujianStatus)
}
