// file: internals/features/orders/controller/order_controller_test.go
package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	model "tepian_backend/internals/features/orders/model"
	service "tepian_backend/internals/features/orders/service"
	"tepian_backend/internals/helpers/storage"
	"tepian_backend/internals/helpers/testdb"
)

func newOrderApp(t *testing.T) (*fiber.App, *gorm.DB, *OrderController) {
	t.Helper()
	db := testdb.Open(t)
	ctl := NewOrderController(db, storage.NewLocalStore(t.TempDir()))
	app := fiber.New()
	app.Post("/orders/:id/revise", ctl.Revise)
	app.Post("/orders/:id/persetujuan/reject", ctl.RejectPersetujuan)
	return app, db, ctl
}

func seedOrder(t *testing.T, db *gorm.DB, status string) *model.Order {
	t.Helper()
	o := &model.Order{
		OrderNumber:      "ORD-" + uuid.NewString(),
		OrderUserID:      uuid.New(),
		OrderPengujianID: uuid.New(),
		OrderStatus:      status,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func TestReviseHandler_PersistsNoteFromBody(t *testing.T) {
	app, db, _ := newOrderApp(t)
	o := seedOrder(t, db, model.OrderStatusCancelled)

	req := httptest.NewRequest("POST", "/orders/"+o.OrderID.String()+"/revise",
		strings.NewReader(`{"note":"Nominal invoice salah, mohon diulang"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var after model.Order
	require.NoError(t, db.First(&after, "order_id = ?", o.OrderID).Error)
	assert.Equal(t, model.OrderStatusPending, after.OrderStatus)
	require.NotNil(t, after.OrderNotes)
	assert.Equal(t, "Nominal invoice salah, mohon diulang", *after.OrderNotes)
}

func TestReviseHandler_EmptyBodyAllowed(t *testing.T) {
	app, db, _ := newOrderApp(t)
	o := seedOrder(t, db, model.OrderStatusCompleted)

	resp, err := app.Test(httptest.NewRequest("POST", "/orders/"+o.OrderID.String()+"/revise", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var after model.Order
	require.NoError(t, db.First(&after, "order_id = ?", o.OrderID).Error)
	assert.Equal(t, model.OrderStatusPending, after.OrderStatus)
	assert.Nil(t, after.OrderNotes)
}

// Body kosong pada reject dianggap tanpa alasan: jatuh ke teks default,
// sama seperti perilaku reject pembayaran.
func TestRejectPersetujuanHandler_EmptyBodyDefaultsReason(t *testing.T) {
	app, db, _ := newOrderApp(t)

	file := "/uploads/persetujuan/persetujuan-x-1.pdf"
	o := seedOrder(t, db, model.OrderStatusInProgress)
	require.NoError(t, db.Model(o).
		Update("order_surat_persetujuan_file", file).Error)

	resp, err := app.Test(httptest.NewRequest("POST", "/orders/"+o.OrderID.String()+"/persetujuan/reject", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var after model.Order
	require.NoError(t, db.First(&after, "order_id = ?", o.OrderID).Error)
	assert.Nil(t, after.OrderSuratPersetujuanFile)
	require.NotNil(t, after.OrderPersetujuanRejectionReason)
	assert.Equal(t, service.DefaultRejectionReason, *after.OrderPersetujuanRejectionReason)
}
