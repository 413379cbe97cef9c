// file: internals/features/orders/routes/order_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "tepian_backend/internals/features/orders/controller"
	"tepian_backend/internals/helpers/storage"
)

// OrderWebhookRoutes: endpoint publik untuk notifikasi Midtrans.
func OrderWebhookRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	ctl := orderController.NewOrderController(db, store)
	r.Post("/orders/notification", ctl.Notification)
}

// OrderRoutes: akses user login (pemilik order).
func OrderRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	ctl := orderController.NewOrderController(db, store)

	orders := r.Group("/orders")
	{
		orders.Get("/", ctl.List)
		orders.Get("/:id", ctl.GetByID)
		orders.Post("/:id/cancel", ctl.Cancel)
		orders.Post("/:id/surat-persetujuan", ctl.UploadSuratPersetujuan)
		orders.Post("/:id/bukti-bayar", ctl.UploadBuktiBayar)
		orders.Post("/:id/pay", ctl.Pay)
	}
}

// AdminOrderRoutes: pengelolaan penuh lifecycle order (admin only).
func AdminOrderRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	ctl := orderController.NewOrderController(db, store)

	orders := r.Group("/orders")
	{
		orders.Get("/", ctl.List)
		orders.Get("/:id", ctl.GetByID)
		orders.Patch("/:id", ctl.Patch)
		orders.Delete("/:id", ctl.Delete)

		orders.Post("/:id/revise", ctl.Revise)
		orders.Post("/:id/penawaran", ctl.UploadPenawaran)
		orders.Post("/:id/persetujuan/approve", ctl.ApprovePersetujuan)
		orders.Post("/:id/persetujuan/reject", ctl.RejectPersetujuan)
		orders.Post("/:id/invoice", ctl.UploadInvoice)
		orders.Post("/:id/payment/verify", ctl.VerifyPayment)
		orders.Post("/:id/payment/reject", ctl.RejectPayment)
	}
}
