// file: internals/features/worksheets/routes/worksheet_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	worksheetController "tepian_backend/internals/features/worksheets/controller"
	"tepian_backend/internals/helpers/storage"
)

// WorksheetRoutes: akses user login (pemilik pengujian sumber).
func WorksheetRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	ctl := worksheetController.NewWorksheetController(db, store)

	ws := r.Group("/worksheets")
	{
		ws.Get("/pengujian/:pengujianId", ctl.GetByPengujian)
		ws.Get("/:id", ctl.GetByID)
		ws.Get("/:id/export", ctl.Export)
		ws.Patch("/:id", ctl.Update)
		ws.Patch("/items/:itemId", ctl.UpdateItem)
	}
}

// AdminWorksheetRoutes: submit, daftar, dan hapus (admin only).
func AdminWorksheetRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	ctl := worksheetController.NewWorksheetController(db, store)

	ws := r.Group("/worksheets")
	{
		ws.Get("/", ctl.List)
		ws.Post("/submit", ctl.Submit)
		ws.Delete("/:id", ctl.Delete)
	}
}
