// file: internals/features/pengujian/routes/pengujian_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pengujianController "tepian_backend/internals/features/pengujian/controller"
	"tepian_backend/internals/helpers/storage"
)

// PengujianRoutes: pengajuan & daftar pengujian untuk user login
func PengujianRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	ctl := pengujianController.NewPengujianController(db, store)

	pengujian := r.Group("/pengujian")
	{
		pengujian.Post("/", ctl.Create)
		pengujian.Get("/", ctl.List)
		pengujian.Get("/:id", ctl.GetByID)
	}
}

// AdminPengujianRoutes: pengelolaan hasil & penghapusan (admin only)
func AdminPengujianRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	ctl := pengujianController.NewPengujianController(db, store)

	pengujian := r.Group("/pengujian")
	{
		pengujian.Patch("/items/:itemId/hasil", ctl.UpdateItemHasil)
		pengujian.Delete("/:id", ctl.Delete)
	}
}
