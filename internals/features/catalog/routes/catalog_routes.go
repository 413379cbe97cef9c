// file: internals/features/catalog/routes/catalog_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogController "tepian_backend/internals/features/catalog/controller"
)

// AllCatalogRoutes: read-only katalog untuk semua user login
func AllCatalogRoutes(r fiber.Router, db *gorm.DB) {
	clusterCtl := catalogController.NewClusterController(db)
	jpCtl := catalogController.NewJenisPengujianController(db)
	paramCtl := catalogController.NewParameterController(db)
	alatCtl := catalogController.NewPeralatanController(db)
	pegawaiCtl := catalogController.NewPegawaiController(db)

	clusters := r.Group("/clusters")
	{
		clusters.Get("/", clusterCtl.List)
		clusters.Get("/:id", clusterCtl.GetByID)
	}

	jenis := r.Group("/jenis-pengujian")
	{
		jenis.Get("/", jpCtl.List)
		jenis.Get("/:id", jpCtl.GetByID)
	}

	params := r.Group("/parameters")
	{
		params.Get("/", paramCtl.List)
		params.Get("/:id", paramCtl.GetByID)
	}

	alat := r.Group("/peralatan")
	{
		alat.Get("/", alatCtl.List)
		alat.Get("/:id", alatCtl.GetByID)
	}

	pegawai := r.Group("/pegawai")
	{
		pegawai.Get("/", pegawaiCtl.List)
		pegawai.Get("/:id", pegawaiCtl.GetByID)
	}
}

// AdminCatalogRoutes: tulis katalog (admin only)
func AdminCatalogRoutes(r fiber.Router, db *gorm.DB) {
	clusterCtl := catalogController.NewClusterController(db)
	jpCtl := catalogController.NewJenisPengujianController(db)
	paramCtl := catalogController.NewParameterController(db)
	alatCtl := catalogController.NewPeralatanController(db)
	pegawaiCtl := catalogController.NewPegawaiController(db)

	clusters := r.Group("/clusters")
	{
		clusters.Post("/", clusterCtl.Create)
		clusters.Patch("/:id", clusterCtl.Patch)
		clusters.Delete("/:id", clusterCtl.Delete)
	}

	jenis := r.Group("/jenis-pengujian")
	{
		jenis.Post("/", jpCtl.Create)
		jenis.Patch("/:id", jpCtl.Patch)
		jenis.Delete("/:id", jpCtl.Delete)
	}

	params := r.Group("/parameters")
	{
		params.Post("/", paramCtl.Create)
		params.Patch("/:id", paramCtl.Patch)
		params.Delete("/:id", paramCtl.Delete)
	}

	alat := r.Group("/peralatan")
	{
		alat.Post("/", alatCtl.Create)
		alat.Patch("/:id", alatCtl.Patch)
		alat.Delete("/:id", alatCtl.Delete)
	}

	pegawai := r.Group("/pegawai")
	{
		pegawai.Post("/", pegawaiCtl.Create)
		pegawai.Patch("/:id", pegawaiCtl.Patch)
		pegawai.Delete("/:id", pegawaiCtl.Delete)
	}
}
