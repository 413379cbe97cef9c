// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogRoutes "tepian_backend/internals/features/catalog/routes"
	orderRoutes "tepian_backend/internals/features/orders/routes"
	pengujianRoutes "tepian_backend/internals/features/pengujian/routes"
	userRoutes "tepian_backend/internals/features/users/routes"
	worksheetRoutes "tepian_backend/internals/features/worksheets/routes"
	"tepian_backend/internals/constants"
	authMiddleware "tepian_backend/internals/middlewares/auth"
	helper "tepian_backend/internals/helpers"
	"tepian_backend/internals/helpers/storage"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.BlobStore) {
	startTime = time.Now()

	// ===================== HEALTH =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "OK", fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoutes.AuthRoutes(api, db)

	log.Println("[INFO] Setting up webhook Midtrans...")
	orderRoutes.OrderWebhookRoutes(api, db, store)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := api.Group("/u", authMiddleware.AuthMiddleware(db))

	userRoutes.UserRoutes(private, db, store)
	catalogRoutes.AllCatalogRoutes(private, db)
	pengujianRoutes.PengujianRoutes(private, db, store)
	orderRoutes.OrderRoutes(private, db, store)
	worksheetRoutes.WorksheetRoutes(private, db, store)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola data TEPIAN K3"), constants.RoleAdmin),
	)

	userRoutes.AdminUserRoutes(admin, db, store)
	catalogRoutes.AdminCatalogRoutes(admin, db)
	pengujianRoutes.AdminPengujianRoutes(admin, db, store)
	orderRoutes.AdminOrderRoutes(admin, db, store)
	worksheetRoutes.AdminWorksheetRoutes(admin, db, store)
}
