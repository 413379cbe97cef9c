// file: internals/features/users/routes/user_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "tepian_backend/internals/features/users/controller"
	"tepian_backend/internals/helpers/storage"
	"tepian_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (register/login/refresh)
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuthController(db)
	auth := r.Group("/auth")
	{
		auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
		auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
		auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
		auth.Post("/refresh-token", ctl.RefreshToken)
	}
}

// UserRoutes: endpoint user yang butuh JWT
func UserRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	authCtl := userController.NewAuthController(db)
	userCtl := userController.NewUserController(db, store)

	r.Get("/me", authCtl.Me)
	r.Post("/logout", authCtl.Logout)
	r.Post("/change-password", authCtl.ChangePassword)
	r.Post("/avatar", userCtl.UploadAvatar)
}

// AdminUserRoutes: manajemen user (admin)
func AdminUserRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStore) {
	userCtl := userController.NewUserController(db, store)
	r.Get("/users", userCtl.List)
}
