package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tepian_backend/internals/configs"
	"tepian_backend/internals/constants"
	dto "tepian_backend/internals/features/users/dto"
	model "tepian_backend/internals/features/users/model"
	helper "tepian_backend/internals/helpers"
)

/* ==========================
   Register & Login
========================== */

func Register(db *gorm.DB, c *fiber.Ctx, req dto.RegisterRequest) error {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	user := model.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     constants.RoleUser,
	}
	user.SetDefaultValues()

	if err := db.Create(&user).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal membuat user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", dto.FromModelUser(&user))
}

func Login(db *gorm.DB, c *fiber.Ctx, req dto.LoginRequest) error {
	var user model.UserModel
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if !CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueTokens(db, c, &user)
}

// LoginGoogle memverifikasi Google ID token; user baru dibuat otomatis
// dengan role "user".
func LoginGoogle(db *gorm.DB, c *fiber.Ctx, req dto.LoginGoogleRequest) error {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}

	var user model.UserModel
	err = db.Where("email = ?", strings.ToLower(claimSet.Email)).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := claimSet.Sub
		user = model.UserModel{
			UserName: claimSet.Name,
			Email:    strings.ToLower(claimSet.Email),
			Password: "-", // login google tidak pakai password lokal
			GoogleID: &sub,
			Role:     constants.RoleUser,
		}
		if user.UserName == "" {
			user.UserName = strings.Split(user.Email, "@")[0]
		}
		if err := db.Create(&user).Error; err != nil {
			log.Println("[ERROR] Gagal membuat user google:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	return issueTokens(db, c, &user)
}

func issueTokens(db *gorm.DB, c *fiber.Ctx, user *model.UserModel) error {
	access, err := GenerateAccessToken(user)
	if err != nil {
		log.Println("[ERROR] Gagal generate access token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, exp, err := GenerateRefreshToken(user.ID)
	if err != nil {
		log.Println("[ERROR] Gagal generate refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// satu refresh token aktif per user
	if err := db.Where("user_id = ?", user.ID).Delete(&model.RefreshToken{}).Error; err != nil {
		log.Println("[WARN] Gagal hapus refresh token lama:", err)
	}
	if err := db.Create(&model.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiredAt: exp,
	}).Error; err != nil {
		log.Println("[ERROR] Gagal simpan refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.FromModelUser(user),
	})
}

/* ==========================
   Logout / Refresh / Change password
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	entry := model.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(accessTTLDefault),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Gagal blacklist token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	if userID, err := helper.GetUserID(c); err == nil {
		_ = db.Where("user_id = ?", userID).Delete(&model.RefreshToken{}).Error
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

func RefreshToken(db *gorm.DB, c *fiber.Ctx, req dto.RefreshTokenRequest) error {
	raw := strings.TrimSpace(req.RefreshToken)
	if raw == "" {
		raw = helper.GetRefreshTokenFromCookie(c)
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	userID, err := ParseRefreshToken(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	var stored model.RefreshToken
	if err := db.Where("user_id = ? AND token = ?", userID, raw).First(&stored).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenali")
	}
	if time.Now().After(stored.ExpiredAt) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token sudah expired")
	}

	var user model.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	return issueTokens(db, c, &user)
}

func ChangePassword(db *gorm.DB, c *fiber.Ctx, req dto.ChangePasswordRequest) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if !CheckPassword(user.Password, req.OldPassword) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password lama salah")
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := db.Model(&user).Update("password", hashed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan password")
	}

	return helper.JsonUpdated(c, "Password berhasil diperbarui", nil)
}
