package controller

import (
	"bytes"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "tepian_backend/internals/features/users/dto"
	model "tepian_backend/internals/features/users/model"
	helper "tepian_backend/internals/helpers"
	"tepian_backend/internals/helpers/storage"
)

type UserController struct {
	DB    *gorm.DB
	Store storage.BlobStore
}

func NewUserController(db *gorm.DB, store storage.BlobStore) *UserController {
	return &UserController{DB: db, Store: store}
}

// List semua user (admin)
func (uc *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := uc.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var users []model.UserModel
	if err := uc.DB.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.FromModelUser(&users[i]))
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}

// UploadAvatar menerima multipart "avatar", validasi mimetype gambar,
// konversi ke webp, simpan ke blob store.
func (uc *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File avatar tidak ditemukan")
	}
	if _, err := helper.ValidateImageMime(fileHeader.Header.Get("Content-Type")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file avatar")
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca file avatar")
	}

	webpData, err := helper.ConvertToWebP(buf.Bytes())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	key := storage.BuildKey("avatar", "avatar", userID.String(), "webp")
	if err := uc.Store.Put(key, webpData, "image/webp"); err != nil {
		log.Println("[ERROR] Gagal simpan avatar:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan avatar")
	}

	url := uc.Store.URLFor(key)
	if err := uc.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan avatar")
	}

	return helper.JsonUpdated(c, "Avatar berhasil diperbarui", fiber.Map{"avatar_url": url})
}
