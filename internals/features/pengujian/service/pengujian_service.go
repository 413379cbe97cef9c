// file: internals/features/pengujian/service/pengujian_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tepian_backend/internals/constants"
	catalogModel "tepian_backend/internals/features/catalog/model"
	orderModel "tepian_backend/internals/features/orders/model"
	dto "tepian_backend/internals/features/pengujian/dto"
	model "tepian_backend/internals/features/pengujian/model"
	helper "tepian_backend/internals/helpers"
	"tepian_backend/internals/helpers/storage"
)

type CreatePengujianInput struct {
	RequesterID uuid.UUID
	Role        string
	Req         dto.CreatePengujianRequest
}

// CreatePengujian menjalankan protokol paired-write: Pengujian + item
// dan Order + item dibuat dalam SATU transaksi — keduanya ada, atau
// tidak sama sekali.
func CreatePengujian(db *gorm.DB, store storage.BlobStore, in CreatePengujianInput) (*model.Pengujian, *orderModel.Order, error) {
	req := in.Req

	// 1) Resolve pemilik efektif
	ownerID := in.RequesterID
	if in.Role == constants.RoleAdmin && req.ClientUserID != nil {
		ownerID = *req.ClientUserID
	}

	// 2) Logo opsional — gagal simpan bukan alasan menggagalkan pengajuan
	var logoURL *string
	if req.Logo != nil && *req.Logo != "" {
		if url, err := storeLogo(store, ownerID, *req.Logo); err != nil {
			log.Println("[WARN] Gagal menyimpan logo perusahaan:", err)
		} else {
			logoURL = &url
		}
	}

	// 3) Resolve semua parameter dulu; satu yang tidak dikenal
	//    menggagalkan seluruh operasi sebelum transaksi dibuka
	type priced struct {
		param    catalogModel.Parameter
		quantity int
		subtotal float64
		location *string
	}
	items := make([]priced, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		var p catalogModel.Parameter
		if err := db.First(&p, "parameter_id = ?", it.ParameterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fiber.NewError(fiber.StatusBadRequest,
					"Parameter "+it.ParameterID.String()+" tidak ditemukan")
			}
			return nil, nil, err
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		sub := p.ParameterHarga * float64(qty)
		total += sub
		items = append(items, priced{
			param:    p,
			quantity: qty,
			subtotal: sub,
			location: helper.NormalizeOptionalText(it.Location),
		})
	}

	now := time.Now()
	pengujian := &model.Pengujian{
		PengujianNomor:            helper.GenerateNomorPengujian(now),
		PengujianUserID:           ownerID,
		PengujianJenisPengujianID: req.JenisPengujianID,
		PengujianTotalAmount:      total,
		PengujianLokasi:           helper.NormalizeOptionalText(req.Lokasi),
		PengujianCatatan:          helper.NormalizeOptionalText(req.Catatan),
		PengujianCompany:          &req.Company,
		PengujianAddress:          helper.NormalizeOptionalText(req.Address),
		PengujianStatus:           orderModel.OrderStatusPending,
	}
	if req.TanggalPengujian != nil && *req.TanggalPengujian != "" {
		if t, err := time.Parse("2006-01-02", *req.TanggalPengujian); err == nil {
			pengujian.PengujianTanggal = &t
		}
	}

	order := &orderModel.Order{
		OrderNumber:        helper.GenerateNomorOrder(now),
		OrderUserID:        ownerID,
		OrderTotalAmount:   total,
		OrderCompany:       &req.Company,
		OrderAddress:       helper.NormalizeOptionalText(req.Address),
		OrderContactPerson: helper.NormalizeOptionalText(req.ContactPerson),
		OrderPhone:         helper.NormalizeOptionalText(req.Phone),
		OrderCompanyLogo:   logoURL,
		OrderStatus:        orderModel.OrderStatusPending,
	}

	// 5) Transaksi tunggal: pengujian + items, lalu order + items.
	//    Item sengaja diduplikasi ke kedua agregat (denormalisasi).
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pengujian).Error; err != nil {
			return err
		}
		for _, it := range items {
			pi := model.PengujianItem{
				PengujianItemPengujianID: pengujian.PengujianID,
				PengujianItemParameterID: it.param.ParameterID,
				PengujianItemQuantity:    it.quantity,
				PengujianItemPrice:       it.param.ParameterHarga,
				PengujianItemSubtotal:    it.subtotal,
				PengujianItemLocation:    it.location,
			}
			if err := tx.Create(&pi).Error; err != nil {
				return err
			}
			pengujian.Items = append(pengujian.Items, pi)
		}

		order.OrderPengujianID = pengujian.PengujianID
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, it := range items {
			oi := orderModel.OrderItem{
				OrderItemOrderID:     order.OrderID,
				OrderItemParameterID: it.param.ParameterID,
				OrderItemQuantity:    it.quantity,
				OrderItemPrice:       it.param.ParameterHarga,
				OrderItemSubtotal:    it.subtotal,
				OrderItemLocation:    it.location,
			}
			if err := tx.Create(&oi).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}

		pengujian.PengujianOrderID = &order.OrderID
		return tx.Model(&model.Pengujian{}).
			Where("pengujian_id = ?", pengujian.PengujianID).
			Update("pengujian_order_id", order.OrderID).Error
	})
	if err != nil {
		log.Println("[ERROR] Transaksi pengujian+order gagal:", err)
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengajuan")
	}

	return pengujian, order, nil
}

func storeLogo(store storage.BlobStore, ownerID uuid.UUID, dataURI string) (string, error) {
	mime, data, err := helper.DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	if _, err := helper.ValidateImageMime(mime); err != nil {
		return "", err
	}
	webpData, err := helper.ConvertToWebP(data)
	if err != nil {
		return "", err
	}
	key := storage.BuildKey("logo", "company-logo", ownerID.String(), "webp")
	if err := store.Put(key, webpData, "image/webp"); err != nil {
		return "", err
	}
	return store.URLFor(key), nil
}
