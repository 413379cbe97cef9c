// file: internals/features/worksheets/service/worksheet_service.go
package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	orderModel "tepian_backend/internals/features/orders/model"
	pengujianModel "tepian_backend/internals/features/pengujian/model"
	dto "tepian_backend/internals/features/worksheets/dto"
	model "tepian_backend/internals/features/worksheets/model"
	helper "tepian_backend/internals/helpers"
)

func findPengujian(db *gorm.DB, id uuid.UUID) (*pengujianModel.Pengujian, error) {
	var p pengujianModel.Pengujian
	if err := db.First(&p, "pengujian_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pengujian tidak ditemukan")
		}
		return nil, err
	}
	return &p, nil
}

// sourceItems mengumpulkan PengujianItem dari SEMUA pengujian yang
// menumpang order yang sama dengan pengujian sumber.
func sourceItems(tx *gorm.DB, p *pengujianModel.Pengujian) ([]pengujianModel.PengujianItem, error) {
	ids := []uuid.UUID{p.PengujianID}
	if p.PengujianOrderID != nil {
		var siblings []pengujianModel.Pengujian
		if err := tx.Where("pengujian_order_id = ?", *p.PengujianOrderID).
			Find(&siblings).Error; err != nil {
			return nil, err
		}
		ids = ids[:0]
		for _, s := range siblings {
			ids = append(ids, s.PengujianID)
		}
	}

	var items []pengujianModel.PengujianItem
	if err := tx.Where("pengujian_item_pengujian_id IN ?", ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindOrCreate mengembalikan worksheet satu pengujian; kalau belum ada
// dibuat sekalian dengan item hasil union. Hanya pemilik pengujian
// sumber (atau admin) yang boleh membaca maupun memicu pembuatan.
// Unique index di worksheet_pengujian_id menjamin dua submit pertama
// yang balapan tidak menghasilkan dua worksheet.
func FindOrCreate(db *gorm.DB, pengujianID, userID uuid.UUID, isAdmin bool) (*model.Worksheet, error) {
	p, err := findPengujian(db, pengujianID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && p.PengujianUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Bukan pemilik pengujian ini")
	}

	var ws model.Worksheet
	err = db.Preload("Items").First(&ws, "worksheet_pengujian_id = ?", pengujianID).Error
	if err == nil {
		return &ws, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &model.Worksheet{
		WorksheetNomor:       helper.GenerateNomorWorksheet(time.Now()),
		WorksheetPengujianID: pengujianID,
		WorksheetStatus:      model.WorksheetStatusDraft,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(created).Error; err != nil {
			return err
		}
		items, err := sourceItems(tx, p)
		if err != nil {
			return err
		}
		for _, src := range items {
			wi := model.WorksheetItem{
				WorksheetItemWorksheetID: created.WorksheetID,
				WorksheetItemParameterID: src.PengujianItemParameterID,
				WorksheetItemLocation:    src.PengujianItemLocation,
				WorksheetItemQuantity:    src.PengujianItemQuantity,
			}
			if err := tx.Create(&wi).Error; err != nil {
				return err
			}
			created.Items = append(created.Items, wi)
		}
		return nil
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// kalah balapan; pakai worksheet yang menang
			var existing model.Worksheet
			if ferr := db.Preload("Items").
				First(&existing, "worksheet_pengujian_id = ?", pengujianID).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return created, nil
}

// Submit adalah upsert idempoten: worksheet yang sama diperbarui,
// nomornya tidak pernah berubah. Efek samping: order berpasangan
// didorong ke IN_PROGRESS lewat tabel transisi (no-op kalau sudah
// terminal).
func Submit(db *gorm.DB, req dto.SubmitWorksheetRequest) (*model.Worksheet, error) {
	ws, err := FindOrCreate(db, req.PengujianID, uuid.Nil, true)
	if err != nil {
		return nil, err
	}

	ws.WorksheetPegawaiUtamaID = req.PegawaiUtamaID
	ws.WorksheetPegawaiPendampingID = req.PegawaiPendampingID
	if t := parseDate(req.TanggalMulai); t != nil {
		ws.WorksheetTanggalMulai = t
	}
	if t := parseDate(req.TanggalSelesai); t != nil {
		ws.WorksheetTanggalSelesai = t
	}
	if v := helper.NormalizeOptionalText(req.Catatan); v != nil {
		ws.WorksheetCatatan = v
	}
	if req.DaysCount != nil {
		ws.WorksheetDaysCount = req.DaysCount
	}
	if req.PersonnelCount != nil {
		ws.WorksheetPersonnelCount = req.PersonnelCount
	}
	if v := helper.NormalizeOptionalText(req.Consumables); v != nil {
		ws.WorksheetConsumables = v
	}
	if req.PeralatanDigunakan != nil {
		raw, err := json.Marshal(req.PeralatanDigunakan)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "peralatan_digunakan tidak valid")
		}
		ws.WorksheetPeralatanDigunakan = raw
	}
	if ws.WorksheetStatus == model.WorksheetStatusDraft {
		ws.WorksheetStatus = model.WorksheetStatusInProgress
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ws).Error; err != nil {
			return err
		}
		return bumpPairedOrder(tx, ws.WorksheetPengujianID)
	})
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func bumpPairedOrder(tx *gorm.DB, pengujianID uuid.UUID) error {
	var o orderModel.Order
	err := tx.First(&o, "order_pengujian_id = ?", pengujianID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	next, ok := orderModel.NextOrderStatus(o.OrderStatus, orderModel.EventWorksheetSubmitted)
	if !ok || next == o.OrderStatus {
		return nil
	}
	if err := tx.Model(&o).Update("order_status", next).Error; err != nil {
		return err
	}
	// status pengujian penumpang ikut bergerak bersama ordernya
	return tx.Model(&pengujianModel.Pengujian{}).
		Where("pengujian_order_id = ?", o.OrderID).
		Update("pengujian_status", next).Error
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// Authorize memeriksa pemilik: user pemohon pengujian sumber, atau admin.
func Authorize(db *gorm.DB, ws *model.Worksheet, userID uuid.UUID, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	p, err := findPengujian(db, ws.WorksheetPengujianID)
	if err != nil {
		return err
	}
	if p.PengujianUserID != userID {
		return fiber.NewError(fiber.StatusForbidden, "Bukan pemilik worksheet ini")
	}
	return nil
}

func Update(db *gorm.DB, worksheetID uuid.UUID, req dto.UpdateWorksheetRequest, userID uuid.UUID, isAdmin bool) (*model.Worksheet, error) {
	var ws model.Worksheet
	if err := db.First(&ws, "worksheet_id = ?", worksheetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Worksheet tidak ditemukan")
		}
		return nil, err
	}
	if err := Authorize(db, &ws, userID, isAdmin); err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !model.ValidWorksheetStatus[*req.Status] {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Status worksheet tidak valid")
		}
		ws.WorksheetStatus = *req.Status
	}
	applyPatch(&ws.WorksheetPegawaiUtamaID, req.PegawaiUtamaID)
	applyPatch(&ws.WorksheetPegawaiPendampingID, req.PegawaiPendampingID)
	applyDatePatch(&ws.WorksheetTanggalMulai, req.TanggalMulai)
	applyDatePatch(&ws.WorksheetTanggalSelesai, req.TanggalSelesai)
	applyPatch(&ws.WorksheetCatatan, req.Catatan)
	applyPatch(&ws.WorksheetDaysCount, req.DaysCount)
	applyPatch(&ws.WorksheetPersonnelCount, req.PersonnelCount)
	applyPatch(&ws.WorksheetConsumables, req.Consumables)
	if req.PeralatanDigunakan != nil {
		raw, err := json.Marshal(req.PeralatanDigunakan)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "peralatan_digunakan tidak valid")
		}
		ws.WorksheetPeralatanDigunakan = raw
	}

	if err := db.Save(&ws).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func UpdateItem(db *gorm.DB, itemID uuid.UUID, req dto.UpdateWorksheetItemRequest, userID uuid.UUID, isAdmin bool) (*model.WorksheetItem, error) {
	var item model.WorksheetItem
	if err := db.First(&item, "worksheet_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Item worksheet tidak ditemukan")
		}
		return nil, err
	}

	var ws model.Worksheet
	if err := db.First(&ws, "worksheet_id = ?", item.WorksheetItemWorksheetID).Error; err != nil {
		return nil, err
	}
	if err := Authorize(db, &ws, userID, isAdmin); err != nil {
		return nil, err
	}

	applyPatch(&item.WorksheetItemSatuan, req.Satuan)
	applyPatch(&item.WorksheetItemNilai, req.Nilai)
	applyPatch(&item.WorksheetItemKeterangan, req.Keterangan)
	applyPatch(&item.WorksheetItemIsReady, req.IsReady)

	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func Delete(db *gorm.DB, worksheetID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worksheet_item_worksheet_id = ?", worksheetID).
			Delete(&model.WorksheetItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("worksheet_id = ?", worksheetID).Delete(&model.Worksheet{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Worksheet tidak ditemukan")
		}
		return nil
	})
}

func applyPatch[T any](dst **T, p dto.PatchField[T]) {
	if !p.Set {
		return
	}
	if p.Null {
		*dst = nil
		return
	}
	*dst = p.Value
}

func applyDatePatch(dst **time.Time, p dto.PatchField[string]) {
	if !p.Set {
		return
	}
	if p.Null {
		*dst = nil
		return
	}
	if t := parseDate(p.Value); t != nil {
		*dst = t
	}
}
