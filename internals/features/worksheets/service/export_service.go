// file: internals/features/worksheets/service/export_service.go
package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"tepian_backend/internals/configs"
	orderModel "tepian_backend/internals/features/orders/model"
	pengujianModel "tepian_backend/internals/features/pengujian/model"
	model "tepian_backend/internals/features/worksheets/model"
	"tepian_backend/internals/helpers/storage"
)

var bulanID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func formatTanggalID(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), bulanID[t.Month()-1], t.Year())
}

var exportHeaders = []string{
	"Lokasi", "Cluster", "Jenis Pengujian", "Parameter", "Qty",
	"Standar Acuan", "Peralatan", "Qty Alat", "Catatan", "Bahan Habis",
	"Ketersediaan Alat",
}

// exportRow adalah satu baris tabel data, sudah diratakan dari rantai
// item → parameter → jenis pengujian → cluster.
type exportRow struct {
	Location  string
	Cluster   string
	TestType  string
	Parameter string
	Qty       int
	Acuan     string
	Alat      string
	AlatQty   string
}

// Export merender worksheet menjadi satu sheet xlsx. Fungsi murni dari
// isi worksheet: dua kali render tanpa mutasi menghasilkan nilai sel
// yang identik.
func Export(db *gorm.DB, store storage.BlobStore, worksheetID, userID uuid.UUID, isAdmin bool) (*excelize.File, string, error) {
	var ws model.Worksheet
	if err := db.
		Preload("Items.Parameter.JenisPengujian.Cluster").
		Preload("Items.Parameter.Peralatan.Peralatan").
		First(&ws, "worksheet_id = ?", worksheetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fiber.NewError(fiber.StatusNotFound, "Worksheet tidak ditemukan")
		}
		return nil, "", err
	}

	p, err := findPengujian(db, ws.WorksheetPengujianID)
	if err != nil {
		return nil, "", err
	}
	if !isAdmin && p.PengujianUserID != userID {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "Bukan pemilik worksheet ini")
	}

	var order *orderModel.Order
	var o orderModel.Order
	if err := db.First(&o, "order_pengujian_id = ?", ws.WorksheetPengujianID).Error; err == nil {
		order = &o
	}

	f := excelize.NewFile()
	sheet := "Worksheet"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border:    []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	mergedStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})

	// ---- title band + logo
	embedLogo(f, sheet, store, order)
	f.MergeCell(sheet, "C1", "K2")
	f.SetCellValue(sheet, "C1", "LEMBAR KERJA PENGUJIAN K3")
	f.SetCellStyle(sheet, "C1", "K2", titleStyle)

	// ---- info block
	company, address := companyInfo(order, p)
	location := "-"
	if p.PengujianLokasi != nil {
		location = *p.PengujianLokasi
	}
	info := [][2]string{
		{"Perusahaan", company},
		{"Alamat", address},
		{"Lokasi", location},
		{"Nomor Worksheet", ws.WorksheetNomor},
		{"Tanggal", formatTanggalID(ws.WorksheetCreatedAt)},
		{"Jumlah Hari", intOrDash(ws.WorksheetDaysCount)},
		{"Jumlah Personel", intOrDash(ws.WorksheetPersonnelCount)},
	}
	infoStart := 4
	for i, kv := range info {
		row := infoStart + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), kv[0])
		f.MergeCell(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), kv[1])
	}

	// ---- header
	headerRow := infoStart + len(info) + 1
	for i, h := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	// ---- data
	rows := buildRows(&ws)
	dataStart := headerRow + 1
	for i, r := range rows {
		row := dataStart + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Location)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Cluster)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.TestType)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Parameter)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Qty)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Acuan)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Alat)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.AlatQty)
	}

	if len(rows) > 0 {
		dataEnd := dataStart + len(rows) - 1
		mergeRuns(f, sheet, rows, dataStart)

		// tiga kolom terakhir berisi teks level-worksheet, merge
		// sepanjang seluruh rentang data
		f.MergeCell(sheet, fmt.Sprintf("I%d", dataStart), fmt.Sprintf("I%d", dataEnd))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", dataStart), textOrDash(ws.WorksheetCatatan))
		f.MergeCell(sheet, fmt.Sprintf("J%d", dataStart), fmt.Sprintf("J%d", dataEnd))
		f.SetCellValue(sheet, fmt.Sprintf("J%d", dataStart), textOrDash(ws.WorksheetConsumables))
		f.MergeCell(sheet, fmt.Sprintf("K%d", dataStart), fmt.Sprintf("K%d", dataEnd))
		f.SetCellValue(sheet, fmt.Sprintf("K%d", dataStart), readinessSummary(ws.WorksheetPeralatanDigunakan))
		f.SetCellStyle(sheet, fmt.Sprintf("I%d", dataStart), fmt.Sprintf("K%d", dataEnd), mergedStyle)
	}

	widths := []float64{18, 16, 20, 26, 8, 20, 24, 10, 24, 20, 18}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("Worksheet-%s.xlsx", ws.WorksheetNomor)
	return f, filename, nil
}

// buildRows meratakan item lalu mengurutkannya leksikografis
// (Lokasi, Cluster, Jenis Pengujian) supaya hasil render stabil.
func buildRows(ws *model.Worksheet) []exportRow {
	rows := make([]exportRow, 0, len(ws.Items))
	for _, it := range ws.Items {
		r := exportRow{
			Location:  "-",
			Cluster:   "-",
			TestType:  "-",
			Parameter: "-",
			Qty:       it.WorksheetItemQuantity,
			Acuan:     "-",
			Alat:      "-",
			AlatQty:   "-",
		}
		if it.WorksheetItemLocation != nil {
			r.Location = *it.WorksheetItemLocation
		}
		if prm := it.Parameter; prm != nil {
			r.Parameter = prm.ParameterName
			if prm.ParameterAcuan != nil {
				r.Acuan = *prm.ParameterAcuan
			}
			if jp := prm.JenisPengujian; jp != nil {
				r.TestType = jp.JenisPengujianName
				if jp.Cluster != nil {
					r.Cluster = jp.Cluster.ClusterName
				}
			}
			var names, counts []string
			for _, pp := range prm.Peralatan {
				if pp.Peralatan != nil {
					names = append(names, pp.Peralatan.PeralatanName)
					counts = append(counts, fmt.Sprintf("%d", pp.ParameterPeralatanJumlah))
				}
			}
			if len(names) > 0 {
				r.Alat = strings.Join(names, ", ")
				r.AlatQty = strings.Join(counts, ", ")
			}
		}
		rows = append(rows, r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Location != rows[j].Location {
			return rows[i].Location < rows[j].Location
		}
		if rows[i].Cluster != rows[j].Cluster {
			return rows[i].Cluster < rows[j].Cluster
		}
		if rows[i].TestType != rows[j].TestType {
			return rows[i].TestType < rows[j].TestType
		}
		return rows[i].Parameter < rows[j].Parameter
	})
	return rows
}

// mergeRuns menggabungkan sel vertikal: run Lokasi yang sama di kolom
// A, run Cluster di dalamnya di kolom B, run Jenis Pengujian di kolom C.
func mergeRuns(f *excelize.File, sheet string, rows []exportRow, dataStart int) {
	mergeCol := func(col string, start, end int) {
		if end > start {
			f.MergeCell(sheet, fmt.Sprintf("%s%d", col, start), fmt.Sprintf("%s%d", col, end))
		}
	}

	locStart := 0
	for i := 1; i <= len(rows); i++ {
		if i == len(rows) || rows[i].Location != rows[locStart].Location {
			mergeCol("A", dataStart+locStart, dataStart+i-1)

			cluStart := locStart
			for j := cluStart + 1; j <= i; j++ {
				if j == i || rows[j].Cluster != rows[cluStart].Cluster {
					mergeCol("B", dataStart+cluStart, dataStart+j-1)

					typStart := cluStart
					for k := typStart + 1; k <= j; k++ {
						if k == j || rows[k].TestType != rows[typStart].TestType {
							mergeCol("C", dataStart+typStart, dataStart+k-1)
							typStart = k
						}
					}
					cluStart = j
				}
			}
			locStart = i
		}
	}
}

// embedLogo menempelkan logo perusahaan dari blob store; kalau tidak
// ada atau tidak terbaca, jatuh ke aset default. Kegagalan total cukup
// dibiarkan: export tetap jalan tanpa gambar.
func embedLogo(f *excelize.File, sheet string, store storage.BlobStore, order *orderModel.Order) {
	if order != nil && order.OrderCompanyLogo != nil {
		if ls, ok := store.(*storage.LocalStore); ok {
			if key := ls.KeyFromURL(*order.OrderCompanyLogo); key != "" {
				if data, err := store.Get(key); err == nil {
					if pngData, err := webpToPNG(data); err == nil {
						_ = f.AddPictureFromBytes(sheet, "A1", &excelize.Picture{
							Extension: ".png",
							File:      pngData,
							Format:    &excelize.GraphicOptions{ScaleX: 0.5, ScaleY: 0.5},
						})
						return
					}
				}
			}
		}
	}

	if data, err := os.ReadFile(configs.DefaultLogoPath); err == nil {
		_ = f.AddPictureFromBytes(sheet, "A1", &excelize.Picture{
			Extension: ".png",
			File:      data,
			Format:    &excelize.GraphicOptions{ScaleX: 0.5, ScaleY: 0.5},
		})
	}
}

// webpToPNG mengubah logo webp hasil pipeline upload menjadi PNG,
// format yang bisa ditanam excelize.
func webpToPNG(data []byte) ([]byte, error) {
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// companyInfo mengambil identitas perusahaan dari Order; data lama
// sebelum Order punya snapshot jatuh ke field legacy di Pengujian.
func companyInfo(order *orderModel.Order, p *pengujianModel.Pengujian) (string, string) {
	company, address := "-", "-"
	switch {
	case order != nil && order.OrderCompany != nil:
		company = *order.OrderCompany
		if order.OrderAddress != nil {
			address = *order.OrderAddress
		}
	case p.PengujianCompany != nil:
		company = *p.PengujianCompany
		if p.PengujianAddress != nil {
			address = *p.PengujianAddress
		}
	}
	return company, address
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func textOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}

func readinessSummary(raw []byte) string {
	if len(raw) == 0 {
		return "-"
	}
	var m map[string]bool
	if err := json.Unmarshal(raw, &m); err != nil || len(m) == 0 {
		return "-"
	}
	ready := 0
	for _, ok := range m {
		if ok {
			ready++
		}
	}
	return fmt.Sprintf("%d dari %d peralatan siap", ready, len(m))
}
