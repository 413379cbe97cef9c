// file: internals/features/worksheets/service/export_service_test.go
package service

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	model "tepian_backend/internals/features/worksheets/model"
	"tepian_backend/internals/helpers/storage"
)

func TestExport_HeadersAndSort(t *testing.T) {
	f := newWsFixture(t)
	store := storage.NewLocalStore(t.TempDir())

	ws, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)

	xf, filename, err := Export(f.db, store, ws.WorksheetID, f.userID, false)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Worksheet-%s.xlsx", ws.WorksheetNomor), filename)

	sheet := "Worksheet"

	// baris header: 11 kolom persis
	headerRow := 12
	for i, want := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		got, err := xf.GetCellValue(sheet, fmt.Sprintf("%s%d", col, headerRow))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// data terurut leksikografis per lokasi
	var locs []string
	for row := headerRow + 1; row <= headerRow+3; row++ {
		v, err := xf.GetCellValue(sheet, fmt.Sprintf("A%d", row))
		require.NoError(t, err)
		locs = append(locs, v)
	}
	assert.Equal(t, []string{"Area Produksi", "Gudang", "Kantor"}, locs)

	// info block memuat nomor worksheet
	nomor, err := xf.GetCellValue(sheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, ws.WorksheetNomor, nomor)
}

func TestExport_Deterministic(t *testing.T) {
	f := newWsFixture(t)
	store := storage.NewLocalStore(t.TempDir())

	ws, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)

	render := func() map[string]string {
		xf, _, err := Export(f.db, store, ws.WorksheetID, f.userID, false)
		require.NoError(t, err)
		cells := map[string]string{}
		for row := 1; row <= 16; row++ {
			for col := 1; col <= 11; col++ {
				name, _ := excelize.ColumnNumberToName(col)
				axis := fmt.Sprintf("%s%d", name, row)
				v, err := xf.GetCellValue("Worksheet", axis)
				require.NoError(t, err)
				cells[axis] = v
			}
		}
		return cells
	}

	assert.Equal(t, render(), render(), "dua render tanpa mutasi harus identik")
}

func TestExport_MergesGroupedAndTrailingColumns(t *testing.T) {
	f := newWsFixture(t)
	store := storage.NewLocalStore(t.TempDir())

	ws, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)

	// paksa dua item berbagi lokasi supaya ada run untuk digabung
	require.NoError(t, f.db.Model(&model.WorksheetItem{}).
		Where("worksheet_item_worksheet_id = ?", ws.WorksheetID).
		Update("worksheet_item_location", "Area Produksi").Error)

	catatan := "Gunakan APD lengkap"
	require.NoError(t, f.db.Model(&model.Worksheet{}).
		Where("worksheet_id = ?", ws.WorksheetID).
		Update("worksheet_catatan", catatan).Error)

	xf, _, err := Export(f.db, store, ws.WorksheetID, f.userID, false)
	require.NoError(t, err)

	merges, err := xf.GetMergeCells("Worksheet")
	require.NoError(t, err)
	got := map[string]bool{}
	for _, m := range merges {
		got[m.GetStartAxis()+":"+m.GetEndAxis()] = true
	}

	// 3 baris data (13..15): lokasi sama → kolom A digabung penuh
	assert.True(t, got["A13:A15"], "run lokasi harus digabung, dapat %v", got)
	// tiga kolom level-worksheet digabung sepanjang rentang data
	assert.True(t, got["I13:I15"])
	assert.True(t, got["J13:J15"])
	assert.True(t, got["K13:K15"])

	v, err := xf.GetCellValue("Worksheet", "I13")
	require.NoError(t, err)
	assert.Equal(t, catatan, v)
}

func TestExport_OnlyOwnerOrAdmin(t *testing.T) {
	f := newWsFixture(t)
	store := storage.NewLocalStore(t.TempDir())

	ws, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)

	_, _, err = Export(f.db, store, ws.WorksheetID, uuid.New(), false)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// admin tetap boleh mengunduh worksheet siapa pun
	_, _, err = Export(f.db, store, ws.WorksheetID, uuid.New(), true)
	require.NoError(t, err)
}
