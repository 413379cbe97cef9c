// file: internals/features/worksheets/service/worksheet_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	catalogModel "tepian_backend/internals/features/catalog/model"
	orderModel "tepian_backend/internals/features/orders/model"
	pengujianModel "tepian_backend/internals/features/pengujian/model"
	dto "tepian_backend/internals/features/worksheets/dto"
	model "tepian_backend/internals/features/worksheets/model"
	"tepian_backend/internals/helpers/testdb"
)

// wsFixture membangun satu order yang ditumpangi dua pengujian:
// utama (2 item) dan saudaranya (1 item) — total 3 item sumber.
type wsFixture struct {
	db        *gorm.DB
	userID    uuid.UUID
	order     orderModel.Order
	utama     pengujianModel.Pengujian
	saudara   pengujianModel.Pengujian
	paramIDs  []uuid.UUID
	locations []string
}

func newWsFixture(t *testing.T) *wsFixture {
	t.Helper()
	db := testdb.Open(t)
	userID := uuid.New()

	cluster := catalogModel.Cluster{ClusterName: "Lingkungan Kerja"}
	require.NoError(t, db.Create(&cluster).Error)
	jenis := catalogModel.JenisPengujian{
		JenisPengujianName:      "Kebisingan",
		JenisPengujianClusterID: cluster.ClusterID,
	}
	require.NoError(t, db.Create(&jenis).Error)

	var params []catalogModel.Parameter
	for _, name := range []string{"Intensitas Kebisingan", "Pencahayaan", "ISBB"} {
		p := catalogModel.Parameter{
			ParameterName:             name,
			ParameterHarga:            100000,
			ParameterJenisPengujianID: jenis.JenisPengujianID,
		}
		require.NoError(t, db.Create(&p).Error)
		params = append(params, p)
	}

	utama := pengujianModel.Pengujian{
		PengujianNomor:            "PGJ-20240101-001",
		PengujianUserID:           userID,
		PengujianJenisPengujianID: jenis.JenisPengujianID,
	}
	require.NoError(t, db.Create(&utama).Error)

	order := orderModel.Order{
		OrderNumber:      "ORD-1",
		OrderUserID:      userID,
		OrderPengujianID: utama.PengujianID,
		OrderStatus:      orderModel.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)

	saudara := pengujianModel.Pengujian{
		PengujianNomor:            "PGJ-20240101-002",
		PengujianUserID:           userID,
		PengujianJenisPengujianID: jenis.JenisPengujianID,
		PengujianOrderID:          &order.OrderID,
	}
	require.NoError(t, db.Create(&saudara).Error)
	require.NoError(t, db.Model(&utama).
		Update("pengujian_order_id", order.OrderID).Error)
	utama.PengujianOrderID = &order.OrderID

	locations := []string{"Area Produksi", "Gudang", "Kantor"}
	sources := []struct {
		pengujianID uuid.UUID
		paramIdx    int
		loc         string
	}{
		{utama.PengujianID, 0, locations[0]},
		{utama.PengujianID, 1, locations[1]},
		{saudara.PengujianID, 2, locations[2]},
	}
	for _, s := range sources {
		loc := s.loc
		item := pengujianModel.PengujianItem{
			PengujianItemPengujianID: s.pengujianID,
			PengujianItemParameterID: params[s.paramIdx].ParameterID,
			PengujianItemQuantity:    1,
			PengujianItemPrice:       100000,
			PengujianItemSubtotal:    100000,
			PengujianItemLocation:    &loc,
		}
		require.NoError(t, db.Create(&item).Error)
	}

	f := &wsFixture{
		db:        db,
		userID:    userID,
		order:     order,
		utama:     utama,
		saudara:   saudara,
		locations: locations,
	}
	for _, p := range params {
		f.paramIDs = append(f.paramIDs, p.ParameterID)
	}
	return f
}

func TestFindOrCreate_UnionsItemsAcrossOrder(t *testing.T) {
	f := newWsFixture(t)

	ws, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)
	require.NotNil(t, ws)

	// 2 item pengujian utama + 1 item pengujian saudara = 3
	assert.Len(t, ws.Items, 3)
	assert.Equal(t, model.WorksheetStatusDraft, ws.WorksheetStatus)

	// tiap item worksheet harus berasal dari item pengujian sumber
	type pair struct {
		param uuid.UUID
		loc   string
	}
	want := map[pair]bool{
		{f.paramIDs[0], f.locations[0]}: true,
		{f.paramIDs[1], f.locations[1]}: true,
		{f.paramIDs[2], f.locations[2]}: true,
	}
	for _, it := range ws.Items {
		require.NotNil(t, it.WorksheetItemLocation)
		assert.True(t, want[pair{it.WorksheetItemParameterID, *it.WorksheetItemLocation}],
			"item (%s, %s) tidak punya sumber", it.WorksheetItemParameterID, *it.WorksheetItemLocation)
	}
}

func TestFindOrCreate_ReturnsExisting(t *testing.T) {
	f := newWsFixture(t)

	first, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)
	second, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)

	assert.Equal(t, first.WorksheetID, second.WorksheetID)

	var count int64
	f.db.Model(&model.Worksheet{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmit_IdempotentAndBumpsOrder(t *testing.T) {
	f := newWsFixture(t)

	days := 2
	personnel := 3
	req := dto.SubmitWorksheetRequest{
		PengujianID:    f.utama.PengujianID,
		DaysCount:      &days,
		PersonnelCount: &personnel,
		PeralatanDigunakan: map[string]bool{
			uuid.NewString(): true,
			uuid.NewString(): false,
		},
	}

	first, err := Submit(f.db, req)
	require.NoError(t, err)
	assert.Equal(t, model.WorksheetStatusInProgress, first.WorksheetStatus)
	assert.Equal(t, 2, *first.WorksheetDaysCount)
	assert.Equal(t, 3, *first.WorksheetPersonnelCount)

	// efek samping: order terdorong ke IN_PROGRESS
	var o orderModel.Order
	require.NoError(t, f.db.First(&o, "order_id = ?", f.order.OrderID).Error)
	assert.Equal(t, orderModel.OrderStatusInProgress, o.OrderStatus)

	// submit kedua memperbarui baris yang sama, nomor tidak berubah
	second, err := Submit(f.db, req)
	require.NoError(t, err)
	assert.Equal(t, first.WorksheetID, second.WorksheetID)
	assert.Equal(t, first.WorksheetNomor, second.WorksheetNomor)

	var count int64
	f.db.Model(&model.Worksheet{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmit_CompletedOrderUntouched(t *testing.T) {
	f := newWsFixture(t)
	require.NoError(t, f.db.Model(&orderModel.Order{}).
		Where("order_id = ?", f.order.OrderID).
		Update("order_status", orderModel.OrderStatusCompleted).Error)

	_, err := Submit(f.db, dto.SubmitWorksheetRequest{PengujianID: f.utama.PengujianID})
	require.NoError(t, err)

	var o orderModel.Order
	require.NoError(t, f.db.First(&o, "order_id = ?", f.order.OrderID).Error)
	assert.Equal(t, orderModel.OrderStatusCompleted, o.OrderStatus,
		"order selesai tidak boleh mundur ke IN_PROGRESS")
}

func TestUpdateItem_OwnershipOrAdmin(t *testing.T) {
	f := newWsFixture(t)

	ws, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)
	require.NotEmpty(t, ws.Items)
	itemID := ws.Items[0].WorksheetItemID

	nilai := "87.5"
	req := dto.UpdateWorksheetItemRequest{
		Nilai: dto.PatchField[string]{Set: true, Value: &nilai},
	}

	// bukan pemilik dan bukan admin → forbidden
	_, err = UpdateItem(f.db, itemID, req, uuid.New(), false)
	require.Error(t, err)

	// pemilik boleh
	item, err := UpdateItem(f.db, itemID, req, f.userID, false)
	require.NoError(t, err)
	assert.Equal(t, nilai, *item.WorksheetItemNilai)

	// null tri-state mengosongkan nilai
	item, err = UpdateItem(f.db, itemID, dto.UpdateWorksheetItemRequest{
		Nilai: dto.PatchField[string]{Set: true, Null: true},
	}, uuid.New(), true)
	require.NoError(t, err)
	assert.Nil(t, item.WorksheetItemNilai)
}

func TestUpdate_StatusValidation(t *testing.T) {
	f := newWsFixture(t)

	ws, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)

	bad := "SELESAI_BANGET"
	_, err = Update(f.db, ws.WorksheetID, dto.UpdateWorksheetRequest{Status: &bad}, f.userID, true)
	require.Error(t, err)

	good := model.WorksheetStatusApproved
	got, err := Update(f.db, ws.WorksheetID, dto.UpdateWorksheetRequest{Status: &good}, f.userID, true)
	require.NoError(t, err)
	assert.Equal(t, model.WorksheetStatusApproved, got.WorksheetStatus)
}

func TestDelete_RemovesItems(t *testing.T) {
	f := newWsFixture(t)

	ws, err := FindOrCreate(f.db, f.utama.PengujianID, f.userID, false)
	require.NoError(t, err)

	require.NoError(t, Delete(f.db, ws.WorksheetID))

	var nWs, nItems int64
	f.db.Model(&model.Worksheet{}).Count(&nWs)
	f.db.Model(&model.WorksheetItem{}).Count(&nItems)
	assert.Zero(t, nWs)
	assert.Zero(t, nItems)

	// hapus lagi → not found
	assert.Error(t, Delete(f.db, ws.WorksheetID))
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestFindOrCreate_OnlyOwnerOrAdmin(t *testing.T) {
	f := newWsFixture(t)

	// user lain tidak boleh membaca, apalagi memicu pembuatan
	_, err := FindOrCreate(f.db, f.utama.PengujianID, uuid.New(), false)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	var n int64
	f.db.Model(&model.Worksheet{}).Count(&n)
	assert.Zero(t, n, "akses user lain tidak boleh membuat worksheet")

	// admin bebas
	_, err = FindOrCreate(f.db, f.utama.PengujianID, uuid.New(), true)
	require.NoError(t, err)
}

func TestSubmit_SyncsPengujianStatus(t *testing.T) {
	f := newWsFixture(t)

	_, err := Submit(f.db, dto.SubmitWorksheetRequest{PengujianID: f.utama.PengujianID})
	require.NoError(t, err)

	// semua pengujian penumpang order ikut bergerak bersama ordernya
	var utama, saudara pengujianModel.Pengujian
	require.NoError(t, f.db.First(&utama, "pengujian_id = ?", f.utama.PengujianID).Error)
	require.NoError(t, f.db.First(&saudara, "pengujian_id = ?", f.saudara.PengujianID).Error)
	assert.Equal(t, orderModel.OrderStatusInProgress, utama.PengujianStatus)
	assert.Equal(t, orderModel.OrderStatusInProgress, saudara.PengujianStatus)
}
