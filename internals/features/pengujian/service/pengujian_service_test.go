// file: internals/features/pengujian/service/pengujian_service_test.go
package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tepian_backend/internals/constants"
	catalogModel "tepian_backend/internals/features/catalog/model"
	orderModel "tepian_backend/internals/features/orders/model"
	dto "tepian_backend/internals/features/pengujian/dto"
	model "tepian_backend/internals/features/pengujian/model"
	"tepian_backend/internals/helpers/testdb"
)

type fixture struct {
	db     *gorm.DB
	userID uuid.UUID
	jenis  catalogModel.JenisPengujian
	paramA catalogModel.Parameter
	paramB catalogModel.Parameter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)

	cluster := catalogModel.Cluster{ClusterName: "Lingkungan Kerja"}
	require.NoError(t, db.Create(&cluster).Error)

	jenis := catalogModel.JenisPengujian{
		JenisPengujianName:      "Kebisingan",
		JenisPengujianClusterID: cluster.ClusterID,
	}
	require.NoError(t, db.Create(&jenis).Error)

	paramA := catalogModel.Parameter{
		ParameterName:             "Intensitas Kebisingan",
		ParameterHarga:            100000,
		ParameterJenisPengujianID: jenis.JenisPengujianID,
	}
	paramB := catalogModel.Parameter{
		ParameterName:             "Kebisingan Sesaat",
		ParameterHarga:            50000,
		ParameterJenisPengujianID: jenis.JenisPengujianID,
	}
	require.NoError(t, db.Create(&paramA).Error)
	require.NoError(t, db.Create(&paramB).Error)

	return &fixture{
		db:     db,
		userID: uuid.New(),
		jenis:  jenis,
		paramA: paramA,
		paramB: paramB,
	}
}

func (f *fixture) createRequest() dto.CreatePengujianRequest {
	lokasiA := "Area Produksi"
	return dto.CreatePengujianRequest{
		JenisPengujianID: f.jenis.JenisPengujianID,
		Items: []dto.CreatePengujianItemRequest{
			{ParameterID: f.paramA.ParameterID, Quantity: 2, Location: &lokasiA},
			{ParameterID: f.paramB.ParameterID, Quantity: 1},
		},
		Company: "PT Maju Jaya",
	}
}

func TestCreatePengujian_PairedWrite(t *testing.T) {
	f := newFixture(t)

	pengujian, order, err := CreatePengujian(f.db, nil, CreatePengujianInput{
		RequesterID: f.userID,
		Role:        constants.RoleUser,
		Req:         f.createRequest(),
	})
	require.NoError(t, err)
	require.NotNil(t, pengujian)
	require.NotNil(t, order)

	// pengujian A qty 2 @100000 + B qty 1 @50000 = 250000 di kedua sisi
	assert.InDelta(t, 250000, pengujian.PengujianTotalAmount, 0.01)
	assert.InDelta(t, 250000, order.OrderTotalAmount, 0.01)
	assert.Equal(t, orderModel.OrderStatusPending, order.OrderStatus)

	assert.Equal(t, pengujian.PengujianID, order.OrderPengujianID)
	require.NotNil(t, pengujian.PengujianOrderID)
	assert.Equal(t, order.OrderID, *pengujian.PengujianOrderID)

	assert.True(t, strings.HasPrefix(pengujian.PengujianNomor, "PGJ-"))
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

	// item terduplikasi ke kedua agregat
	var pengujianItems []model.PengujianItem
	require.NoError(t, f.db.Find(&pengujianItems).Error)
	var orderItems []orderModel.OrderItem
	require.NoError(t, f.db.Find(&orderItems).Error)
	assert.Len(t, pengujianItems, 2)
	assert.Len(t, orderItems, 2)
}

func TestCreatePengujian_PriceSnapshot(t *testing.T) {
	f := newFixture(t)

	_, _, err := CreatePengujian(f.db, nil, CreatePengujianInput{
		RequesterID: f.userID,
		Role:        constants.RoleUser,
		Req:         f.createRequest(),
	})
	require.NoError(t, err)

	// harga katalog naik setelah pengajuan
	require.NoError(t, f.db.Model(&catalogModel.Parameter{}).
		Where("parameter_id = ?", f.paramA.ParameterID).
		Update("parameter_harga", 999999).Error)

	var item model.PengujianItem
	require.NoError(t, f.db.First(&item,
		"pengujian_item_parameter_id = ?", f.paramA.ParameterID).Error)
	assert.InDelta(t, 100000, item.PengujianItemPrice, 0.01,
		"snapshot harga tidak boleh ikut berubah")
	assert.InDelta(t, 200000, item.PengujianItemSubtotal, 0.01)
}

func TestCreatePengujian_UnknownParameterRollsBack(t *testing.T) {
	f := newFixture(t)

	req := f.createRequest()
	ghost := uuid.New()
	req.Items = append(req.Items, dto.CreatePengujianItemRequest{ParameterID: ghost})

	_, _, err := CreatePengujian(f.db, nil, CreatePengujianInput{
		RequesterID: f.userID,
		Role:        constants.RoleUser,
		Req:         req,
	})
	require.Error(t, err)

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, ghost.String())

	// tidak ada baris setengah jadi
	var nPengujian, nOrder, nItems int64
	f.db.Model(&model.Pengujian{}).Count(&nPengujian)
	f.db.Model(&orderModel.Order{}).Count(&nOrder)
	f.db.Model(&model.PengujianItem{}).Count(&nItems)
	assert.Zero(t, nPengujian)
	assert.Zero(t, nOrder)
	assert.Zero(t, nItems)
}

func TestCreatePengujian_DefaultQuantity(t *testing.T) {
	f := newFixture(t)

	req := dto.CreatePengujianRequest{
		JenisPengujianID: f.jenis.JenisPengujianID,
		Items: []dto.CreatePengujianItemRequest{
			{ParameterID: f.paramA.ParameterID}, // qty 0 → dianggap 1
		},
		Company: "PT Maju Jaya",
	}

	pengujian, _, err := CreatePengujian(f.db, nil, CreatePengujianInput{
		RequesterID: f.userID,
		Role:        constants.RoleUser,
		Req:         req,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100000, pengujian.PengujianTotalAmount, 0.01)
	require.Len(t, pengujian.Items, 1)
	assert.Equal(t, 1, pengujian.Items[0].PengujianItemQuantity)
}

func TestCreatePengujian_AdminOnBehalfOfClient(t *testing.T) {
	f := newFixture(t)

	client := uuid.New()
	req := f.createRequest()
	req.ClientUserID = &client

	pengujian, order, err := CreatePengujian(f.db, nil, CreatePengujianInput{
		RequesterID: f.userID,
		Role:        constants.RoleAdmin,
		Req:         req,
	})
	require.NoError(t, err)
	assert.Equal(t, client, pengujian.PengujianUserID)
	assert.Equal(t, client, order.OrderUserID)
}

func TestCreatePengujian_NonAdminCannotImpersonate(t *testing.T) {
	f := newFixture(t)

	client := uuid.New()
	req := f.createRequest()
	req.ClientUserID = &client

	pengujian, _, err := CreatePengujian(f.db, nil, CreatePengujianInput{
		RequesterID: f.userID,
		Role:        constants.RoleUser,
		Req:         req,
	})
	require.NoError(t, err)
	assert.Equal(t, f.userID, pengujian.PengujianUserID)
}
