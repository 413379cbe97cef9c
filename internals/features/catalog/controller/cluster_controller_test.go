// file: internals/features/catalog/controller/cluster_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	model "tepian_backend/internals/features/catalog/model"
	"tepian_backend/internals/helpers/testdb"
)

func newClusterApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	ctl := NewClusterController(db)
	app := fiber.New()
	app.Delete("/clusters/:id", ctl.Delete)
	return app, db
}

// Guard referensial memakai 400 dengan pesan deskriptif, bukan 409.
func TestClusterDelete_BlockedByJenisPengujian(t *testing.T) {
	app, db := newClusterApp(t)

	cluster := model.Cluster{ClusterName: "Lingkungan Kerja"}
	require.NoError(t, db.Create(&cluster).Error)
	jenis := model.JenisPengujian{
		JenisPengujianName:      "Kebisingan",
		JenisPengujianClusterID: cluster.ClusterID,
	}
	require.NoError(t, db.Create(&jenis).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/clusters/"+cluster.ClusterID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.Cluster{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "cluster tidak boleh ikut terhapus")

	// setelah jenis pengujiannya hilang, delete diperbolehkan
	require.NoError(t, db.Delete(&jenis).Error)
	resp, err = app.Test(httptest.NewRequest("DELETE", "/clusters/"+cluster.ClusterID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestClusterDelete_NotFound(t *testing.T) {
	app, _ := newClusterApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/clusters/b2f7d9f0-0000-0000-0000-000000000000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
