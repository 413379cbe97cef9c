// file: internals/databases/migrate.go
package database

import (
	catalogModel "tepian_backend/internals/features/catalog/model"
	orderModel "tepian_backend/internals/features/orders/model"
	pengujianModel "tepian_backend/internals/features/pengujian/model"
	userModel "tepian_backend/internals/features/users/model"
	worksheetModel "tepian_backend/internals/features/worksheets/model"
)

// AutoMigrate mendaftarkan seluruh skema. Urutan mengikuti arah FK:
// katalog dulu, lalu pengujian/order, terakhir worksheet.
func AutoMigrate() error {
	return DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.TokenBlacklist{},
		&userModel.RefreshToken{},

		&catalogModel.Cluster{},
		&catalogModel.JenisPengujian{},
		&catalogModel.Parameter{},
		&catalogModel.Peralatan{},
		&catalogModel.ParameterPeralatan{},
		&catalogModel.Pegawai{},

		&pengujianModel.Pengujian{},
		&pengujianModel.PengujianItem{},
		&orderModel.Order{},
		&orderModel.OrderItem{},

		&worksheetModel.Worksheet{},
		&worksheetModel.WorksheetItem{},
	)
}
