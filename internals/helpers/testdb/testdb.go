// file: internals/helpers/testdb/testdb.go
// Package testdb menyediakan database sqlite in-memory untuk pengujian
// unit. Skema ditulis sebagai DDL mentah karena tag kolom model
// memakai default Postgres (gen_random_uuid, jsonb) yang tidak dikenal
// sqlite.
package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		user_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		google_id TEXT,
		role TEXT NOT NULL DEFAULT 'user',
		avatar_url TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE clusters (
		cluster_id TEXT PRIMARY KEY,
		cluster_name TEXT NOT NULL UNIQUE,
		cluster_description TEXT,
		cluster_icon TEXT,
		cluster_is_active INTEGER NOT NULL DEFAULT 1,
		cluster_created_at DATETIME,
		cluster_updated_at DATETIME
	)`,
	`CREATE TABLE jenis_pengujian (
		jenis_pengujian_id TEXT PRIMARY KEY,
		jenis_pengujian_name TEXT NOT NULL,
		jenis_pengujian_description TEXT,
		jenis_pengujian_cluster_id TEXT NOT NULL,
		jenis_pengujian_created_at DATETIME,
		jenis_pengujian_updated_at DATETIME,
		UNIQUE (jenis_pengujian_name, jenis_pengujian_cluster_id)
	)`,
	`CREATE TABLE parameters (
		parameter_id TEXT PRIMARY KEY,
		parameter_name TEXT NOT NULL,
		parameter_acuan TEXT,
		parameter_harga NUMERIC NOT NULL DEFAULT 0,
		parameter_satuan TEXT,
		parameter_jenis_pengujian_id TEXT NOT NULL,
		parameter_created_at DATETIME,
		parameter_updated_at DATETIME
	)`,
	`CREATE TABLE peralatan (
		peralatan_id TEXT PRIMARY KEY,
		peralatan_name TEXT NOT NULL,
		peralatan_status TEXT NOT NULL DEFAULT 'AVAILABLE',
		peralatan_serial_number TEXT,
		peralatan_tanggal_kalibrasi DATETIME,
		peralatan_lokasi_penyimpanan TEXT,
		peralatan_keterangan TEXT,
		peralatan_created_at DATETIME,
		peralatan_updated_at DATETIME
	)`,
	`CREATE TABLE parameter_peralatan (
		parameter_peralatan_id TEXT PRIMARY KEY,
		parameter_peralatan_parameter_id TEXT NOT NULL,
		parameter_peralatan_peralatan_id TEXT NOT NULL,
		parameter_peralatan_jumlah INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE pegawai (
		pegawai_id TEXT PRIMARY KEY,
		pegawai_nama TEXT NOT NULL,
		pegawai_jabatan TEXT,
		pegawai_status TEXT NOT NULL DEFAULT 'SIAP',
		pegawai_created_at DATETIME,
		pegawai_updated_at DATETIME
	)`,
	`CREATE TABLE pengujian (
		pengujian_id TEXT PRIMARY KEY,
		pengujian_nomor TEXT NOT NULL,
		pengujian_user_id TEXT NOT NULL,
		pengujian_jenis_pengujian_id TEXT NOT NULL,
		pengujian_total_amount NUMERIC NOT NULL DEFAULT 0,
		pengujian_order_id TEXT,
		pengujian_tanggal DATETIME,
		pengujian_lokasi TEXT,
		pengujian_catatan TEXT,
		pengujian_company TEXT,
		pengujian_address TEXT,
		pengujian_status TEXT NOT NULL DEFAULT 'PENDING',
		pengujian_created_at DATETIME,
		pengujian_updated_at DATETIME
	)`,
	`CREATE TABLE pengujian_items (
		pengujian_item_id TEXT PRIMARY KEY,
		pengujian_item_pengujian_id TEXT NOT NULL,
		pengujian_item_parameter_id TEXT NOT NULL,
		pengujian_item_quantity INTEGER NOT NULL DEFAULT 1,
		pengujian_item_price NUMERIC NOT NULL,
		pengujian_item_subtotal NUMERIC NOT NULL,
		pengujian_item_location TEXT,
		pengujian_item_hasil TEXT,
		pengujian_item_keterangan TEXT
	)`,
	`CREATE TABLE orders (
		order_id TEXT PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		order_user_id TEXT NOT NULL,
		order_pengujian_id TEXT NOT NULL UNIQUE,
		order_total_amount NUMERIC NOT NULL DEFAULT 0,
		order_company TEXT,
		order_address TEXT,
		order_contact_person TEXT,
		order_phone TEXT,
		order_company_logo TEXT,
		order_status TEXT NOT NULL DEFAULT 'PENDING',
		order_notes TEXT,
		order_penawaran_file TEXT,
		order_surat_persetujuan_file TEXT,
		order_persetujuan_status TEXT,
		order_persetujuan_rejection_reason TEXT,
		order_invoice_file TEXT,
		order_invoice_number TEXT,
		order_bukti_bayar_file TEXT,
		order_payment_status TEXT,
		order_payment_rejection_reason TEXT,
		order_created_at DATETIME,
		order_updated_at DATETIME
	)`,
	`CREATE TABLE order_items (
		order_item_id TEXT PRIMARY KEY,
		order_item_order_id TEXT NOT NULL,
		order_item_parameter_id TEXT NOT NULL,
		order_item_quantity INTEGER NOT NULL DEFAULT 1,
		order_item_price NUMERIC NOT NULL,
		order_item_subtotal NUMERIC NOT NULL,
		order_item_location TEXT
	)`,
	`CREATE TABLE worksheets (
		worksheet_id TEXT PRIMARY KEY,
		worksheet_nomor TEXT NOT NULL,
		worksheet_pengujian_id TEXT NOT NULL UNIQUE,
		worksheet_pegawai_utama_id TEXT,
		worksheet_pegawai_pendamping_id TEXT,
		worksheet_status TEXT NOT NULL DEFAULT 'DRAFT',
		worksheet_tanggal_mulai DATETIME,
		worksheet_tanggal_selesai DATETIME,
		worksheet_catatan TEXT,
		worksheet_days_count INTEGER,
		worksheet_personnel_count INTEGER,
		worksheet_consumables TEXT,
		worksheet_peralatan_digunakan TEXT,
		worksheet_created_at DATETIME,
		worksheet_updated_at DATETIME
	)`,
	`CREATE TABLE worksheet_items (
		worksheet_item_id TEXT PRIMARY KEY,
		worksheet_item_worksheet_id TEXT NOT NULL,
		worksheet_item_parameter_id TEXT NOT NULL,
		worksheet_item_location TEXT,
		worksheet_item_quantity INTEGER NOT NULL DEFAULT 1,
		worksheet_item_satuan TEXT,
		worksheet_item_nilai TEXT,
		worksheet_item_keterangan TEXT,
		worksheet_item_is_ready INTEGER
	)`,
}

// Open membuka sqlite in-memory dengan skema lengkap.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	for _, ddl := range schema {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("buat skema: %v", err)
		}
	}
	return db
}
