// file: internals/features/pengujian/model/pengujian_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	catalogModel "tepian_backend/internals/features/catalog/model"
)

/* =========================
   Model: pengujian
   ========================= */

// Pengujian adalah pengajuan uji dari klien: header + line item berharga.
// Selalu dibuat berpasangan 1:1 dengan sebuah Order dalam satu transaksi.
type Pengujian struct {
	PengujianID               uuid.UUID `json:"pengujian_id" gorm:"column:pengujian_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PengujianNomor            string    `json:"pengujian_nomor" gorm:"column:pengujian_nomor;size:40;index;not null"`
	PengujianUserID           uuid.UUID `json:"pengujian_user_id" gorm:"column:pengujian_user_id;type:uuid;not null;index"`
	PengujianJenisPengujianID uuid.UUID `json:"pengujian_jenis_pengujian_id" gorm:"column:pengujian_jenis_pengujian_id;type:uuid;not null;index"`
	PengujianTotalAmount      float64   `json:"pengujian_total_amount" gorm:"column:pengujian_total_amount;type:numeric(15,2);not null;default:0"`

	// back-reference ke order berpasangan; beberapa pengujian bisa
	// menumpang satu order ketika pengajuan dipecah per jenis pengujian
	PengujianOrderID *uuid.UUID `json:"pengujian_order_id,omitempty" gorm:"column:pengujian_order_id;type:uuid;index"`

	PengujianTanggal *time.Time `json:"pengujian_tanggal,omitempty" gorm:"column:pengujian_tanggal;type:date"`
	PengujianLokasi  *string    `json:"pengujian_lokasi,omitempty" gorm:"column:pengujian_lokasi;size:160"`
	PengujianCatatan *string    `json:"pengujian_catatan,omitempty" gorm:"column:pengujian_catatan;type:text"`

	// legacy: dipakai bila Order tidak menyimpan snapshot perusahaan
	PengujianCompany *string `json:"pengujian_company,omitempty" gorm:"column:pengujian_company;size:160"`
	PengujianAddress *string `json:"pengujian_address,omitempty" gorm:"column:pengujian_address;type:text"`

	PengujianStatus string `json:"pengujian_status" gorm:"column:pengujian_status;type:varchar(20);not null;default:'PENDING'"`

	PengujianCreatedAt time.Time `json:"pengujian_created_at" gorm:"column:pengujian_created_at;autoCreateTime"`
	PengujianUpdatedAt time.Time `json:"pengujian_updated_at" gorm:"column:pengujian_updated_at;autoUpdateTime"`

	Items []PengujianItem `json:"items,omitempty" gorm:"foreignKey:PengujianItemPengujianID"`
}

func (Pengujian) TableName() string { return "pengujian" }

/* =========================
   Model: pengujian_items
   ========================= */

// PengujianItem immutable setelah dibuat, kecuali field hasil
// (hasil/keterangan) yang diisi belakangan oleh lab.
type PengujianItem struct {
	PengujianItemID          uuid.UUID `json:"pengujian_item_id" gorm:"column:pengujian_item_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PengujianItemPengujianID uuid.UUID `json:"pengujian_item_pengujian_id" gorm:"column:pengujian_item_pengujian_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	PengujianItemParameterID uuid.UUID `json:"pengujian_item_parameter_id" gorm:"column:pengujian_item_parameter_id;type:uuid;not null;index"`
	PengujianItemQuantity    int       `json:"pengujian_item_quantity" gorm:"column:pengujian_item_quantity;not null;default:1"`
	PengujianItemPrice       float64   `json:"pengujian_item_price" gorm:"column:pengujian_item_price;type:numeric(15,2);not null"`
	PengujianItemSubtotal    float64   `json:"pengujian_item_subtotal" gorm:"column:pengujian_item_subtotal;type:numeric(15,2);not null"`
	PengujianItemLocation    *string   `json:"pengujian_item_location,omitempty" gorm:"column:pengujian_item_location;size:160"`

	// hasil uji (diisi belakangan)
	PengujianItemHasil      *string `json:"pengujian_item_hasil,omitempty" gorm:"column:pengujian_item_hasil;type:text"`
	PengujianItemKeterangan *string `json:"pengujian_item_keterangan,omitempty" gorm:"column:pengujian_item_keterangan;type:text"`

	Parameter *catalogModel.Parameter `json:"parameter,omitempty" gorm:"foreignKey:PengujianItemParameterID;references:ParameterID"`
}

func (PengujianItem) TableName() string { return "pengujian_items" }
