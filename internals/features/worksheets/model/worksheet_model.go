// file: internals/features/worksheets/model/worksheet_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	catalogModel "tepian_backend/internals/features/catalog/model"
)

/* =========================
   Status worksheet
   ========================= */

const (
	WorksheetStatusDraft      = "DRAFT"
	WorksheetStatusInProgress = "IN_PROGRESS"
	WorksheetStatusCompleted  = "COMPLETED"
	WorksheetStatusApproved   = "APPROVED"
	WorksheetStatusRejected   = "REJECTED"
)

var ValidWorksheetStatus = map[string]bool{
	WorksheetStatusDraft:      true,
	WorksheetStatusInProgress: true,
	WorksheetStatusCompleted:  true,
	WorksheetStatusApproved:   true,
	WorksheetStatusRejected:   true,
}

/* =========================
   MODEL: worksheets
   ========================= */

// Worksheet adalah lembar kerja lapangan satu pengujian. Satu
// pengujian maksimal punya satu worksheet (unique index), tapi isinya
// merangkum item dari semua pengujian yang menumpang order yang sama.
type Worksheet struct {
	WorksheetID          uuid.UUID `json:"worksheet_id" gorm:"column:worksheet_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	WorksheetNomor       string    `json:"worksheet_nomor" gorm:"column:worksheet_nomor;size:40;index;not null"`
	WorksheetPengujianID uuid.UUID `json:"worksheet_pengujian_id" gorm:"column:worksheet_pengujian_id;type:uuid;not null;uniqueIndex"`

	WorksheetPegawaiUtamaID      *uuid.UUID `json:"worksheet_pegawai_utama_id,omitempty" gorm:"column:worksheet_pegawai_utama_id;type:uuid"`
	WorksheetPegawaiPendampingID *uuid.UUID `json:"worksheet_pegawai_pendamping_id,omitempty" gorm:"column:worksheet_pegawai_pendamping_id;type:uuid"`

	WorksheetStatus string `json:"worksheet_status" gorm:"column:worksheet_status;type:varchar(20);not null;default:'DRAFT'"`

	WorksheetTanggalMulai   *time.Time `json:"worksheet_tanggal_mulai,omitempty" gorm:"column:worksheet_tanggal_mulai;type:date"`
	WorksheetTanggalSelesai *time.Time `json:"worksheet_tanggal_selesai,omitempty" gorm:"column:worksheet_tanggal_selesai;type:date"`

	WorksheetCatatan *string `json:"worksheet_catatan,omitempty" gorm:"column:worksheet_catatan;type:text"`

	// ringkasan logistik lapangan
	WorksheetDaysCount      *int    `json:"worksheet_days_count,omitempty" gorm:"column:worksheet_days_count"`
	WorksheetPersonnelCount *int    `json:"worksheet_personnel_count,omitempty" gorm:"column:worksheet_personnel_count"`
	WorksheetConsumables    *string `json:"worksheet_consumables,omitempty" gorm:"column:worksheet_consumables;type:text"`

	// daftar id peralatan yang dibawa, disimpan sebagai JSONB
	WorksheetPeralatanDigunakan datatypes.JSON `json:"worksheet_peralatan_digunakan,omitempty" gorm:"column:worksheet_peralatan_digunakan;type:jsonb"`

	WorksheetCreatedAt time.Time `json:"worksheet_created_at" gorm:"column:worksheet_created_at;autoCreateTime"`
	WorksheetUpdatedAt time.Time `json:"worksheet_updated_at" gorm:"column:worksheet_updated_at;autoUpdateTime"`

	Items []WorksheetItem `json:"items,omitempty" gorm:"foreignKey:WorksheetItemWorksheetID"`

	PegawaiUtama      *catalogModel.Pegawai `json:"pegawai_utama,omitempty" gorm:"foreignKey:WorksheetPegawaiUtamaID;references:PegawaiID"`
	PegawaiPendamping *catalogModel.Pegawai `json:"pegawai_pendamping,omitempty" gorm:"foreignKey:WorksheetPegawaiPendampingID;references:PegawaiID"`
}

func (Worksheet) TableName() string {
	return "worksheets"
}

/* =========================
   MODEL: worksheet_items
   ========================= */

type WorksheetItem struct {
	WorksheetItemID          uuid.UUID `json:"worksheet_item_id" gorm:"column:worksheet_item_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	WorksheetItemWorksheetID uuid.UUID `json:"worksheet_item_worksheet_id" gorm:"column:worksheet_item_worksheet_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	WorksheetItemParameterID uuid.UUID `json:"worksheet_item_parameter_id" gorm:"column:worksheet_item_parameter_id;type:uuid;not null;index"`

	WorksheetItemLocation *string `json:"worksheet_item_location,omitempty" gorm:"column:worksheet_item_location;size:160"`
	WorksheetItemQuantity int     `json:"worksheet_item_quantity" gorm:"column:worksheet_item_quantity;not null;default:1"`

	// diisi petugas di lapangan
	WorksheetItemSatuan     *string `json:"worksheet_item_satuan,omitempty" gorm:"column:worksheet_item_satuan;size:40"`
	WorksheetItemNilai      *string `json:"worksheet_item_nilai,omitempty" gorm:"column:worksheet_item_nilai;size:120"`
	WorksheetItemKeterangan *string `json:"worksheet_item_keterangan,omitempty" gorm:"column:worksheet_item_keterangan;type:text"`
	WorksheetItemIsReady    *bool   `json:"worksheet_item_is_ready,omitempty" gorm:"column:worksheet_item_is_ready"`

	Parameter *catalogModel.Parameter `json:"parameter,omitempty" gorm:"foreignKey:WorksheetItemParameterID;references:ParameterID"`
}

func (WorksheetItem) TableName() string {
	return "worksheet_items"
}
