// file: internals/features/catalog/model/peralatan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status peralatan — informasional, tidak pernah mengunci booking.
const (
	PeralatanStatusAvailable   = "AVAILABLE"
	PeralatanStatusInUse       = "IN_USE"
	PeralatanStatusMaintenance = "MAINTENANCE"
	PeralatanStatusDamaged     = "DAMAGED"
)

var ValidPeralatanStatus = map[string]bool{
	PeralatanStatusAvailable:   true,
	PeralatanStatusInUse:       true,
	PeralatanStatusMaintenance: true,
	PeralatanStatusDamaged:     true,
}

/* =========================
   Model: peralatan
   ========================= */

type Peralatan struct {
	PeralatanID              uuid.UUID  `json:"peralatan_id" gorm:"column:peralatan_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PeralatanName            string     `json:"peralatan_name" gorm:"column:peralatan_name;size:160;not null"`
	PeralatanStatus          string     `json:"peralatan_status" gorm:"column:peralatan_status;type:varchar(20);not null;default:'AVAILABLE'"`
	PeralatanSerialNumber    *string    `json:"peralatan_serial_number,omitempty" gorm:"column:peralatan_serial_number;size:120"`
	PeralatanTanggalKalibrasi *time.Time `json:"peralatan_tanggal_kalibrasi,omitempty" gorm:"column:peralatan_tanggal_kalibrasi;type:date"`
	PeralatanLokasiPenyimpanan *string   `json:"peralatan_lokasi_penyimpanan,omitempty" gorm:"column:peralatan_lokasi_penyimpanan;size:160"`
	PeralatanKeterangan      *string    `json:"peralatan_keterangan,omitempty" gorm:"column:peralatan_keterangan;type:text"`

	PeralatanCreatedAt time.Time `json:"peralatan_created_at" gorm:"column:peralatan_created_at;autoCreateTime"`
	PeralatanUpdatedAt time.Time `json:"peralatan_updated_at" gorm:"column:peralatan_updated_at;autoUpdateTime"`
}

func (Peralatan) TableName() string { return "peralatan" }
