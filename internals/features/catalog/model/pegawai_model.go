// file: internals/features/catalog/model/pegawai_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status kesiapan pegawai lab
const (
	PegawaiStatusSiap    = "SIAP"
	PegawaiStatusSPT     = "SPT"
	PegawaiStatusStandby = "STANDBY"
	PegawaiStatusCuti    = "CUTI"
)

var ValidPegawaiStatus = map[string]bool{
	PegawaiStatusSiap:    true,
	PegawaiStatusSPT:     true,
	PegawaiStatusStandby: true,
	PegawaiStatusCuti:    true,
}

/* =========================
   Model: pegawai
   ========================= */

type Pegawai struct {
	PegawaiID      uuid.UUID `json:"pegawai_id" gorm:"column:pegawai_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PegawaiNama    string    `json:"pegawai_nama" gorm:"column:pegawai_nama;size:160;not null"`
	PegawaiJabatan *string   `json:"pegawai_jabatan,omitempty" gorm:"column:pegawai_jabatan;size:120"`
	PegawaiStatus  string    `json:"pegawai_status" gorm:"column:pegawai_status;type:varchar(20);not null;default:'SIAP'"`

	PegawaiCreatedAt time.Time `json:"pegawai_created_at" gorm:"column:pegawai_created_at;autoCreateTime"`
	PegawaiUpdatedAt time.Time `json:"pegawai_updated_at" gorm:"column:pegawai_updated_at;autoUpdateTime"`
}

func (Pegawai) TableName() string { return "pegawai" }
