// file: internals/features/catalog/model/parameter_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: parameters
   ========================= */

// Parameter adalah satuan uji yang punya harga. Harga di sini adalah
// harga "hidup" — item pengujian menyimpan snapshot harga sendiri.
type Parameter struct {
	ParameterID               uuid.UUID `json:"parameter_id" gorm:"column:parameter_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ParameterName             string    `json:"parameter_name" gorm:"column:parameter_name;size:160;not null"`
	ParameterAcuan            *string   `json:"parameter_acuan,omitempty" gorm:"column:parameter_acuan;size:255"`
	ParameterHarga            float64   `json:"parameter_harga" gorm:"column:parameter_harga;type:numeric(15,2);not null;default:0"`
	ParameterSatuan           *string   `json:"parameter_satuan,omitempty" gorm:"column:parameter_satuan;size:60"`
	ParameterJenisPengujianID uuid.UUID `json:"parameter_jenis_pengujian_id" gorm:"column:parameter_jenis_pengujian_id;type:uuid;not null;index;constraint:OnDelete:RESTRICT"`

	ParameterCreatedAt time.Time `json:"parameter_created_at" gorm:"column:parameter_created_at;autoCreateTime"`
	ParameterUpdatedAt time.Time `json:"parameter_updated_at" gorm:"column:parameter_updated_at;autoUpdateTime"`

	JenisPengujian *JenisPengujian      `json:"jenis_pengujian,omitempty" gorm:"foreignKey:ParameterJenisPengujianID;references:JenisPengujianID"`
	Peralatan      []ParameterPeralatan `json:"peralatan,omitempty" gorm:"foreignKey:ParameterPeralatanParameterID"`
}

func (Parameter) TableName() string { return "parameters" }

/* =========================
   Model: parameter_peralatan (join)
   ========================= */

// ParameterPeralatan menghubungkan parameter ke peralatan yang
// dibutuhkan, plus jumlah unitnya.
type ParameterPeralatan struct {
	ParameterPeralatanID          uuid.UUID `json:"parameter_peralatan_id" gorm:"column:parameter_peralatan_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ParameterPeralatanParameterID uuid.UUID `json:"parameter_peralatan_parameter_id" gorm:"column:parameter_peralatan_parameter_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	ParameterPeralatanPeralatanID uuid.UUID `json:"parameter_peralatan_peralatan_id" gorm:"column:parameter_peralatan_peralatan_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	ParameterPeralatanJumlah      int       `json:"parameter_peralatan_jumlah" gorm:"column:parameter_peralatan_jumlah;not null;default:1"`

	Peralatan *Peralatan `json:"peralatan,omitempty" gorm:"foreignKey:ParameterPeralatanPeralatanID;references:PeralatanID"`
}

func (ParameterPeralatan) TableName() string { return "parameter_peralatan" }
