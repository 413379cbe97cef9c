// file: internals/features/catalog/model/jenis_pengujian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: jenis_pengujian
   ========================= */

// JenisPengujian adalah jenis uji di bawah sebuah cluster.
// Nama unik per cluster (bukan global).
type JenisPengujian struct {
	JenisPengujianID          uuid.UUID `json:"jenis_pengujian_id" gorm:"column:jenis_pengujian_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	JenisPengujianName        string    `json:"jenis_pengujian_name" gorm:"column:jenis_pengujian_name;size:160;not null;uniqueIndex:ux_jenis_pengujian_cluster_name"`
	JenisPengujianDescription *string   `json:"jenis_pengujian_description,omitempty" gorm:"column:jenis_pengujian_description;type:text"`
	JenisPengujianClusterID   uuid.UUID `json:"jenis_pengujian_cluster_id" gorm:"column:jenis_pengujian_cluster_id;type:uuid;not null;uniqueIndex:ux_jenis_pengujian_cluster_name;constraint:OnDelete:RESTRICT"`

	JenisPengujianCreatedAt time.Time `json:"jenis_pengujian_created_at" gorm:"column:jenis_pengujian_created_at;autoCreateTime"`
	JenisPengujianUpdatedAt time.Time `json:"jenis_pengujian_updated_at" gorm:"column:jenis_pengujian_updated_at;autoUpdateTime"`

	Cluster   *Cluster    `json:"cluster,omitempty" gorm:"foreignKey:JenisPengujianClusterID;references:ClusterID"`
	Parameter []Parameter `json:"parameter,omitempty" gorm:"foreignKey:ParameterJenisPengujianID"`
}

func (JenisPengujian) TableName() string { return "jenis_pengujian" }
