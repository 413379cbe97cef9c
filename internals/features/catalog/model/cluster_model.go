// file: internals/features/catalog/model/cluster_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: clusters
   ========================= */

// Cluster adalah level teratas katalog pengujian
// (cluster → jenis pengujian → parameter).
type Cluster struct {
	ClusterID          uuid.UUID `json:"cluster_id" gorm:"column:cluster_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ClusterName        string    `json:"cluster_name" gorm:"column:cluster_name;size:120;uniqueIndex;not null"`
	ClusterDescription *string   `json:"cluster_description,omitempty" gorm:"column:cluster_description;type:text"`
	ClusterIcon        *string   `json:"cluster_icon,omitempty" gorm:"column:cluster_icon;size:255"`
	ClusterIsActive    bool      `json:"cluster_is_active" gorm:"column:cluster_is_active;not null;default:true"`

	ClusterCreatedAt time.Time `json:"cluster_created_at" gorm:"column:cluster_created_at;autoCreateTime"`
	ClusterUpdatedAt time.Time `json:"cluster_updated_at" gorm:"column:cluster_updated_at;autoUpdateTime"`

	JenisPengujian []JenisPengujian `json:"jenis_pengujian,omitempty" gorm:"foreignKey:JenisPengujianClusterID"`
}

func (Cluster) TableName() string { return "clusters" }
