// file: internals/features/catalog/model/hooks.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ID dibangkitkan di aplikasi; default gen_random_uuid() di kolom
// tinggal jadi jaring pengaman untuk insert di luar GORM.

func (m *Cluster) BeforeCreate(tx *gorm.DB) error {
	if m.ClusterID == uuid.Nil {
		m.ClusterID = uuid.New()
	}
	return nil
}

func (m *JenisPengujian) BeforeCreate(tx *gorm.DB) error {
	if m.JenisPengujianID == uuid.Nil {
		m.JenisPengujianID = uuid.New()
	}
	return nil
}

func (m *Parameter) BeforeCreate(tx *gorm.DB) error {
	if m.ParameterID == uuid.Nil {
		m.ParameterID = uuid.New()
	}
	return nil
}

func (m *ParameterPeralatan) BeforeCreate(tx *gorm.DB) error {
	if m.ParameterPeralatanID == uuid.Nil {
		m.ParameterPeralatanID = uuid.New()
	}
	return nil
}

func (m *Peralatan) BeforeCreate(tx *gorm.DB) error {
	if m.PeralatanID == uuid.Nil {
		m.PeralatanID = uuid.New()
	}
	return nil
}

func (m *Pegawai) BeforeCreate(tx *gorm.DB) error {
	if m.PegawaiID == uuid.Nil {
		m.PegawaiID = uuid.New()
	}
	return nil
}
