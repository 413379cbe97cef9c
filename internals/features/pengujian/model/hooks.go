// file: internals/features/pengujian/model/hooks.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (m *Pengujian) BeforeCreate(tx *gorm.DB) error {
	if m.PengujianID == uuid.Nil {
		m.PengujianID = uuid.New()
	}
	return nil
}

func (m *PengujianItem) BeforeCreate(tx *gorm.DB) error {
	if m.PengujianItemID == uuid.Nil {
		m.PengujianItemID = uuid.New()
	}
	return nil
}
