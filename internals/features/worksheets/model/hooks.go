// file: internals/features/worksheets/model/hooks.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (m *Worksheet) BeforeCreate(tx *gorm.DB) error {
	if m.WorksheetID == uuid.Nil {
		m.WorksheetID = uuid.New()
	}
	return nil
}

func (m *WorksheetItem) BeforeCreate(tx *gorm.DB) error {
	if m.WorksheetItemID == uuid.Nil {
		m.WorksheetItemID = uuid.New()
	}
	return nil
}
