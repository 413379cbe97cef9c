// file: internals/features/orders/model/hooks.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (m *Order) BeforeCreate(tx *gorm.DB) error {
	if m.OrderID == uuid.Nil {
		m.OrderID = uuid.New()
	}
	return nil
}

func (m *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if m.OrderItemID == uuid.Nil {
		m.OrderItemID = uuid.New()
	}
	return nil
}
