// file: internals/features/orders/dto/order_dto.go
package dto

import (
	"errors"
	"strings"

	model "tepian_backend/internals/features/orders/model"
)

var ErrInvalidOrderStatus = errors.New("Status order tidak valid")

/* =========================================================
   REQUEST: partial update (admin)
   ========================================================= */

type UpdateOrderRequest struct {
	// status override eksplisit; hanya divalidasi terhadap enum,
	// tidak lewat tabel transisi
	Status *string `json:"status"`

	Notes         PatchField[string] `json:"notes"`
	Company       PatchField[string] `json:"company"`
	Address       PatchField[string] `json:"address"`
	ContactPerson PatchField[string] `json:"contact_person"`
	Phone         PatchField[string] `json:"phone"`
}

func (r *UpdateOrderRequest) ApplyTo(m *model.Order) error {
	if r.Status != nil {
		s := strings.ToUpper(strings.TrimSpace(*r.Status))
		if !model.ValidOrderStatus[s] {
			return ErrInvalidOrderStatus
		}
		m.OrderStatus = s
	}
	applyPatch(&m.OrderNotes, r.Notes)
	applyPatch(&m.OrderCompany, r.Company)
	applyPatch(&m.OrderAddress, r.Address)
	applyPatch(&m.OrderContactPerson, r.ContactPerson)
	applyPatch(&m.OrderPhone, r.Phone)
	return nil
}

func applyPatch[T any](dst **T, p PatchField[T]) {
	if !p.Set {
		return
	}
	if p.Null {
		*dst = nil
		return
	}
	*dst = p.Value
}

/* =========================================================
   REQUEST: penolakan dokumen
   ========================================================= */

type RejectPersetujuanRequest struct {
	Reason *string `json:"reason"`
}

type RejectPaymentRequest struct {
	Reason *string `json:"reason"`
}

type ReviseOrderRequest struct {
	Note *string `json:"note"`
}
