// file: internals/features/pengujian/dto/pengujian_dto.go
package dto

import (
	"github.com/google/uuid"

	orderModel "tepian_backend/internals/features/orders/model"
	model "tepian_backend/internals/features/pengujian/model"
)

/* =========================================================
   REQUEST: Create (protokol paired-write pengujian+order)
   ========================================================= */

type CreatePengujianItemRequest struct {
	ParameterID uuid.UUID `json:"parameter_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"omitempty,min=1"`
	Location    *string   `json:"location"`
}

type CreatePengujianRequest struct {
	JenisPengujianID uuid.UUID                    `json:"jenis_pengujian_id" validate:"required"`
	Items            []CreatePengujianItemRequest `json:"items" validate:"required,min=1,dive"`

	TanggalPengujian *string `json:"tanggal_pengujian" validate:"omitempty,datetime=2006-01-02"`
	Lokasi           *string `json:"lokasi"`
	Catatan          *string `json:"catatan"`

	// snapshot organisasi pemohon
	Company       string  `json:"company" validate:"required"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`

	// admin boleh membuat atas nama klien
	ClientUserID *uuid.UUID `json:"client_user_id"`

	// logo perusahaan: data-URI base64, opsional; gagal simpan = non-fatal
	Logo *string `json:"logo"`
}

/* =========================================================
   REQUEST: update hasil item
   ========================================================= */

type UpdatePengujianItemHasilRequest struct {
	Hasil      *string `json:"hasil"`
	Keterangan *string `json:"keterangan"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type CreatePengujianResponse struct {
	Pengujian *model.Pengujian  `json:"pengujian"`
	Order     *orderModel.Order `json:"order"`
}
