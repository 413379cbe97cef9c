// file: internals/features/worksheets/dto/worksheet_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
   REQUEST: submit (upsert idempoten)
   ========================================================= */

// SubmitWorksheetRequest meng-upsert worksheet milik satu pengujian:
// ada → diperbarui, belum ada → dibuat (item dimaterialisasi dari
// pengujian se-order).
type SubmitWorksheetRequest struct {
	PengujianID uuid.UUID `json:"pengujian_id" validate:"required"`

	PegawaiUtamaID      *uuid.UUID `json:"pegawai_utama_id"`
	PegawaiPendampingID *uuid.UUID `json:"pegawai_pendamping_id"`

	TanggalMulai   *string `json:"tanggal_mulai" validate:"omitempty,datetime=2006-01-02"`
	TanggalSelesai *string `json:"tanggal_selesai" validate:"omitempty,datetime=2006-01-02"`

	Catatan        *string `json:"catatan"`
	DaysCount      *int    `json:"days_count" validate:"omitempty,min=0"`
	PersonnelCount *int    `json:"personnel_count" validate:"omitempty,min=0"`
	Consumables    *string `json:"consumables"`

	// peralatanId → siap dibawa
	PeralatanDigunakan map[string]bool `json:"peralatan_digunakan"`
}

/* =========================================================
   REQUEST: partial update worksheet
   ========================================================= */

type UpdateWorksheetRequest struct {
	// overwrite bebas selama nilainya enum yang dikenal
	Status *string `json:"status"`

	PegawaiUtamaID      PatchField[uuid.UUID] `json:"pegawai_utama_id"`
	PegawaiPendampingID PatchField[uuid.UUID] `json:"pegawai_pendamping_id"`

	TanggalMulai   PatchField[string] `json:"tanggal_mulai"`
	TanggalSelesai PatchField[string] `json:"tanggal_selesai"`

	Catatan        PatchField[string] `json:"catatan"`
	DaysCount      PatchField[int]    `json:"days_count"`
	PersonnelCount PatchField[int]    `json:"personnel_count"`
	Consumables    PatchField[string] `json:"consumables"`

	PeralatanDigunakan map[string]bool `json:"peralatan_digunakan"`
}

/* =========================================================
   REQUEST: partial update item
   ========================================================= */

type UpdateWorksheetItemRequest struct {
	Satuan     PatchField[string] `json:"satuan"`
	Nilai      PatchField[string] `json:"nilai"`
	Keterangan PatchField[string] `json:"keterangan"`
	IsReady    PatchField[bool]   `json:"is_ready"`
}
