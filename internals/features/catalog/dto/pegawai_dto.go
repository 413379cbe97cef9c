// file: internals/features/catalog/dto/pegawai_dto.go
package dto

import (
	"fmt"

	model "tepian_backend/internals/features/catalog/model"
	helper "tepian_backend/internals/helpers"
)

type CreatePegawaiRequest struct {
	PegawaiNama    string  `json:"pegawai_nama" validate:"required,max=160"`
	PegawaiJabatan *string `json:"pegawai_jabatan"`
	PegawaiStatus  *string `json:"pegawai_status"`
}

func (r *CreatePegawaiRequest) ToModel() (*model.Pegawai, error) {
	p := &model.Pegawai{
		PegawaiNama:    r.PegawaiNama,
		PegawaiJabatan: helper.NormalizeOptionalText(r.PegawaiJabatan),
		PegawaiStatus:  model.PegawaiStatusSiap,
	}
	if r.PegawaiStatus != nil {
		if !model.ValidPegawaiStatus[*r.PegawaiStatus] {
			return nil, fmt.Errorf("status pegawai %q tidak dikenal", *r.PegawaiStatus)
		}
		p.PegawaiStatus = *r.PegawaiStatus
	}
	return p, nil
}

type PatchPegawaiRequest struct {
	PegawaiNama    PatchField[string] `json:"pegawai_nama"`
	PegawaiJabatan PatchField[string] `json:"pegawai_jabatan"`
	PegawaiStatus  PatchField[string] `json:"pegawai_status"`
}

func (r *PatchPegawaiRequest) ApplyTo(p *model.Pegawai) error {
	if r.PegawaiNama.Set && r.PegawaiNama.Value != nil {
		p.PegawaiNama = *r.PegawaiNama.Value
	}
	if r.PegawaiJabatan.Set {
		p.PegawaiJabatan = helper.NormalizeOptionalText(r.PegawaiJabatan.Value)
	}
	if r.PegawaiStatus.Set && r.PegawaiStatus.Value != nil {
		if !model.ValidPegawaiStatus[*r.PegawaiStatus.Value] {
			return fmt.Errorf("status pegawai %q tidak dikenal", *r.PegawaiStatus.Value)
		}
		p.PegawaiStatus = *r.PegawaiStatus.Value
	}
	return nil
}
