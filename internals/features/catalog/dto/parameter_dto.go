// file: internals/features/catalog/dto/parameter_dto.go
package dto

import (
	"github.com/google/uuid"

	model "tepian_backend/internals/features/catalog/model"
	helper "tepian_backend/internals/helpers"
)

/* =========================================================
   Parameter
   ========================================================= */

type ParameterPeralatanInput struct {
	PeralatanID uuid.UUID `json:"peralatan_id" validate:"required"`
	Jumlah      int       `json:"jumlah" validate:"omitempty,min=1"`
}

type CreateParameterRequest struct {
	ParameterName             string                    `json:"parameter_name" validate:"required,max=160"`
	ParameterAcuan            *string                   `json:"parameter_acuan"`
	ParameterHarga            float64                   `json:"parameter_harga" validate:"min=0"`
	ParameterSatuan           *string                   `json:"parameter_satuan"`
	ParameterJenisPengujianID uuid.UUID                 `json:"parameter_jenis_pengujian_id" validate:"required"`
	Peralatan                 []ParameterPeralatanInput `json:"peralatan" validate:"omitempty,dive"`
}

func (r *CreateParameterRequest) ToModel() *model.Parameter {
	p := &model.Parameter{
		ParameterName:             r.ParameterName,
		ParameterAcuan:            helper.NormalizeOptionalText(r.ParameterAcuan),
		ParameterHarga:            r.ParameterHarga,
		ParameterSatuan:           helper.NormalizeOptionalText(r.ParameterSatuan),
		ParameterJenisPengujianID: r.ParameterJenisPengujianID,
	}
	for _, pp := range r.Peralatan {
		jumlah := pp.Jumlah
		if jumlah <= 0 {
			jumlah = 1
		}
		p.Peralatan = append(p.Peralatan, model.ParameterPeralatan{
			ParameterPeralatanPeralatanID: pp.PeralatanID,
			ParameterPeralatanJumlah:      jumlah,
		})
	}
	return p
}

type PatchParameterRequest struct {
	ParameterName             PatchField[string]    `json:"parameter_name"`
	ParameterAcuan            PatchField[string]    `json:"parameter_acuan"`
	ParameterHarga            PatchField[float64]   `json:"parameter_harga"`
	ParameterSatuan           PatchField[string]    `json:"parameter_satuan"`
	ParameterJenisPengujianID PatchField[uuid.UUID] `json:"parameter_jenis_pengujian_id"`
}

func (r *PatchParameterRequest) ApplyTo(p *model.Parameter) {
	if r.ParameterName.Set && r.ParameterName.Value != nil {
		p.ParameterName = *r.ParameterName.Value
	}
	if r.ParameterAcuan.Set {
		p.ParameterAcuan = helper.NormalizeOptionalText(r.ParameterAcuan.Value)
	}
	if r.ParameterHarga.Set && r.ParameterHarga.Value != nil {
		p.ParameterHarga = *r.ParameterHarga.Value
	}
	if r.ParameterSatuan.Set {
		p.ParameterSatuan = helper.NormalizeOptionalText(r.ParameterSatuan.Value)
	}
	if r.ParameterJenisPengujianID.Set && r.ParameterJenisPengujianID.Value != nil {
		p.ParameterJenisPengujianID = *r.ParameterJenisPengujianID.Value
	}
}
