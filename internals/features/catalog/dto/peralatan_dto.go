// file: internals/features/catalog/dto/peralatan_dto.go
package dto

import (
	"fmt"
	"time"

	model "tepian_backend/internals/features/catalog/model"
	helper "tepian_backend/internals/helpers"
)

type CreatePeralatanRequest struct {
	PeralatanName              string  `json:"peralatan_name" validate:"required,max=160"`
	PeralatanStatus            *string `json:"peralatan_status"`
	PeralatanSerialNumber      *string `json:"peralatan_serial_number"`
	PeralatanTanggalKalibrasi  *string `json:"peralatan_tanggal_kalibrasi" validate:"omitempty,datetime=2006-01-02"`
	PeralatanLokasiPenyimpanan *string `json:"peralatan_lokasi_penyimpanan"`
	PeralatanKeterangan        *string `json:"peralatan_keterangan"`
}

func (r *CreatePeralatanRequest) ToModel() (*model.Peralatan, error) {
	p := &model.Peralatan{
		PeralatanName:              r.PeralatanName,
		PeralatanStatus:            model.PeralatanStatusAvailable,
		PeralatanSerialNumber:      helper.NormalizeOptionalText(r.PeralatanSerialNumber),
		PeralatanLokasiPenyimpanan: helper.NormalizeOptionalText(r.PeralatanLokasiPenyimpanan),
		PeralatanKeterangan:        helper.NormalizeOptionalText(r.PeralatanKeterangan),
	}
	if r.PeralatanStatus != nil {
		if !model.ValidPeralatanStatus[*r.PeralatanStatus] {
			return nil, fmt.Errorf("status peralatan %q tidak dikenal", *r.PeralatanStatus)
		}
		p.PeralatanStatus = *r.PeralatanStatus
	}
	if r.PeralatanTanggalKalibrasi != nil && *r.PeralatanTanggalKalibrasi != "" {
		t, err := time.Parse("2006-01-02", *r.PeralatanTanggalKalibrasi)
		if err != nil {
			return nil, err
		}
		p.PeralatanTanggalKalibrasi = &t
	}
	return p, nil
}

type PatchPeralatanRequest struct {
	PeralatanName              PatchField[string] `json:"peralatan_name"`
	PeralatanStatus            PatchField[string] `json:"peralatan_status"`
	PeralatanSerialNumber      PatchField[string] `json:"peralatan_serial_number"`
	PeralatanTanggalKalibrasi  PatchField[string] `json:"peralatan_tanggal_kalibrasi"`
	PeralatanLokasiPenyimpanan PatchField[string] `json:"peralatan_lokasi_penyimpanan"`
	PeralatanKeterangan        PatchField[string] `json:"peralatan_keterangan"`
}

func (r *PatchPeralatanRequest) ApplyTo(p *model.Peralatan) error {
	if r.PeralatanName.Set && r.PeralatanName.Value != nil {
		p.PeralatanName = *r.PeralatanName.Value
	}
	if r.PeralatanStatus.Set && r.PeralatanStatus.Value != nil {
		if !model.ValidPeralatanStatus[*r.PeralatanStatus.Value] {
			return fmt.Errorf("status peralatan %q tidak dikenal", *r.PeralatanStatus.Value)
		}
		p.PeralatanStatus = *r.PeralatanStatus.Value
	}
	if r.PeralatanSerialNumber.Set {
		p.PeralatanSerialNumber = helper.NormalizeOptionalText(r.PeralatanSerialNumber.Value)
	}
	if r.PeralatanTanggalKalibrasi.Set {
		if r.PeralatanTanggalKalibrasi.Null || r.PeralatanTanggalKalibrasi.Value == nil || *r.PeralatanTanggalKalibrasi.Value == "" {
			p.PeralatanTanggalKalibrasi = nil
		} else {
			t, err := time.Parse("2006-01-02", *r.PeralatanTanggalKalibrasi.Value)
			if err != nil {
				return err
			}
			p.PeralatanTanggalKalibrasi = &t
		}
	}
	if r.PeralatanLokasiPenyimpanan.Set {
		p.PeralatanLokasiPenyimpanan = helper.NormalizeOptionalText(r.PeralatanLokasiPenyimpanan.Value)
	}
	if r.PeralatanKeterangan.Set {
		p.PeralatanKeterangan = helper.NormalizeOptionalText(r.PeralatanKeterangan.Value)
	}
	return nil
}
