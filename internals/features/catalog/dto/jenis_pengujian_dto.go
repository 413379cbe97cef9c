// file: internals/features/catalog/dto/jenis_pengujian_dto.go
package dto

import (
	"github.com/google/uuid"

	model "tepian_backend/internals/features/catalog/model"
	helper "tepian_backend/internals/helpers"
)

type CreateJenisPengujianRequest struct {
	JenisPengujianName        string    `json:"jenis_pengujian_name" validate:"required,max=160"`
	JenisPengujianDescription *string   `json:"jenis_pengujian_description"`
	JenisPengujianClusterID   uuid.UUID `json:"jenis_pengujian_cluster_id" validate:"required"`
}

func (r *CreateJenisPengujianRequest) ToModel() *model.JenisPengujian {
	return &model.JenisPengujian{
		JenisPengujianName:        r.JenisPengujianName,
		JenisPengujianDescription: helper.NormalizeOptionalText(r.JenisPengujianDescription),
		JenisPengujianClusterID:   r.JenisPengujianClusterID,
	}
}

type PatchJenisPengujianRequest struct {
	JenisPengujianName        PatchField[string]    `json:"jenis_pengujian_name"`
	JenisPengujianDescription PatchField[string]    `json:"jenis_pengujian_description"`
	JenisPengujianClusterID   PatchField[uuid.UUID] `json:"jenis_pengujian_cluster_id"`
}

func (r *PatchJenisPengujianRequest) ApplyTo(jp *model.JenisPengujian) {
	if r.JenisPengujianName.Set && r.JenisPengujianName.Value != nil {
		jp.JenisPengujianName = *r.JenisPengujianName.Value
	}
	if r.JenisPengujianDescription.Set {
		jp.JenisPengujianDescription = helper.NormalizeOptionalText(r.JenisPengujianDescription.Value)
	}
	if r.JenisPengujianClusterID.Set && r.JenisPengujianClusterID.Value != nil {
		jp.JenisPengujianClusterID = *r.JenisPengujianClusterID.Value
	}
}
