// file: internals/features/catalog/dto/cluster_dto.go
package dto

import (
	model "tepian_backend/internals/features/catalog/model"
	helper "tepian_backend/internals/helpers"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateClusterRequest struct {
	ClusterName        string  `json:"cluster_name" validate:"required,max=120"`
	ClusterDescription *string `json:"cluster_description"`
	ClusterIcon        *string `json:"cluster_icon"`
	ClusterIsActive    *bool   `json:"cluster_is_active"`
}

func (r *CreateClusterRequest) ToModel() *model.Cluster {
	cl := &model.Cluster{
		ClusterName:        r.ClusterName,
		ClusterDescription: helper.NormalizeOptionalText(r.ClusterDescription),
		ClusterIcon:        helper.NormalizeOptionalText(r.ClusterIcon),
		ClusterIsActive:    true,
	}
	if r.ClusterIsActive != nil {
		cl.ClusterIsActive = *r.ClusterIsActive
	}
	return cl
}

/* =========================================================
   REQUEST: Patch (partial — hanya key yang dikirim yang disentuh)
   ========================================================= */

type PatchClusterRequest struct {
	ClusterName        PatchField[string] `json:"cluster_name"`
	ClusterDescription PatchField[string] `json:"cluster_description"`
	ClusterIcon        PatchField[string] `json:"cluster_icon"`
	ClusterIsActive    PatchField[bool]   `json:"cluster_is_active"`
}

func (r *PatchClusterRequest) ApplyTo(cl *model.Cluster) {
	if r.ClusterName.Set && r.ClusterName.Value != nil {
		cl.ClusterName = *r.ClusterName.Value
	}
	if r.ClusterDescription.Set {
		cl.ClusterDescription = helper.NormalizeOptionalText(r.ClusterDescription.Value)
	}
	if r.ClusterIcon.Set {
		cl.ClusterIcon = helper.NormalizeOptionalText(r.ClusterIcon.Value)
	}
	if r.ClusterIsActive.Set && r.ClusterIsActive.Value != nil {
		cl.ClusterIsActive = *r.ClusterIsActive.Value
	}
}
