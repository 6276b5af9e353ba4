package handler

import (
	"fmt"

	"github.com/xw1nchester/brand-management-backend/internal/brand"
	"github.com/xw1nchester/brand-management-backend/pkg/types"
)

type BrandRequest struct {
	BrandName string            `json:"brandName" validate:"required,notblank,max=50" example:"Acme Pizza"`
	ChainID   types.IntOrString `json:"chainId" validate:"required,gt=0" swaggertype:"integer" example:"1"`
	IsActive  *bool             `json:"isActive,omitempty"`
}

func (br *BrandRequest) ToInput() brand.Input {
	return brand.Input{
		Name:     br.BrandName,
		ChainID:  br.ChainID.Int64(),
		IsActive: br.IsActive,
	}
}

var validationMessages = map[string]string{
	"brandName.required": "Brand name is required",
	"brandName.notblank": "Brand name is required",
	"brandName.max":      fmt.Sprintf("Brand name must not exceed %d characters", brand.MaxNameLength),
	"chainId.required":   "Chain ID (Company) is required",
	"chainId.gt":         "Chain ID (Company) is required",
}
