package dto

import (
	"strings"

	"github.com/aarondl/null/v8"

	"maintenance-console/internal/entities"
)

// EquipmentFormDTO is the equipment form as posted by the browser.
type EquipmentFormDTO struct {
	Name        string      `form:"name" json:"name" validate:"required,min=3,max=70"`
	SerieNumber string      `form:"serieNumber" json:"serieNumber" validate:"required,min=3,max=30"`
	Type        string      `form:"type" json:"type" validate:"required,min=3,max=70,equipment_type"`
	Description null.String `form:"description" json:"description" validate:"omitempty,max=500"`
}

func (d EquipmentFormDTO) ToEntity(id uint64) entities.Equipment {
	return entities.Equipment{
		ID:          id,
		Name:        strings.TrimSpace(d.Name),
		SerieNumber: strings.TrimSpace(d.SerieNumber),
		Type:        d.Type,
		Description: nullIfBlank(d.Description),
	}
}

func EquipmentFormFromEntity(e entities.Equipment) EquipmentFormDTO {
	return EquipmentFormDTO{
		Name:        e.Name,
		SerieNumber: e.SerieNumber,
		Type:        e.Type,
		Description: e.Description,
	}
}
