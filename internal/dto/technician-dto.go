package dto

import (
	"strings"

	"github.com/aarondl/null/v8"

	"maintenance-console/internal/entities"
)

type TechnicianFormDTO struct {
	Name        string      `form:"name" json:"name" validate:"required,min=3,max=70"`
	Email       string      `form:"email" json:"email" validate:"required,email"`
	Category    string      `form:"category" json:"category" validate:"required,min=3,max=70"`
	Description null.String `form:"description" json:"description" validate:"omitempty,max=500"`
}

func (d TechnicianFormDTO) ToEntity(id uint64) entities.Technician {
	return entities.Technician{
		ID:          id,
		Name:        strings.TrimSpace(d.Name),
		Email:       strings.TrimSpace(d.Email),
		Category:    strings.TrimSpace(d.Category),
		Description: nullIfBlank(d.Description),
	}
}

func TechnicianFormFromEntity(t entities.Technician) TechnicianFormDTO {
	return TechnicianFormDTO{
		Name:        t.Name,
		Email:       t.Email,
		Category:    t.Category,
		Description: t.Description,
	}
}
