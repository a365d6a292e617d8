package dto

import (
	"strings"

	"maintenance-console/internal/entities"
)

// ItemFormDTO keeps numbers as typed so "12,50" and an empty input can be told
// apart from zero.
type ItemFormDTO struct {
	Name   string `form:"name" json:"name" validate:"required,min=3,max=70"`
	Price  string `form:"price" json:"price" validate:"required,decimal"`
	Amount string `form:"amount" json:"amount" validate:"required,decimal"`
}

func (d ItemFormDTO) ToEntity(id uint64) entities.Item {
	return entities.Item{
		ID:     id,
		Name:   strings.TrimSpace(d.Name),
		Price:  decimal(d.Price),
		Amount: decimal(d.Amount),
	}
}

func ItemFormFromEntity(i entities.Item) ItemFormDTO {
	return ItemFormDTO{
		Name:   i.Name,
		Price:  formatDecimal(i.Price),
		Amount: formatDecimal(i.Amount),
	}
}
