package dto

import "maintenance-console/internal/entities"

// OrderLineFormDTO is one row of the order lines sub-form.
type OrderLineFormDTO struct {
	OrderID uint64 `form:"orderID" json:"orderID" validate:"required,gt=0"`
	ItemID  uint64 `form:"itemID" json:"itemID" validate:"required,gt=0"`
	Amount  string `form:"amount" json:"amount" validate:"required,decimal"`
	Total   string `form:"total" json:"total" validate:"required,decimal"`
}

func (d OrderLineFormDTO) ToEntity(id uint64) entities.OrderLine {
	return entities.OrderLine{
		ID:      id,
		OrderID: d.OrderID,
		ItemID:  d.ItemID,
		Amount:  decimal(d.Amount),
		Total:   decimal(d.Total),
	}
}
