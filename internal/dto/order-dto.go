package dto

import (
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/validation"
)

// OrderFormDTO is the service order form. Dates use the html date input
// format.
type OrderFormDTO struct {
	EquipmentID  uint64 `form:"equipmentID" json:"equipmentID" validate:"required,gt=0"`
	TechnicianID uint64 `form:"technicianID" json:"technicianID" validate:"required,gt=0"`
	Type         string `form:"type" json:"type" validate:"required,min=5,max=20,order_type"`
	Defect       string `form:"defect" json:"defect" validate:"required,min=3,max=150"`
	Causes       string `form:"causes" json:"causes" validate:"required,min=3,max=150"`
	Solution     string `form:"solution" json:"solution" validate:"required,min=3,max=150"`
	Status       bool   `form:"status" json:"status"`
	DateInitOS   string `form:"date_init_os" json:"date_init_os" validate:"required,datetime=2006-01-02"`
	DateEndOS    string `form:"date_end_os" json:"date_end_os" validate:"omitempty,datetime=2006-01-02,not_before=DateInitOS"`
	Total        string `form:"total" json:"total" validate:"required,decimal"`
}

func (d OrderFormDTO) ToEntity(id uint64) entities.Order {
	start, _ := time.Parse(validation.DateLayout, d.DateInitOS)

	var end null.Time
	if t, err := time.Parse(validation.DateLayout, d.DateEndOS); err == nil {
		end = null.TimeFrom(t)
	}

	return entities.Order{
		ID:           id,
		EquipmentID:  d.EquipmentID,
		TechnicianID: d.TechnicianID,
		Type:         d.Type,
		Defect:       strings.TrimSpace(d.Defect),
		Causes:       strings.TrimSpace(d.Causes),
		Solution:     strings.TrimSpace(d.Solution),
		Status:       d.Status,
		DateInitOS:   start,
		DateEndOS:    end,
		Total:        decimal(d.Total),
	}
}

func OrderFormFromEntity(o entities.Order) OrderFormDTO {
	form := OrderFormDTO{
		EquipmentID:  o.EquipmentID,
		TechnicianID: o.TechnicianID,
		Type:         o.Type,
		Defect:       o.Defect,
		Causes:       o.Causes,
		Solution:     o.Solution,
		Status:       o.Status,
		Total:        formatDecimal(o.Total),
	}
	if !o.DateInitOS.IsZero() {
		form.DateInitOS = o.DateInitOS.Format(validation.DateLayout)
	}
	if o.DateEndOS.Valid {
		form.DateEndOS = o.DateEndOS.Time.Format(validation.DateLayout)
	}
	return form
}

// NewOrderForm is the blank form of a new order; new orders start open.
func NewOrderForm() OrderFormDTO {
	return OrderFormDTO{Status: true}
}
