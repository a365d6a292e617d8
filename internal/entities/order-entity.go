package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Order struct {
	ID           uint64    `json:"id"`
	EquipmentID  uint64    `json:"equipmentID"`
	TechnicianID uint64    `json:"technicianID"`
	Type         string    `json:"type"`
	Defect       string    `json:"defect"`
	Causes       string    `json:"causes"`
	Solution     string    `json:"solution"`
	Status       bool      `json:"status"` // true while the order is open
	DateInitOS   time.Time `json:"date_init_os"`
	DateEndOS    null.Time `json:"date_end_os"`
	Total        float64   `json:"total"`
}

func (o Order) GetID() uint64 { return o.ID }

func (o Order) IsOpen() bool { return o.Status }
