package entities

import "github.com/aarondl/null/v8"

type Technician struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Category    string      `json:"category"`
	Description null.String `json:"description"`
}

func (t Technician) GetID() uint64 { return t.ID }
