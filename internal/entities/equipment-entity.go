package entities

import "github.com/aarondl/null/v8"

type Equipment struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	SerieNumber string      `json:"serieNumber"`
	Type        string      `json:"type"`
	Description null.String `json:"description"`
}

func (e Equipment) GetID() uint64 { return e.ID }
