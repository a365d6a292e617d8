package entities

// OrderLine is one item consumed by an order.
type OrderLine struct {
	ID      uint64  `json:"id"`
	OrderID uint64  `json:"orderID"`
	ItemID  uint64  `json:"itemID"`
	Amount  float64 `json:"amount"`
	Total   float64 `json:"total"`
}

func (l OrderLine) GetID() uint64 { return l.ID }
