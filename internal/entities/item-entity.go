package entities

// Item is a part or a service that can be consumed by an order.
type Item struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

func (i Item) GetID() uint64 { return i.ID }
