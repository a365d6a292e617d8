package entities

// DashboardSummary holds the counters of the home page cards.
type DashboardSummary struct {
	Technicians uint64
	Equipments  uint64
	Items       uint64
}
