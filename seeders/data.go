package seeders

import "maintenance-console/internal/entities"

var techniciansData = []entities.Technician{
	{Name: "Ana Souza", Email: "ana.souza@example.com", Category: "Elétrica"},
	{Name: "Bruno Lima", Email: "bruno.lima@example.com", Category: "Mecânica"},
	{Name: "Carla Mendes", Email: "carla.mendes@example.com", Category: "Eletrônica"},
}

var equipmentsData = []entities.Equipment{
	{Name: "Torno CNC", SerieNumber: "TN-0001", Type: "Mecânico"},
	{Name: "Prensa hidráulica", SerieNumber: "PH-0107", Type: "Hidráulico"},
	{Name: "Compressor de ar", SerieNumber: "CA-2210", Type: "Pneumático"},
	{Name: "Painel de comando", SerieNumber: "PC-0042", Type: "Elétrico"},
}

var itemsData = []entities.Item{
	{Name: "Correia dentada", Price: 45.9, Amount: 12},
	{Name: "Rolamento 6204", Price: 18.5, Amount: 40},
	{Name: "Óleo hidráulico 20L", Price: 310, Amount: 6},
	{Name: "Mão de obra (hora)", Price: 120, Amount: 1000},
}

// demoOrder is a service order with its lines. Indexes point into the
// slices above.
type demoOrder struct {
	Technician, Equipment int
	Order                 entities.Order
	Lines                 []demoLine
}

type demoLine struct {
	Item          int
	Amount, Total float64
}

var ordersData = []demoOrder{
	{
		Technician: 1, Equipment: 0,
		Order: entities.Order{Type: "Corretiva", Defect: "Ruído no cabeçote", Causes: "Rolamento gasto", Solution: "Troca do rolamento", Status: true, Total: 157},
		Lines: []demoLine{{Item: 1, Amount: 2, Total: 37}, {Item: 3, Amount: 1, Total: 120}},
	},
	{
		Technician: 0, Equipment: 3,
		Order: entities.Order{Type: "Preventiva", Defect: "Revisão semestral", Causes: "Plano de manutenção", Solution: "Reaperto e limpeza", Status: false, Total: 240},
		Lines: []demoLine{{Item: 3, Amount: 2, Total: 240}},
	},
}
