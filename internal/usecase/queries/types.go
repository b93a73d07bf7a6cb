package queries

import "time"

// LeadView is the read shape of a stored lead. Amounts are in centavos.
type LeadView struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	Email         string    `json:"email"`
	Telefone      string    `json:"telefone"`
	ValorDesejado int64     `json:"valorDesejado"`
	Parcelas      int       `json:"parcelas"`
	ValorParcela  int64     `json:"valorParcela"`
	ValorTotal    int64     `json:"valorTotal"`
	UserEmail     string    `json:"userEmail"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LeadSearch is a store-level page request: an offset window over the
// newest-first ordering, narrowed by free text.
type LeadSearch struct {
	Search string
	Skip   int64
	Limit  int64
}

type ListLeadsInput struct {
	Search string
	Page   int
	Limit  int
}

type LeadPage struct {
	Leads      []*LeadView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type SimulationView struct {
	ValorDesejado int64
	Parcelas      int
	ValorParcela  int64
	ValorTotal    int64
	// Schedule holds every installment; it sums to ValorTotal.
	Schedule []int64
}
