package response

import (
	"time"

	"rovera-leads/internal/pkg/form"
	"rovera-leads/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type LeadResponse struct {
	ID                     string    `json:"id"`
	Nome                   string    `json:"nome"`
	Email                  string    `json:"email"`
	Telefone               string    `json:"telefone"`
	ValorDesejado          int64     `json:"valorDesejado"`
	ValorDesejadoFormatado string    `json:"valorDesejadoFormatado"`
	Parcelas               int       `json:"parcelas"`
	ValorParcela           int64     `json:"valorParcela"`
	ValorTotal             int64     `json:"valorTotal"`
	UserEmail              string    `json:"userEmail"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func FromLeadView(v *queries.LeadView) *LeadResponse {
	if v == nil {
		return nil
	}
	var res LeadResponse
	_ = copier.Copy(&res, v)
	res.ValorDesejadoFormatado = form.FormatCents(v.ValorDesejado)
	return &res
}

type LeadListResponse struct {
	Leads      []*LeadResponse `json:"leads"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

func FromLeadPage(p *queries.LeadPage) *LeadListResponse {
	leads := make([]*LeadResponse, len(p.Leads))
	for i, v := range p.Leads {
		leads[i] = FromLeadView(v)
	}
	return &LeadListResponse{
		Leads:      leads,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

type CreateLeadResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SimulationResponse struct {
	ValorDesejado         int64   `json:"valorDesejado"`
	Parcelas              int     `json:"parcelas"`
	ValorParcela          int64   `json:"valorParcela"`
	ValorTotal            int64   `json:"valorTotal"`
	ValorParcelaFormatado string  `json:"valorParcelaFormatado"`
	ValorTotalFormatado   string  `json:"valorTotalFormatado"`
	Parcelamento          []int64 `json:"parcelamento"`
}

func FromSimulationView(v *queries.SimulationView) *SimulationResponse {
	return &SimulationResponse{
		ValorDesejado:         v.ValorDesejado,
		Parcelas:              v.Parcelas,
		ValorParcela:          v.ValorParcela,
		ValorTotal:            v.ValorTotal,
		ValorParcelaFormatado: form.FormatCents(v.ValorParcela),
		ValorTotalFormatado:   form.FormatCents(v.ValorTotal),
		Parcelamento:          v.Schedule,
	}
}
