package request

import (
	"rovera-leads/internal/usecase/commands"
)

type CreateLeadRequest struct {
	Nome          string        `json:"nome"`
	Email         string        `json:"email"`
	Telefone      string        `json:"telefone"`
	ValorDesejado NumericValue  `json:"valorDesejado" swaggertype:"integer"`
	Parcelas      NumericValue  `json:"parcelas" swaggertype:"integer"`
	ValorParcela  *NumericValue `json:"valorParcela,omitempty" swaggertype:"integer"`
	ValorTotal    *NumericValue `json:"valorTotal,omitempty" swaggertype:"integer"`
	// accepted for compatibility; the session email takes precedence
	UserEmail string `json:"userEmail,omitempty"`
}

// ToInput links the lead to sessionEmail when the caller is signed in.
func (r *CreateLeadRequest) ToInput(sessionEmail string) commands.CreateLeadInput {
	userEmail := sessionEmail
	if userEmail == "" {
		userEmail = r.UserEmail
	}
	return commands.CreateLeadInput{
		Nome:          r.Nome,
		Email:         r.Email,
		Telefone:      r.Telefone,
		ValorDesejado: r.ValorDesejado.Int64(),
		Parcelas:      r.Parcelas.Int(),
		ValorParcela:  ptr(r.ValorParcela),
		ValorTotal:    ptr(r.ValorTotal),
		UserEmail:     userEmail,
	}
}

type ListLeadsQuery struct {
	Email  string `form:"email"`
	Search string `form:"search"`
	Page   string `form:"page"`
	Limit  string `form:"limit"`
}

type SimulationRequest struct {
	ValorDesejado NumericValue `json:"valorDesejado" swaggertype:"integer"`
	Parcelas      NumericValue `json:"parcelas" swaggertype:"integer"`
}
