//go:build unit || e2e

package builder

import (
	"time"

	"rovera-leads/internal/domain/lead"
	reqdto "rovera-leads/internal/handler/dto/request"
	"rovera-leads/internal/infra/repository/converter"
	"rovera-leads/internal/usecase/commands"
	"rovera-leads/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type LeadBuilder struct {
	Name           string
	Email          string
	Phone          string
	DesiredAmount  int64
	Installments   int
	PerInstallment int64
	Total          int64
	UserEmail      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewLeadBuilder() *LeadBuilder {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	sim := lead.Simulate(5000000, 60)
	return &LeadBuilder{
		Name:           "Ana Souza",
		Email:          "ana@example.com",
		Phone:          "(11) 98765-4321",
		DesiredAmount:  5000000,
		Installments:   60,
		PerInstallment: sim.PerInstallment.Cents(),
		Total:          sim.Total.Cents(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *LeadBuilder) With(mutate func(*LeadBuilder)) *LeadBuilder {
	mutate(b)
	return b
}

func (b *LeadBuilder) WithName(name string) *LeadBuilder {
	b.Name = name
	return b
}

func (b *LeadBuilder) WithEmail(email string) *LeadBuilder {
	b.Email = email
	return b
}

func (b *LeadBuilder) WithPhone(phone string) *LeadBuilder {
	b.Phone = phone
	return b
}

// WithDesiredAmount keeps the derived values in step with the amount.
func (b *LeadBuilder) WithDesiredAmount(cents int64) *LeadBuilder {
	b.DesiredAmount = cents
	b.resimulate()
	return b
}

func (b *LeadBuilder) WithInstallments(n int) *LeadBuilder {
	b.Installments = n
	b.resimulate()
	return b
}

func (b *LeadBuilder) WithUserEmail(email string) *LeadBuilder {
	b.UserEmail = email
	return b
}

func (b *LeadBuilder) WithCreatedAt(t time.Time) *LeadBuilder {
	b.CreatedAt = t
	b.UpdatedAt = t
	return b
}

func (b *LeadBuilder) resimulate() {
	sim := lead.Simulate(lead.Money(b.DesiredAmount), lead.Installments(b.Installments))
	b.PerInstallment = sim.PerInstallment.Cents()
	b.Total = sim.Total.Cents()
}

// Build methods
func (b *LeadBuilder) BuildDomain() (*lead.Lead, error) {
	return lead.NewLead(lead.NewLeadParams{
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		DesiredAmount:  b.DesiredAmount,
		Installments:   b.Installments,
		PerInstallment: b.PerInstallment,
		Total:          b.Total,
		UserEmail:      b.UserEmail,
		Now:            b.CreatedAt,
	})
}

// BuildDocument returns the stored form with a fresh ObjectID.
func (b *LeadBuilder) BuildDocument() converter.LeadDocument {
	userEmail := b.UserEmail
	if userEmail == "" {
		userEmail = b.Email
	}
	return converter.LeadDocument{
		ID:            bson.NewObjectID(),
		Nome:          b.Name,
		Email:         b.Email,
		Telefone:      lead.OnlyDigits(b.Phone),
		ValorDesejado: b.DesiredAmount,
		Parcelas:      b.Installments,
		ValorParcela:  b.PerInstallment,
		ValorTotal:    b.Total,
		UserEmail:     userEmail,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *LeadBuilder) BuildView() *queries.LeadView {
	return converter.DocumentToView(b.BuildDocument())
}

func (b *LeadBuilder) BuildCreateRequestDTO() reqdto.CreateLeadRequest {
	per := reqdto.NumericValue(b.PerInstallment)
	total := reqdto.NumericValue(b.Total)
	return reqdto.CreateLeadRequest{
		Nome:          b.Name,
		Email:         b.Email,
		Telefone:      b.Phone,
		ValorDesejado: reqdto.NumericValue(b.DesiredAmount),
		Parcelas:      reqdto.NumericValue(b.Installments),
		ValorParcela:  &per,
		ValorTotal:    &total,
		UserEmail:     b.UserEmail,
	}
}

func (b *LeadBuilder) BuildCreateInput() commands.CreateLeadInput {
	per, total := b.PerInstallment, b.Total
	return commands.CreateLeadInput{
		Nome:          b.Name,
		Email:         b.Email,
		Telefone:      b.Phone,
		ValorDesejado: b.DesiredAmount,
		Parcelas:      b.Installments,
		ValorParcela:  &per,
		ValorTotal:    &total,
		UserEmail:     b.UserEmail,
	}
}
