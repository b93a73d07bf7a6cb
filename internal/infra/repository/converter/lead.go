package converter

import (
	"time"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LeadDocument is the stored shape of a lead in the leads collection.
type LeadDocument struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Nome          string        `bson:"nome"`
	Email         string        `bson:"email"`
	Telefone      string        `bson:"telefone"`
	ValorDesejado int64         `bson:"valorDesejado"`
	Parcelas      int           `bson:"parcelas"`
	ValorParcela  int64         `bson:"valorParcela"`
	ValorTotal    int64         `bson:"valorTotal"`
	UserEmail     string        `bson:"userEmail"`
	CreatedAt     time.Time     `bson:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt"`
}

// LeadToDocument leaves ID empty so the driver assigns one.
func LeadToDocument(l *lead.Lead) LeadDocument {
	return LeadDocument{
		Nome:          l.Name().String(),
		Email:         l.Email().String(),
		Telefone:      l.Phone().String(),
		ValorDesejado: l.DesiredAmount().Cents(),
		Parcelas:      l.Installments().Int(),
		ValorParcela:  l.PerInstallment().Cents(),
		ValorTotal:    l.Total().Cents(),
		UserEmail:     l.UserEmail(),
		CreatedAt:     l.CreatedAt(),
		UpdatedAt:     l.UpdatedAt(),
	}
}

func DocumentToView(d LeadDocument) *queries.LeadView {
	return &queries.LeadView{
		ID:            d.ID.Hex(),
		Nome:          d.Nome,
		Email:         d.Email,
		Telefone:      d.Telefone,
		ValorDesejado: d.ValorDesejado,
		Parcelas:      d.Parcelas,
		ValorParcela:  d.ValorParcela,
		ValorTotal:    d.ValorTotal,
		UserEmail:     d.UserEmail,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
