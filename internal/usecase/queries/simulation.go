package queries

//go:generate mockgen -source=simulation.go -destination=../../../tests/mock/queries/simulation_mock.go -package=queriesmock

import (
	"errors"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/pkg/errs"
)

var ErrInvalidSimulation = errs.New("invalid simulation parameters")

type SimulationQueries interface {
	Simulate(amountCents int64, installments int) (*SimulationView, error)
}

type simulationQueriesImpl struct{}

func NewSimulationQueries() SimulationQueries {
	return simulationQueriesImpl{}
}

func (simulationQueriesImpl) Simulate(amountCents int64, installments int) (*SimulationView, error) {
	amount, amountErr := lead.NewDesiredAmount(amountCents)
	n, termErr := lead.NewInstallments(installments)
	if err := errors.Join(amountErr, termErr); err != nil {
		return nil, errs.Mark(err, ErrInvalidSimulation)
	}

	sim := lead.Simulate(amount, n)
	parts := sim.Breakdown()
	schedule := make([]int64, len(parts))
	for i, p := range parts {
		schedule[i] = p.Cents()
	}

	return &SimulationView{
		ValorDesejado: sim.Amount.Cents(),
		Parcelas:      sim.Installments.Int(),
		ValorParcela:  sim.PerInstallment.Cents(),
		ValorTotal:    sim.Total.Cents(),
		Schedule:      schedule,
	}, nil
}
