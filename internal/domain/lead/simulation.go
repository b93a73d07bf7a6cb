package lead

// Simulation is a zero-interest installment plan.
type Simulation struct {
	Amount         Money
	Installments   Installments
	PerInstallment Money
	Total          Money
}

// Simulate splits amount into n equal installments, rounding half up to the centavo.
// Total always equals amount; use Breakdown for a schedule that sums exactly.
func Simulate(amount Money, n Installments) Simulation {
	sim := Simulation{Amount: amount, Installments: n, Total: amount}
	if n <= 0 {
		return sim
	}
	sim.PerInstallment = Money((int64(amount) + int64(n)/2) / int64(n))
	return sim
}

// Breakdown returns one value per installment, summing to Total.
// The leftover centavos go to the first installments.
func (s Simulation) Breakdown() []Money {
	if s.Installments <= 0 {
		return nil
	}
	n := int64(s.Installments)
	base := int64(s.Total) / n
	rest := int64(s.Total) % n

	out := make([]Money, n)
	for i := range out {
		out[i] = Money(base)
		if int64(i) < rest {
			out[i]++
		}
	}
	return out
}
