//go:build unit

package queries_test

import (
	"testing"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/pkg/errs"
	"rovera-leads/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	q := queries.NewSimulationQueries()

	t.Run("schedule sums to the total", func(t *testing.T) {
		got, err := q.Simulate(10007, 12)
		require.NoError(t, err)

		assert.Equal(t, int64(10007), got.ValorDesejado)
		assert.Equal(t, 12, got.Parcelas)
		assert.Equal(t, int64(834), got.ValorParcela)
		assert.Equal(t, int64(10007), got.ValorTotal)
		require.Len(t, got.Schedule, 12)

		var sum int64
		for _, p := range got.Schedule {
			sum += p
		}
		assert.Equal(t, got.ValorTotal, sum)
	})

	t.Run("even split", func(t *testing.T) {
		got, err := q.Simulate(1200000, 12)
		require.NoError(t, err)

		want := make([]int64, 12)
		for i := range want {
			want[i] = 100000
		}
		if diff := cmp.Diff(want, got.Schedule); diff != "" {
			t.Errorf("schedule mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		for name, args := range map[string]struct {
			amount int64
			n      int
			causes []error
		}{
			"amount below minimum":       {amount: 9999, n: 12, causes: []error{lead.ErrAmountBelowMinimum}},
			"negative amount":            {amount: -50000, n: 12, causes: []error{lead.ErrAmountBelowMinimum}},
			"installments off the steps": {amount: 100000, n: 13, causes: []error{lead.ErrInvalidInstallments}},
			"both":                       {amount: 0, n: 0, causes: []error{lead.ErrAmountBelowMinimum, lead.ErrInvalidInstallments}},
		} {
			t.Run(name, func(t *testing.T) {
				got, err := q.Simulate(args.amount, args.n)
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, queries.ErrInvalidSimulation))
				for _, cause := range args.causes {
					assert.True(t, errs.Is(err, cause), "missing %v", cause)
				}
			})
		}
	})
}
