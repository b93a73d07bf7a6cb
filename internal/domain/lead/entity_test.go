//go:build unit

package lead_test

import (
	"testing"
	"time"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LeadBuilder)
	errIs  error
}

func TestLead(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewLeadBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Empty(t, actual.ID())
		assert.Equal(t, "Ana Souza", actual.Name().String())
		assert.Equal(t, "ana@example.com", actual.Email().String())
		assert.Equal(t, "11987654321", actual.Phone().String())
		assert.Equal(t, int64(5000000), actual.DesiredAmount().Cents())
		assert.Equal(t, 60, actual.Installments().Int())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.LeadBuilder) { b.WithName("") },
				errIs:  lead.ErrNameTooShort,
			},
			{
				name:   "two characters",
				mutate: func(b *builder.LeadBuilder) { b.WithName("Al") },
				errIs:  lead.ErrNameTooShort,
			},
			{
				name:   "padding does not count",
				mutate: func(b *builder.LeadBuilder) { b.WithName("  Al  ") },
				errIs:  lead.ErrNameTooShort,
			},
			{
				name:   "three characters",
				mutate: func(b *builder.LeadBuilder) { b.WithName("Ana") },
			},
			{
				name:   "accented characters count once",
				mutate: func(b *builder.LeadBuilder) { b.WithName("Zoë") },
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing at sign",
				mutate: func(b *builder.LeadBuilder) { b.WithEmail("ana.example.com") },
				errIs:  lead.ErrInvalidEmail,
			},
			{
				name:   "missing dot in domain",
				mutate: func(b *builder.LeadBuilder) { b.WithEmail("ana@example") },
				errIs:  lead.ErrInvalidEmail,
			},
			{
				name:   "inner whitespace",
				mutate: func(b *builder.LeadBuilder) { b.WithEmail("ana souza@example.com") },
				errIs:  lead.ErrInvalidEmail,
			},
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.LeadBuilder) { b.WithEmail("  ana@example.com ") },
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "phone is optional",
				mutate: func(b *builder.LeadBuilder) { b.WithPhone("") },
			},
			{
				name:   "ten digits",
				mutate: func(b *builder.LeadBuilder) { b.WithPhone("(11) 8765-4321") },
				errIs:  lead.ErrInvalidPhone,
			},
			{
				name:   "masked eleven digits",
				mutate: func(b *builder.LeadBuilder) { b.WithPhone("(11) 98765-4321") },
			},
		})
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum",
				mutate: func(b *builder.LeadBuilder) { b.WithDesiredAmount(9999) },
				errIs:  lead.ErrAmountBelowMinimum,
			},
			{
				name:   "exactly minimum",
				mutate: func(b *builder.LeadBuilder) { b.WithDesiredAmount(10000) },
			},
			{
				name:   "negative derived values",
				mutate: func(b *builder.LeadBuilder) { b.PerInstallment = -1 },
				errIs:  lead.ErrNegativeDerivedAmount,
			},
		})
	})

	t.Run("installments validation", func(t *testing.T) {
		for _, n := range lead.AllowedInstallments() {
			_, err := builder.NewLeadBuilder().WithInstallments(n.Int()).BuildDomain()
			assert.NoError(t, err, "installments %d", n)
		}
		runCases(t, []testCase{
			{
				name:   "zero installments",
				mutate: func(b *builder.LeadBuilder) { b.WithInstallments(0) },
				errIs:  lead.ErrInvalidInstallments,
			},
			{
				name:   "value between offered steps",
				mutate: func(b *builder.LeadBuilder) { b.WithInstallments(36) },
				errIs:  lead.ErrInvalidInstallments,
			},
		})
	})

	t.Run("all violations are reported", func(t *testing.T) {
		_, err := builder.NewLeadBuilder().With(func(b *builder.LeadBuilder) {
			b.WithName("A").WithEmail("bad").WithDesiredAmount(1)
		}).BuildDomain()

		require.Error(t, err)
		assert.ErrorIs(t, err, lead.ErrNameTooShort)
		assert.ErrorIs(t, err, lead.ErrInvalidEmail)
		assert.ErrorIs(t, err, lead.ErrAmountBelowMinimum)
	})

	t.Run("user email falls back to lead email", func(t *testing.T) {
		actual, err := builder.NewLeadBuilder().WithEmail("Ana@Example.com").WithUserEmail("").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "ana@example.com", actual.UserEmail())
		assert.Equal(t, "Ana@Example.com", actual.Email().String())
	})

	t.Run("session email wins over lead email", func(t *testing.T) {
		actual, err := builder.NewLeadBuilder().WithUserEmail("owner@example.com").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "owner@example.com", actual.UserEmail())
	})

	t.Run("reconstruct keeps stored values", func(t *testing.T) {
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		actual := lead.Reconstruct(lead.ReconstructParams{
			ID:            "65f0c0ffee0000000000abcd",
			Name:          "Bo",
			DesiredAmount: 12345,
			Installments:  12,
			CreatedAt:     created,
			UpdatedAt:     created,
		})

		assert.Equal(t, "65f0c0ffee0000000000abcd", actual.ID())
		assert.Equal(t, "Bo", actual.Name().String())
		assert.Equal(t, lead.Money(12345), actual.DesiredAmount())
		assert.Equal(t, lead.Installments(12), actual.Installments())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewLeadBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
