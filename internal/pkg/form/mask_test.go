//go:build unit

package form_test

import (
	"strings"
	"testing"

	"rovera-leads/internal/pkg/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"11", "11"},
		{"119", "(11) 9"},
		{"1198765", "(11) 98765"},
		{"11987654", "(11) 98765-4"},
		{"11987654321", "(11) 98765-4321"},
		{"119876543210", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"tel: 11 98765 4321", "(11) 98765-4321"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, form.FormatPhone(tt.in))
		})
	}

	t.Run("digits survive formatting", func(t *testing.T) {
		all := "11987654321"
		for i := 0; i <= len(all); i++ {
			d := all[:i]
			assert.Equal(t, d, form.Digits(form.FormatPhone(d)))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, in := range []string{"", "1", "119", "11987654", "11987654321", "1198765432199"} {
			once := form.FormatPhone(in)
			assert.Equal(t, once, form.FormatPhone(once))
		}
	})
}

func TestFormatCurrency(t *testing.T) {
	t.Run("examples", func(t *testing.T) {
		assert.Equal(t, "", form.FormatCurrency(""))
		assert.Equal(t, "", form.FormatCurrency("abc"))
		assert.Equal(t, "R$ 0,05", form.FormatCurrency("5"))
		assert.Equal(t, "R$ 0,12", form.FormatCurrency("0012"))
		assert.Equal(t, "R$ 1,00", form.FormatCurrency("100"))
		assert.Equal(t, "R$ 100,00", form.FormatCurrency("10000"))
		assert.Equal(t, "R$ 1.234.567,89", form.FormatCurrency("123456789"))
	})

	t.Run("formatted amount parses back", func(t *testing.T) {
		for _, cents := range []int64{0, 1, 99, 100, 10000, 123456, 5000000, 123456789, 987654321012} {
			got, ok := form.ParseCurrency(form.FormatCents(cents))
			require.True(t, ok)
			assert.Equal(t, cents, got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, in := range []string{"5", "0012", "123456", "R$ 1.234,56", "99999999999"} {
			once := form.FormatCurrency(in)
			assert.Equal(t, once, form.FormatCurrency(once))
		}
	})

	t.Run("starts with currency symbol and uses comma for centavos", func(t *testing.T) {
		got := form.FormatCents(5000000)
		assert.True(t, strings.HasPrefix(got, "R$ "))
		assert.True(t, strings.HasSuffix(got, ",00"))
		assert.Equal(t, "5000000", form.Digits(got))
	})
}

func TestParseCurrency(t *testing.T) {
	got, ok := form.ParseCurrency("R$ 100,00")
	assert.True(t, ok)
	assert.Equal(t, int64(10000), got)

	_, ok = form.ParseCurrency("R$ ")
	assert.False(t, ok)

	got, ok = form.ParseCurrency("R$ 9.999.999.999.999.999,99")
	assert.True(t, ok)
	assert.Equal(t, int64(999999999999999999), got)

	got, ok = form.ParseCurrency("0000123")
	assert.True(t, ok)
	assert.Equal(t, int64(123), got)

	_, ok = form.ParseCurrency("R$ 12.345.678.901.234.567,89")
	assert.False(t, ok, "19 digits must not be truncated")
	assert.Equal(t, "", form.FormatCurrency("1234567890123456789"))
}
