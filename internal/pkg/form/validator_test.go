//go:build unit

package form_test

import (
	"errors"
	"testing"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/pkg/errs"
	"rovera-leads/internal/pkg/form"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func validInput() form.Input {
	return form.Input{
		Nome:          "Ana Souza",
		Email:         "ana@example.com",
		Telefone:      "(11) 98765-4321",
		ValorDesejado: "R$ 50.000,00",
		Parcelas:      60,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*form.Input)
		want   form.Errors
	}{
		{
			name:   "valid form",
			mutate: func(*form.Input) {},
			want:   form.Errors{},
		},
		{
			name:   "blank name",
			mutate: func(in *form.Input) { in.Nome = "   " },
			want:   form.Errors{form.FieldNome: form.MsgNomeObrigatorio},
		},
		{
			name:   "short name",
			mutate: func(in *form.Input) { in.Nome = "Al" },
			want:   form.Errors{form.FieldNome: form.MsgNomeCurto},
		},
		{
			name:   "blank email",
			mutate: func(in *form.Input) { in.Email = "" },
			want:   form.Errors{form.FieldEmail: form.MsgEmailObrigatorio},
		},
		{
			name:   "malformed email",
			mutate: func(in *form.Input) { in.Email = "ana@example" },
			want:   form.Errors{form.FieldEmail: form.MsgEmailInvalido},
		},
		{
			name:   "empty phone is accepted",
			mutate: func(in *form.Input) { in.Telefone = "" },
			want:   form.Errors{},
		},
		{
			name:   "short phone",
			mutate: func(in *form.Input) { in.Telefone = "(11) 9876-543" },
			want:   form.Errors{form.FieldTelefone: form.MsgTelefoneInvalido},
		},
		{
			name:   "phone without digits",
			mutate: func(in *form.Input) { in.Telefone = "n/a" },
			want:   form.Errors{form.FieldTelefone: form.MsgTelefoneInvalido},
		},
		{
			name:   "missing amount",
			mutate: func(in *form.Input) { in.ValorDesejado = "" },
			want:   form.Errors{form.FieldValorDesejado: form.MsgValorDesejadoObrigatorio},
		},
		{
			name:   "amount below minimum",
			mutate: func(in *form.Input) { in.ValorDesejado = "R$ 99,99" },
			want:   form.Errors{form.FieldValorDesejado: form.MsgValorMinimo},
		},
		{
			name:   "amount at minimum",
			mutate: func(in *form.Input) { in.ValorDesejado = "10000" },
			want:   form.Errors{},
		},
		{
			name:   "amount without digits",
			mutate: func(in *form.Input) { in.ValorDesejado = "abc" },
			want:   form.Errors{form.FieldValorDesejado: form.MsgValorMinimo},
		},
		{
			name:   "installments outside offered steps",
			mutate: func(in *form.Input) { in.Parcelas = 24 },
			want:   form.Errors{form.FieldParcelas: form.MsgParcelasInvalidas},
		},
		{
			name: "several failures at once",
			mutate: func(in *form.Input) {
				in.Nome = ""
				in.Email = "x"
				in.ValorDesejado = "1"
			},
			want: form.Errors{
				form.FieldNome:          form.MsgNomeObrigatorio,
				form.FieldEmail:         form.MsgEmailInvalido,
				form.FieldValorDesejado: form.MsgValorMinimo,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			got := form.Validate(in)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want) > 0, got.HasErrors())
		})
	}
}

func TestMsgParcelasInvalidas(t *testing.T) {
	assert.Equal(t, "Número de parcelas inválido. Opções: 12, 48, 60, 72, 84, 96 ou 120", form.MsgParcelasInvalidas)
}

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want form.Errors
	}{
		{
			name: "negative amount",
			err:  lead.ErrAmountBelowMinimum,
			want: form.Errors{form.FieldValorDesejado: form.MsgValorMinimo},
		},
		{
			name: "joined and marked",
			err: errs.Mark(errors.Join(lead.ErrNameTooShort, lead.ErrInvalidInstallments, lead.ErrNegativeDerivedAmount),
				errs.New("rejected")),
			want: form.Errors{
				form.FieldNome:      form.MsgNomeCurto,
				form.FieldParcelas:  form.MsgParcelasInvalidas,
				form.FieldSimulacao: form.MsgSimulacaoNegativa,
			},
		},
		{
			name: "wrapped",
			err:  errs.Wrap(errors.Join(lead.ErrInvalidEmail, lead.ErrInvalidPhone), "new lead"),
			want: form.Errors{
				form.FieldEmail:    form.MsgEmailInvalido,
				form.FieldTelefone: form.MsgTelefoneInvalido,
			},
		},
		{
			name: "unrelated error",
			err:  errs.New("boom"),
			want: form.Errors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, form.FromDomainError(tt.err)); diff != "" {
				t.Errorf("FromDomainError() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
