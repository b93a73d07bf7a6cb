package form

import (
	"strconv"
	"strings"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/pkg/errs"
)

// Field keys used in validation results, matching the JSON names of the lead form.
const (
	FieldNome          = "nome"
	FieldEmail         = "email"
	FieldTelefone      = "telefone"
	FieldValorDesejado = "valorDesejado"
	FieldParcelas      = "parcelas"
	// not a form input; the installment values computed from the simulation
	FieldSimulacao = "simulacao"
)

const (
	MsgNomeObrigatorio          = "Nome é obrigatório"
	MsgNomeCurto                = "Nome deve ter pelo menos 3 caracteres"
	MsgEmailObrigatorio         = "E-mail é obrigatório"
	MsgEmailInvalido            = "E-mail inválido"
	MsgTelefoneInvalido         = "Telefone inválido"
	MsgValorDesejadoObrigatorio = "Valor desejado é obrigatório"
	MsgValorMinimo              = "Valor mínimo é R$ 100,00"
	MsgSimulacaoNegativa        = "Valores da simulação não podem ser negativos"
)

// MsgParcelasInvalidas names the terms on offer, e.g. "... 96 ou 120".
var MsgParcelasInvalidas = "Número de parcelas inválido. Opções: " + offeredTerms()

func offeredTerms() string {
	terms := lead.AllowedInstallments()
	parts := make([]string, len(terms))
	for i, n := range terms {
		parts[i] = strconv.Itoa(n.Int())
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], ", ") + " ou " + parts[last]
}

// domainRules pairs each lead rule with the field it reports on.
var domainRules = []struct {
	err   error
	field string
	msg   string
}{
	{err: lead.ErrNameTooShort, field: FieldNome, msg: MsgNomeCurto},
	{err: lead.ErrInvalidEmail, field: FieldEmail, msg: MsgEmailInvalido},
	{err: lead.ErrInvalidPhone, field: FieldTelefone, msg: MsgTelefoneInvalido},
	{err: lead.ErrAmountBelowMinimum, field: FieldValorDesejado, msg: MsgValorMinimo},
	{err: lead.ErrInvalidInstallments, field: FieldParcelas, msg: MsgParcelasInvalidas},
	{err: lead.ErrNegativeDerivedAmount, field: FieldSimulacao, msg: MsgSimulacaoNegativa},
}

// Input is the raw lead form as typed by the user. ValorDesejado may be masked.
type Input struct {
	Nome          string
	Email         string
	Telefone      string
	ValorDesejado string
	Parcelas      int
}

// Errors maps a field key to its message. Only failing fields are present.
type Errors map[string]string

func (e Errors) HasErrors() bool { return len(e) > 0 }

func ValidateNome(v string) string {
	if strings.TrimSpace(v) == "" {
		return MsgNomeObrigatorio
	}
	if _, err := lead.NewName(v); err != nil {
		return MsgNomeCurto
	}
	return ""
}

func ValidateEmail(v string) string {
	if strings.TrimSpace(v) == "" {
		return MsgEmailObrigatorio
	}
	if _, err := lead.NewEmail(v); err != nil {
		return MsgEmailInvalido
	}
	return ""
}

// ValidateTelefone accepts an empty phone.
func ValidateTelefone(v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	if _, err := lead.NewPhone(v); err != nil || Digits(v) == "" {
		return MsgTelefoneInvalido
	}
	return ""
}

// ValidateValorDesejado checks a masked or digits-only amount in centavos.
// Text without any digit is below the minimum.
func ValidateValorDesejado(v string) string {
	if strings.TrimSpace(v) == "" {
		return MsgValorDesejadoObrigatorio
	}
	cents, _ := ParseCurrency(v)
	if _, err := lead.NewDesiredAmount(cents); errs.Is(err, lead.ErrAmountBelowMinimum) {
		return MsgValorMinimo
	}
	return ""
}

func ValidateParcelas(n int) string {
	if _, err := lead.NewInstallments(n); err != nil {
		return MsgParcelasInvalidas
	}
	return ""
}

// Validate runs every field rule and collects the failures.
func Validate(in Input) Errors {
	result := Errors{}
	add := func(field, msg string) {
		if msg != "" {
			result[field] = msg
		}
	}
	add(FieldNome, ValidateNome(in.Nome))
	add(FieldEmail, ValidateEmail(in.Email))
	add(FieldTelefone, ValidateTelefone(in.Telefone))
	add(FieldValorDesejado, ValidateValorDesejado(in.ValorDesejado))
	add(FieldParcelas, ValidateParcelas(in.Parcelas))
	return result
}

// FromDomainError reports every lead rule that err, possibly joined or
// wrapped, says was broken.
func FromDomainError(err error) Errors {
	result := Errors{}
	for _, r := range domainRules {
		if errs.Is(err, r.err) {
			result[r.field] = r.msg
		}
	}
	return result
}
