package lead

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinNameLength  = 3
	MinPhoneDigits = 11

	// MinDesiredAmount is R$ 100,00.
	MinDesiredAmount Money = 10000
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// allowedInstallments is the set offered by the simulation slider.
var allowedInstallments = []Installments{12, 48, 60, 72, 84, 96, 120}

// Money is an amount in centavos.
type Money int64

func (m Money) Cents() int64 { return int64(m) }

// Reais splits the amount into whole reais and the remaining centavos.
func (m Money) Reais() (int64, int64) {
	return int64(m) / 100, int64(m) % 100
}

func NewDesiredAmount(cents int64) (Money, error) {
	if Money(cents) < MinDesiredAmount {
		return 0, ErrAmountBelowMinimum
	}
	return Money(cents), nil
}

type Installments int

func (n Installments) Int() int { return int(n) }

func (n Installments) IsValid() bool {
	return slices.Contains(allowedInstallments, n)
}

func NewInstallments(n int) (Installments, error) {
	inst := Installments(n)
	if !inst.IsValid() {
		return 0, ErrInvalidInstallments
	}
	return inst, nil
}

// AllowedInstallments returns a copy of the offered installment counts, ascending.
func AllowedInstallments() []Installments {
	return slices.Clone(allowedInstallments)
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < MinNameLength {
		return Name{}, ErrNameTooShort
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

// Phone holds digits only. The zero value is a valid "not informed" phone.
type Phone struct {
	digits string
}

func NewPhone(s string) (Phone, error) {
	digits := OnlyDigits(s)
	if digits == "" {
		return Phone{}, nil
	}
	if len(digits) < MinPhoneDigits {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{digits: digits}, nil
}

func (p Phone) String() string { return p.digits }

func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
