package lead

import (
	"errors"
	"strings"
	"time"
)

// Lead is a financing simulation submitted through the public form.
type Lead struct {
	id             string
	name           Name
	email          Email
	phone          Phone
	desiredAmount  Money
	installments   Installments
	perInstallment Money
	total          Money
	userEmail      string
	createdAt      time.Time
	updatedAt      time.Time
}

type NewLeadParams struct {
	Name           string
	Email          string
	Phone          string
	DesiredAmount  int64
	Installments   int
	PerInstallment int64
	Total          int64
	// UserEmail links the lead to a signed-in user; empty falls back to Email.
	UserEmail string
	Now       time.Time
}

// NewLead validates every field and returns all violations joined.
func NewLead(p NewLeadParams) (*Lead, error) {
	var errList []error

	name, err := NewName(p.Name)
	if err != nil {
		errList = append(errList, err)
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		errList = append(errList, err)
	}
	phone, err := NewPhone(p.Phone)
	if err != nil {
		errList = append(errList, err)
	}
	amount, err := NewDesiredAmount(p.DesiredAmount)
	if err != nil {
		errList = append(errList, err)
	}
	installments, err := NewInstallments(p.Installments)
	if err != nil {
		errList = append(errList, err)
	}
	if p.PerInstallment < 0 || p.Total < 0 {
		errList = append(errList, ErrNegativeDerivedAmount)
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}

	userEmail := strings.TrimSpace(p.UserEmail)
	if userEmail == "" {
		userEmail = email.String()
	}

	return &Lead{
		name:           name,
		email:          email,
		phone:          phone,
		desiredAmount:  amount,
		installments:   installments,
		perInstallment: Money(p.PerInstallment),
		total:          Money(p.Total),
		userEmail:      strings.ToLower(userEmail),
		createdAt:      p.Now,
		updatedAt:      p.Now,
	}, nil
}

type ReconstructParams struct {
	ID             string
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

// Reconstruct rebuilds a stored lead without re-validating it.
func Reconstruct(p ReconstructParams) *Lead {
	return &Lead{
		id:             p.ID,
		name:           Name{value: p.Name},
		email:          Email{value: p.Email},
		phone:          Phone{digits: p.Phone},
		desiredAmount:  Money(p.DesiredAmount),
		installments:   Installments(p.Installments),
		perInstallment: Money(p.PerInstallment),
		total:          Money(p.Total),
		userEmail:      p.UserEmail,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}

func (l *Lead) ID() string                 { return l.id }
func (l *Lead) Name() Name                 { return l.name }
func (l *Lead) Email() Email               { return l.email }
func (l *Lead) Phone() Phone               { return l.phone }
func (l *Lead) DesiredAmount() Money       { return l.desiredAmount }
func (l *Lead) Installments() Installments { return l.installments }
func (l *Lead) PerInstallment() Money      { return l.perInstallment }
func (l *Lead) Total() Money               { return l.total }
func (l *Lead) UserEmail() string          { return l.userEmail }
func (l *Lead) CreatedAt() time.Time       { return l.createdAt }
func (l *Lead) UpdatedAt() time.Time       { return l.updatedAt }
