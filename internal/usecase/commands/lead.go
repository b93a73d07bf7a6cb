package commands

//go:generate mockgen -source=lead.go -destination=../../../tests/mock/commands/lead_mock.go -package=commandsmock

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/infra"
	"rovera-leads/internal/pkg/clock"
	"rovera-leads/internal/pkg/errs"
	"rovera-leads/internal/pkg/form"
)

var (
	ErrMissingRequiredFields = errs.New("missing required lead fields")
	ErrLeadValidation        = errs.New("lead validation failed")
	ErrLeadStoreFailed       = errs.New("lead store operation failed")
	ErrLeadIDRequired        = errs.New("lead id required")
	ErrInvalidLeadID         = errs.New("malformed lead id")
	ErrLeadNotFound          = errs.New("lead does not exist")
)

// LeadValidationError lists the failing form fields with their messages.
type LeadValidationError struct {
	Fields form.Errors
	cause  error
}

func (e *LeadValidationError) Unwrap() error { return e.cause }

func (e *LeadValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid lead fields: " + strings.Join(keys, ", ")
}

type CreateLeadInput struct {
	Nome          string
	Email         string
	Telefone      string
	ValorDesejado int64
	Parcelas      int
	ValorParcela  *int64
	ValorTotal    *int64
	// UserEmail is the signed-in user, if any.
	UserEmail string
}

type CreateLeadResult struct {
	ID string
}

type LeadCommands interface {
	Create(ctx context.Context, in CreateLeadInput) (*CreateLeadResult, error)
	Delete(ctx context.Context, id string) error
}

type leadCommandsImpl struct {
	repo  LeadRepository
	clock clock.Clock
}

func NewLeadCommands(repo LeadRepository, clk clock.Clock) LeadCommands {
	return &leadCommandsImpl{repo: repo, clock: clk}
}

func (uc *leadCommandsImpl) Create(ctx context.Context, in CreateLeadInput) (*CreateLeadResult, error) {
	if strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.Email) == "" || in.ValorDesejado == 0 || in.Parcelas == 0 {
		return nil, ErrMissingRequiredFields
	}

	fieldErrs := form.Validate(form.Input{
		Nome:          in.Nome,
		Email:         in.Email,
		Telefone:      in.Telefone,
		ValorDesejado: strconv.FormatInt(in.ValorDesejado, 10),
		Parcelas:      in.Parcelas,
	})
	if fieldErrs.HasErrors() {
		return nil, errs.Mark(&LeadValidationError{Fields: fieldErrs}, ErrLeadValidation)
	}

	l, err := lead.NewLead(lead.NewLeadParams{
		Name:           in.Nome,
		Email:          in.Email,
		Phone:          in.Telefone,
		DesiredAmount:  in.ValorDesejado,
		Installments:   in.Parcelas,
		PerInstallment: valueOrZero(in.ValorParcela),
		Total:          valueOrZero(in.ValorTotal),
		UserEmail:      in.UserEmail,
		Now:            uc.clock.Now(),
	})
	if err != nil {
		verr := &LeadValidationError{Fields: form.FromDomainError(err), cause: err}
		return nil, errs.Mark(verr, ErrLeadValidation)
	}

	id, err := uc.repo.Insert(ctx, l)
	if err != nil {
		return nil, errs.Mark(err, ErrLeadStoreFailed)
	}
	return &CreateLeadResult{ID: id}, nil
}

func (uc *leadCommandsImpl) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrLeadIDRequired
	}

	err := uc.repo.DeleteByID(ctx, id)
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindInvalidID):
		return errs.Mark(err, ErrInvalidLeadID)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrLeadNotFound)
	default:
		return errs.Mark(err, ErrLeadStoreFailed)
	}
}

// absent derived values are stored as zero
func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
