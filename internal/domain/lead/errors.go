package lead

import "errors"

var (
	ErrNameTooShort          = errors.New("lead name must have at least 3 characters")
	ErrInvalidEmail          = errors.New("invalid lead email format")
	ErrInvalidPhone          = errors.New("lead phone must have at least 11 digits")
	ErrAmountBelowMinimum    = errors.New("desired amount below minimum")
	ErrInvalidInstallments   = errors.New("installment count not offered")
	ErrNegativeDerivedAmount = errors.New("derived installment values cannot be negative")
)
