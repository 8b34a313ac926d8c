package salary

import "errors"

var (
	ErrEmptyName       = errors.New("work name must not be empty")
	ErrNegativeBase    = errors.New("base amount must not be negative")
	ErrBonusOutOfRange = errors.New("bonus percentage must be between 0% and 200%")
	ErrSalaryAboveMax  = errors.New("final salary exceeds maximum allowed amount")
	ErrNoWorks         = errors.New("no work types registered")
)
