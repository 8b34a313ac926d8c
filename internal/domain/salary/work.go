package salary

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Work is one registered work type. The final salary is computed and
// validated at construction; a Work never exists in an invalid state and is
// immutable afterwards.
type Work struct {
	id          uuid.UUID
	name        string
	baseAmount  float64
	strategy    Strategy
	finalSalary float64
}

// NewWork validates the inputs, computes the final salary through the given
// strategy and checks it against the salary ceiling.
func NewWork(name string, baseAmount float64, strategy Strategy) (*Work, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if baseAmount < 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrNegativeBase, baseAmount)
	}

	final := strategy.Calculate(baseAmount)
	if final > MaxSalary {
		return nil, fmt.Errorf("%w: computed %.2f, maximum %.2f", ErrSalaryAboveMax, final, MaxSalary)
	}

	return &Work{
		id:          uuid.New(),
		name:        name,
		baseAmount:  baseAmount,
		strategy:    strategy,
		finalSalary: final,
	}, nil
}

// NewSimpleWork registers a work type paid at its base amount.
func NewSimpleWork(name string, baseAmount float64) (*Work, error) {
	return NewWork(name, baseAmount, BasicStrategy{})
}

// NewBonusWork registers a work type paid with a percentage bonus.
func NewBonusWork(name string, baseAmount, bonusPercent float64) (*Work, error) {
	strategy, err := NewBonusStrategy(bonusPercent)
	if err != nil {
		return nil, err
	}
	return NewWork(name, baseAmount, strategy)
}

func (w *Work) ID() uuid.UUID {
	return w.id
}

func (w *Work) Name() string {
	return w.name
}

func (w *Work) BaseAmount() float64 {
	return w.baseAmount
}

func (w *Work) Strategy() Strategy {
	return w.strategy
}

// Salary returns the value computed at construction; it is never recomputed.
func (w *Work) Salary() float64 {
	return w.finalSalary
}
