package salary

import "fmt"

// Strategy maps a base pay amount to a final salary. Implementations are
// pure values with no side effects.
type Strategy interface {
	Calculate(baseAmount float64) float64
}

// BasicStrategy pays the base amount as-is.
type BasicStrategy struct{}

func (BasicStrategy) Calculate(baseAmount float64) float64 {
	return baseAmount
}

// BonusStrategy applies a percentage markup on top of the base amount.
type BonusStrategy struct {
	percent float64
}

// NewBonusStrategy validates the percentage against the allowed range.
// Both bounds are inclusive.
func NewBonusStrategy(percent float64) (BonusStrategy, error) {
	if percent < BonusPercentMin || percent > BonusPercentMax {
		return BonusStrategy{}, fmt.Errorf("%w: got %.2f%%", ErrBonusOutOfRange, percent)
	}
	return BonusStrategy{percent: percent}, nil
}

func (s BonusStrategy) Calculate(baseAmount float64) float64 {
	return baseAmount * (1 + s.percent/100)
}

func (s BonusStrategy) Percent() float64 {
	return s.percent
}
