package booking

import (
	"math"
	"strconv"
)

// Money is an amount in minor units (cents).
type Money int64

func NewMoneyFromAmount(amount float64) Money {
	return Money(math.Round(amount * 100))
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Amount() float64 {
	return float64(m) / 100
}

func (m Money) Times(n int) Money {
	return m * Money(n)
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Amount(), 'f', 2, 64)
}
