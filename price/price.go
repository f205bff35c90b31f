package price

import "math"

// Scale fixes 1 raw tick to 1/1,000,000 of a decimal currency unit.
const Scale = 1_000_000

// Price is a fixed-point price, stored as a signed count of raw ticks.
// The zero value is a valid resting price; whether zero is admissible at
// a given venue is a policy decision made above this package.
type Price int64

// FromRaw wraps an already-scaled tick count.
func FromRaw(raw int64) Price {
	return Price(raw)
}

// FromDecimal rounds d to the nearest raw tick.
func FromDecimal(d float64) Price {
	return Price(math.Round(d * Scale))
}

// Raw returns the underlying tick count.
func (p Price) Raw() int64 {
	return int64(p)
}

// Decimal converts back to a (lossy) floating-point currency value.
func (p Price) Decimal() float64 {
	return float64(p) / Scale
}

// Less reports whether p sorts before other.
func (p Price) Less(other Price) bool {
	return p < other
}

// Equal reports whether p and other have the same raw value.
func (p Price) Equal(other Price) bool {
	return p == other
}
