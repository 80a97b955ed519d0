package receipt

// MinorUnits converts a major-unit amount to integer minor units.
// The scaled value is truncated, not rounded; the operator reports sums
// the same way, so both sides agree on the cent.
func MinorUnits(v float64) uint64 {
	return uint64(v * 100)
}

// ScaleQuantity keeps three fractional digits of a quantity as an integer.
func ScaleQuantity(q float64) uint64 {
	return uint64(q * 1000)
}
