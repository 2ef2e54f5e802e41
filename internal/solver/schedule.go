package solver

// Rate returns the growth rate of period n (zero-based) in a schedule of
// periods years that decays linearly from r0 to rFinal.
func Rate(r0, rFinal float64, n, periods int) float64 {
	switch {
	case periods <= 0:
		return 0
	case periods == 1:
		return rFinal
	}
	return r0 - (r0-rFinal)*float64(n)/float64(periods-1)
}

// Compound applies the whole schedule to initialPrice.
func Compound(r0, initialPrice float64, periods int, rFinal float64) float64 {
	price := initialPrice
	for n := 0; n < periods; n++ {
		price *= 1 + Rate(r0, rFinal, n, periods)
	}
	return price
}
