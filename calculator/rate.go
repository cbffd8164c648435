package calculator

import "math"

// periodicRate converts a percentage into the fraction applied at each of
// the m compounding events of one period. The growth factor 1+rate must stay
// positive for the power functions to be defined.
func periodicRate(arg string, percent float64, m int) (float64, error) {
	if err := checkFinite(arg, percent); err != nil {
		return 0, err
	}
	r := percent / 100 / float64(m)
	if 1+r <= 0 {
		return 0, invalid(arg, "must be greater than %v%%, got %v%%", -100*float64(m), percent)
	}
	return r, nil
}

// effectiveRate is the rate earned over a whole period when the nominal
// percentage is compounded m times within it.
func effectiveRate(arg string, percent float64, m int) (float64, error) {
	r, err := periodicRate(arg, percent, m)
	if err != nil {
		return 0, err
	}
	if m == 1 {
		return r, nil
	}
	return math.Expm1(float64(m) * math.Log1p(r)), nil
}
