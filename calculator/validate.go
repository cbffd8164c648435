package calculator

import (
	"math"

	"finance-calculator/domain"
)

func checkFinite(arg string, v float64) error {
	if math.IsNaN(v) {
		return invalid(arg, "must be a number, got NaN")
	}
	if math.IsInf(v, 0) {
		return invalid(arg, "must be finite, got %v", v)
	}
	return nil
}

func checkPeriods(arg string, n float64) error {
	if err := checkFinite(arg, n); err != nil {
		return err
	}
	if n < 0 {
		return invalid(arg, "must not be negative, got %v", n)
	}
	return nil
}

func checkCompounding(arg string, m int) error {
	if m <= 0 {
		return invalid(arg, "must be a positive count, got %d", m)
	}
	return nil
}

func checkTiming(arg string, t domain.Timing) error {
	if !t.Valid() {
		return invalid(arg, "unknown timing %d", int(t))
	}
	return nil
}

func checkCashFlows(arg string, flows []float64) error {
	for k, v := range flows {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(arg, "element %d must be finite, got %v", k, v)
		}
	}
	return nil
}

// checkResult guards against float64 overflow in the formulas.
func checkResult(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("result", "not representable as a finite number")
		}
	}
	return nil
}
