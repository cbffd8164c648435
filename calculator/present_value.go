package calculator

import (
	"math"

	"finance-calculator/domain"
)

// PresentValue discounts a single future amount back numPeriods periods at
// interestRate percent per period.
func PresentValue(futureValue, numPeriods, interestRate float64) (domain.PresentValueResult, error) {
	if err := checkFinite("futureValue", futureValue); err != nil {
		return domain.PresentValueResult{}, err
	}
	if err := checkPeriods("numPeriods", numPeriods); err != nil {
		return domain.PresentValueResult{}, err
	}
	r, err := periodicRate("interestRate", interestRate, 1)
	if err != nil {
		return domain.PresentValueResult{}, err
	}

	pv := futureValue
	if futureValue != 0 && numPeriods != 0 && r != 0 {
		pv = futureValue / math.Pow(1+r, numPeriods)
	}

	result := domain.PresentValueResult{
		PresentValue:  pv,
		TotalInterest: futureValue - pv,
	}
	if err := checkResult(result.PresentValue, result.TotalInterest); err != nil {
		return domain.PresentValueResult{}, err
	}
	return result, nil
}
