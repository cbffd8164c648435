package calculator

import (
	"math"

	"finance-calculator/domain"
)

// PresentValueOfDeposits values a stream of equal deposits, one per period,
// as of today. BeginningOfPeriod deposits are an annuity-due and are worth
// exactly (1+r) times the ordinary annuity.
func PresentValueOfDeposits(numPeriods, interestRate, depositAmount float64, timing domain.Timing) (domain.DepositsResult, error) {
	if err := checkPeriods("numPeriods", numPeriods); err != nil {
		return domain.DepositsResult{}, err
	}
	r, err := periodicRate("interestRate", interestRate, 1)
	if err != nil {
		return domain.DepositsResult{}, err
	}
	if err := checkFinite("depositAmount", depositAmount); err != nil {
		return domain.DepositsResult{}, err
	}
	if err := checkTiming("depositAtBeginning", timing); err != nil {
		return domain.DepositsResult{}, err
	}

	if numPeriods == 0 || depositAmount == 0 {
		return domain.DepositsResult{}, nil
	}

	principal := depositAmount * numPeriods

	var pv float64
	if r == 0 {
		pv = principal
	} else {
		pv = depositAmount * (1 - math.Pow(1+r, -numPeriods)) / r
		if timing == domain.BeginningOfPeriod {
			pv *= 1 + r
		}
	}

	// Negative interest is a valid outcome under negative rates; it is not
	// clamped.
	result := domain.DepositsResult{
		PresentValue:   pv,
		TotalPrincipal: principal,
		TotalInterest:  pv - principal,
	}
	if err := checkResult(result.PresentValue, result.TotalPrincipal, result.TotalInterest); err != nil {
		return domain.DepositsResult{}, err
	}
	return result, nil
}
