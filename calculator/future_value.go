package calculator

import (
	"math"

	"finance-calculator/domain"
)

// FutureValue grows presentValue for numPeriods periods, compounding
// timesCompoundedPerPeriod times per period, and adds the accumulated value
// of one depositAmount per period.
func FutureValue(
	presentValue, numPeriods, interestRate float64,
	timesCompoundedPerPeriod int,
	depositAmount float64,
	timing domain.Timing,
) (domain.FutureValueResult, error) {
	if err := checkFinite("presentValue", presentValue); err != nil {
		return domain.FutureValueResult{}, err
	}
	if err := checkPeriods("numPeriods", numPeriods); err != nil {
		return domain.FutureValueResult{}, err
	}
	m := timesCompoundedPerPeriod
	if err := checkCompounding("timesCompoundedPerPeriod", m); err != nil {
		return domain.FutureValueResult{}, err
	}
	r, err := periodicRate("interestRate", interestRate, m)
	if err != nil {
		return domain.FutureValueResult{}, err
	}
	if err := checkFinite("depositAmount", depositAmount); err != nil {
		return domain.FutureValueResult{}, err
	}
	if err := checkTiming("depositAtBeginning", timing); err != nil {
		return domain.FutureValueResult{}, err
	}

	if numPeriods == 0 {
		return domain.FutureValueResult{FutureValue: presentValue}, nil
	}

	// A zero amount stays zero even when the growth factor over/underflows.
	var lumpSum float64
	if presentValue != 0 {
		lumpSum = presentValue * math.Pow(1+r, float64(m)*numPeriods)
	}

	i, err := effectiveRate("interestRate", interestRate, m)
	if err != nil {
		return domain.FutureValueResult{}, err
	}
	deposits := depositStreamValue(depositAmount, numPeriods, i, timing)

	fv := lumpSum + deposits
	result := domain.FutureValueResult{
		FutureValue:   fv,
		TotalInterest: fv - presentValue - depositAmount*numPeriods,
	}
	if err := checkResult(result.FutureValue, result.TotalInterest); err != nil {
		return domain.FutureValueResult{}, err
	}
	return result, nil
}

// depositStreamValue is the future value of n deposits at effective periodic
// rate i.
func depositStreamValue(deposit, n, i float64, timing domain.Timing) float64 {
	if deposit == 0 {
		return 0
	}
	if i == 0 {
		return deposit * n
	}
	v := deposit * (math.Pow(1+i, n) - 1) / i
	if timing == domain.BeginningOfPeriod {
		v *= 1 + i
	}
	return v
}
