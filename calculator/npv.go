package calculator

import (
	"math"

	"finance-calculator/domain"
)

// NetPresentValue discounts cashFlows, one per period, and subtracts the
// initial investment. With EndOfPeriod timing the first flow is discounted
// one full period; with BeginningOfPeriod it is taken at face value.
//
// Flows are summed strictly in the order given so results are reproducible
// bit for bit.
func NetPresentValue(
	initialInvestment, discountRate float64,
	timesCompoundedPerPeriod int,
	timing domain.Timing,
	cashFlows []float64,
) (float64, error) {
	if err := checkFinite("initialInvestment", initialInvestment); err != nil {
		return 0, err
	}
	m := timesCompoundedPerPeriod
	if err := checkCompounding("timesCompoundedPerPeriod", m); err != nil {
		return 0, err
	}
	d, err := effectiveRate("discountRate", discountRate, m)
	if err != nil {
		return 0, err
	}
	if err := checkTiming("cashFlowsAtBeginning", timing); err != nil {
		return 0, err
	}
	if err := checkCashFlows("cashFlows", cashFlows); err != nil {
		return 0, err
	}

	offset := 1
	if timing == domain.BeginningOfPeriod {
		offset = 0
	}

	var sum float64
	for k, cf := range cashFlows {
		if cf == 0 {
			continue
		}
		if d == 0 {
			sum += cf
			continue
		}
		sum += cf / math.Pow(1+d, float64(k+offset))
	}

	npv := -initialInvestment + sum
	if err := checkResult(npv); err != nil {
		return 0, err
	}
	return npv, nil
}
