package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-calculator/domain"
)

const tolerance = 1e-9

func TestPresentValue(t *testing.T) {
	tests := []struct {
		name         string
		fv, n, rate  float64
		wantPV       float64
		wantInterest float64
	}{
		{"ten percent over five periods", 1000, 5, 10, 620.9213230591549, 379.0786769408451},
		{"zero periods", 1000, 0, 10, 1000, 0},
		{"zero rate", 1000, 7, 0, 1000, 0},
		{"zero future value", 0, 12, 8, 0, 0},
		{"negative rate grows present value", 1000, 2, -10, 1000 / 0.81, 1000 - 1000/0.81},
		{"fractional periods", 1000, 0.5, 21, 1000 / 1.1, 1000 - 1000/1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PresentValue(tt.fv, tt.n, tt.rate)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPV, got.PresentValue, tolerance)
			assert.InDelta(t, tt.wantInterest, got.TotalInterest, tolerance)
		})
	}
}

func TestPresentValue_RoundTrip(t *testing.T) {
	for _, fv := range []float64{1, 250.5, 1e6} {
		for _, n := range []float64{1, 3.5, 30} {
			for _, rate := range []float64{-5, 0, 2.25, 18} {
				got, err := PresentValue(fv, n, rate)
				require.NoError(t, err)
				back := got.PresentValue * math.Pow(1+rate/100, n)
				assert.InEpsilon(t, fv, back, 1e-12, "fv=%v n=%v rate=%v", fv, n, rate)
			}
		}
	}
}

func TestPresentValueOfDeposits(t *testing.T) {
	t.Run("ordinary annuity", func(t *testing.T) {
		got, err := PresentValueOfDeposits(3, 10, 100, domain.EndOfPeriod)
		require.NoError(t, err)
		want := 100/1.1 + 100/1.21 + 100/1.331
		assert.InDelta(t, want, got.PresentValue, tolerance)
		assert.Equal(t, 300.0, got.TotalPrincipal)
		assert.InDelta(t, want-300, got.TotalInterest, tolerance)
	})

	t.Run("annuity due", func(t *testing.T) {
		got, err := PresentValueOfDeposits(3, 10, 100, domain.BeginningOfPeriod)
		require.NoError(t, err)
		assert.InDelta(t, 100+100/1.1+100/1.21, got.PresentValue, tolerance)
	})

	t.Run("zero rate is plain principal", func(t *testing.T) {
		for _, n := range []float64{1, 4.5, 120} {
			for _, d := range []float64{-20, 0, 75.25} {
				for _, timing := range []domain.Timing{domain.EndOfPeriod, domain.BeginningOfPeriod} {
					got, err := PresentValueOfDeposits(n, 0, d, timing)
					require.NoError(t, err)
					assert.Equal(t, d*n, got.PresentValue)
					assert.Equal(t, 0.0, got.TotalInterest)
				}
			}
		}
	})

	t.Run("zero periods", func(t *testing.T) {
		got, err := PresentValueOfDeposits(0, 10, 100, domain.BeginningOfPeriod)
		require.NoError(t, err)
		assert.Equal(t, domain.DepositsResult{}, got)
	})

	t.Run("negative rate yields positive interest", func(t *testing.T) {
		got, err := PresentValueOfDeposits(5, -3, 100, domain.EndOfPeriod)
		require.NoError(t, err)
		assert.Greater(t, got.TotalInterest, 0.0)
	})

	t.Run("timing factor", func(t *testing.T) {
		for _, rate := range []float64{-4, 1.5, 10, 35} {
			end, err := PresentValueOfDeposits(12, rate, 250, domain.EndOfPeriod)
			require.NoError(t, err)
			begin, err := PresentValueOfDeposits(12, rate, 250, domain.BeginningOfPeriod)
			require.NoError(t, err)
			assert.Equal(t, end.PresentValue*(1+rate/100), begin.PresentValue)
			assert.Equal(t, end.TotalPrincipal, begin.TotalPrincipal)
		}
	})
}

func TestFutureValue(t *testing.T) {
	t.Run("lump sum annual compounding", func(t *testing.T) {
		got, err := FutureValue(620.9213230591549, 5, 10, 1, 0, domain.EndOfPeriod)
		require.NoError(t, err)
		assert.InDelta(t, 1000, got.FutureValue, 1e-9)
		assert.InDelta(t, 379.0786769408451, got.TotalInterest, 1e-9)
	})

	t.Run("monthly compounding", func(t *testing.T) {
		got, err := FutureValue(1000, 2, 12, 12, 0, domain.EndOfPeriod)
		require.NoError(t, err)
		assert.InDelta(t, 1000*math.Pow(1.01, 24), got.FutureValue, 1e-9)
	})

	t.Run("deposits only", func(t *testing.T) {
		got, err := FutureValue(0, 3, 10, 1, 100, domain.EndOfPeriod)
		require.NoError(t, err)
		assert.InDelta(t, 100*1.21+100*1.1+100, got.FutureValue, 1e-9)
		assert.InDelta(t, got.FutureValue-300, got.TotalInterest, 1e-9)
	})

	t.Run("lump sum and deposits", func(t *testing.T) {
		got, err := FutureValue(1000, 3, 10, 1, 100, domain.BeginningOfPeriod)
		require.NoError(t, err)
		want := 1000*1.331 + 100*(1.331+1.21+1.1)
		assert.InDelta(t, want, got.FutureValue, 1e-9)
		assert.InDelta(t, want-1000-300, got.TotalInterest, 1e-9)
	})

	t.Run("zero rate", func(t *testing.T) {
		got, err := FutureValue(500, 4, 0, 4, 50, domain.BeginningOfPeriod)
		require.NoError(t, err)
		assert.Equal(t, 700.0, got.FutureValue)
		assert.Equal(t, 0.0, got.TotalInterest)
	})

	t.Run("zero periods is identity", func(t *testing.T) {
		for _, timing := range []domain.Timing{domain.EndOfPeriod, domain.BeginningOfPeriod} {
			got, err := FutureValue(1234.5, 0, 7, 12, 100, timing)
			require.NoError(t, err)
			assert.Equal(t, 1234.5, got.FutureValue)
			assert.Equal(t, 0.0, got.TotalInterest)
		}
	})

	t.Run("zero deposit inverts present value", func(t *testing.T) {
		pv, err := PresentValue(5000, 8, 6)
		require.NoError(t, err)
		got, err := FutureValue(pv.PresentValue, 8, 6, 1, 0, domain.EndOfPeriod)
		require.NoError(t, err)
		assert.InEpsilon(t, 5000, got.FutureValue, 1e-12)
	})

	t.Run("timing factor on deposit stream", func(t *testing.T) {
		for _, m := range []int{1, 4, 12, 365} {
			end, err := FutureValue(0, 10, 6, m, 200, domain.EndOfPeriod)
			require.NoError(t, err)
			begin, err := FutureValue(0, 10, 6, m, 200, domain.BeginningOfPeriod)
			require.NoError(t, err)
			i := math.Pow(1+0.06/float64(m), float64(m)) - 1
			assert.InEpsilon(t, end.FutureValue*(1+i), begin.FutureValue, 1e-12, "m=%d", m)
		}
	})
}

func TestNetPresentValue(t *testing.T) {
	t.Run("ordinary cash flows", func(t *testing.T) {
		got, err := NetPresentValue(1000, 10, 1, domain.EndOfPeriod, []float64{300, 400, 500})
		require.NoError(t, err)
		assert.InDelta(t, -21.04, got, 0.005)
	})

	t.Run("cash flows at beginning", func(t *testing.T) {
		got, err := NetPresentValue(1000, 10, 1, domain.BeginningOfPeriod, []float64{300, 400, 500})
		require.NoError(t, err)
		assert.InDelta(t, -1000+300+400/1.1+500/1.21, got, tolerance)
	})

	t.Run("empty series", func(t *testing.T) {
		for _, flows := range [][]float64{nil, {}} {
			got, err := NetPresentValue(750, 8, 1, domain.EndOfPeriod, flows)
			require.NoError(t, err)
			assert.Equal(t, -750.0, got)
		}
	})

	t.Run("zero rate is plain summation", func(t *testing.T) {
		got, err := NetPresentValue(100, 0, 12, domain.EndOfPeriod, []float64{10.5, -3, 40})
		require.NoError(t, err)
		assert.Equal(t, -100+(10.5-3+40), got)
	})

	t.Run("compounding raises effective discount", func(t *testing.T) {
		annual, err := NetPresentValue(0, 12, 1, domain.EndOfPeriod, []float64{1000})
		require.NoError(t, err)
		monthly, err := NetPresentValue(0, 12, 12, domain.EndOfPeriod, []float64{1000})
		require.NoError(t, err)
		assert.InDelta(t, 1000/math.Pow(1.01, 12), monthly, 1e-9)
		assert.Less(t, monthly, annual)
	})

	t.Run("deterministic", func(t *testing.T) {
		flows := []float64{0.1, 1e9, -1e9, 0.3, 123.456}
		first, err := NetPresentValue(0.2, 3.3, 4, domain.EndOfPeriod, flows)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := NetPresentValue(0.2, 3.3, 4, domain.EndOfPeriod, flows)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(first), math.Float64bits(again))
		}
	})
}

func TestZeroAmountsAtExtremeGrowth(t *testing.T) {
	t.Run("present value of nothing", func(t *testing.T) {
		for _, rate := range []float64{-50, -99, 10, 1e6} {
			got, err := PresentValue(0, 1100, rate)
			require.NoError(t, err, "rate=%v", rate)
			assert.Equal(t, domain.PresentValueResult{}, got)
		}
	})

	t.Run("deposits of nothing", func(t *testing.T) {
		for _, timing := range []domain.Timing{domain.EndOfPeriod, domain.BeginningOfPeriod} {
			got, err := PresentValueOfDeposits(2000, -60, 0, timing)
			require.NoError(t, err)
			assert.Equal(t, domain.DepositsResult{}, got)
		}
	})

	t.Run("future value of nothing", func(t *testing.T) {
		got, err := FutureValue(0, 1e4, 10, 1, 0, domain.EndOfPeriod)
		require.NoError(t, err)
		assert.Equal(t, domain.FutureValueResult{}, got)
	})

	t.Run("zero present value leaves the deposit stream", func(t *testing.T) {
		got, err := FutureValue(0, 1e4, -99, 1, 100, domain.EndOfPeriod)
		require.NoError(t, err)
		assert.InDelta(t, 100/0.99, got.FutureValue, 1e-9)
	})

	t.Run("zero cash flows are skipped", func(t *testing.T) {
		got, err := NetPresentValue(0, -99, 1, domain.EndOfPeriod, make([]float64, 200))
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)

		flows := make([]float64, 200)
		flows[0] = 5
		got, err = NetPresentValue(1, -99, 1, domain.BeginningOfPeriod, flows)
		require.NoError(t, err)
		assert.Equal(t, 4.0, got)
	})
}

func TestInvalidArguments(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name string
		call func() error
		arg  string
	}{
		{"pv negative periods", func() error { _, err := PresentValue(1000, -1, 10); return err }, "numPeriods"},
		{"pv nan rate", func() error { _, err := PresentValue(1000, 5, nan); return err }, "interestRate"},
		{"pv infinite future value", func() error { _, err := PresentValue(inf, 5, 10); return err }, "futureValue"},
		{"pv rate at minus one hundred", func() error { _, err := PresentValue(1000, 5, -100); return err }, "interestRate"},
		{"pv overflow", func() error { _, err := PresentValue(1e300, 1e6, -99); return err }, "result"},
		{"deposits negative periods", func() error { _, err := PresentValueOfDeposits(-3, 5, 100, domain.EndOfPeriod); return err }, "numPeriods"},
		{"deposits nan rate", func() error { _, err := PresentValueOfDeposits(3, nan, 100, domain.EndOfPeriod); return err }, "interestRate"},
		{"deposits nan amount", func() error { _, err := PresentValueOfDeposits(3, 5, nan, domain.EndOfPeriod); return err }, "depositAmount"},
		{"deposits unknown timing", func() error { _, err := PresentValueOfDeposits(3, 5, 100, domain.Timing(7)); return err }, "depositAtBeginning"},
		{"fv negative periods", func() error { _, err := FutureValue(1, -2, 5, 1, 0, domain.EndOfPeriod); return err }, "numPeriods"},
		{"fv nan rate", func() error { _, err := FutureValue(1, 2, nan, 1, 0, domain.EndOfPeriod); return err }, "interestRate"},
		{"fv zero compounding", func() error { _, err := FutureValue(1, 2, 5, 0, 0, domain.EndOfPeriod); return err }, "timesCompoundedPerPeriod"},
		{"fv negative compounding", func() error { _, err := FutureValue(1, 2, 5, -4, 0, domain.EndOfPeriod); return err }, "timesCompoundedPerPeriod"},
		{"fv infinite deposit", func() error { _, err := FutureValue(1, 2, 5, 1, inf, domain.EndOfPeriod); return err }, "depositAmount"},
		{"fv rate below floor", func() error { _, err := FutureValue(1, 2, -450, 4, 0, domain.EndOfPeriod); return err }, "interestRate"},
		{"npv nan rate", func() error { _, err := NetPresentValue(1, nan, 1, domain.EndOfPeriod, nil); return err }, "discountRate"},
		{"npv zero compounding", func() error { _, err := NetPresentValue(1, 5, 0, domain.EndOfPeriod, nil); return err }, "timesCompoundedPerPeriod"},
		{"npv nan investment", func() error { _, err := NetPresentValue(nan, 5, 1, domain.EndOfPeriod, nil); return err }, "initialInvestment"},
		{"npv nan cash flow", func() error {
			_, err := NetPresentValue(1, 5, 1, domain.EndOfPeriod, []float64{1, nan})
			return err
		}, "cashFlows"},
		{"npv unknown timing", func() error { _, err := NetPresentValue(1, 5, 1, domain.Timing(-1), nil); return err }, "cashFlowsAtBeginning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))

			var argErr *ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, tt.arg, argErr.Arg)
		})
	}
}

func TestArgumentError_Message(t *testing.T) {
	_, err := PresentValue(1000, -1, 10)
	require.Error(t, err)
	assert.Equal(t, "invalid argument numPeriods: must not be negative, got -1", err.Error())

	_, err = NetPresentValue(1, 5, 1, domain.EndOfPeriod, []float64{1, 2, math.Inf(-1)})
	require.Error(t, err)
	assert.Equal(t, "invalid argument cashFlows: element 2 must be finite, got -Inf", err.Error())
}
