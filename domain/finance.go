package domain

import "time"

// Timing tells whether a deposit or cash flow lands at the start or the end
// of its period.
type Timing int

const (
	// EndOfPeriod is an ordinary annuity.
	EndOfPeriod Timing = iota
	// BeginningOfPeriod is an annuity-due.
	BeginningOfPeriod
)

func (t Timing) String() string {
	switch t {
	case EndOfPeriod:
		return "end"
	case BeginningOfPeriod:
		return "beginning"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the known timings.
func (t Timing) Valid() bool {
	return t == EndOfPeriod || t == BeginningOfPeriod
}

// TimingFromBool maps the "at beginning" flag used by the API onto a Timing.
func TimingFromBool(atBeginning bool) Timing {
	if atBeginning {
		return BeginningOfPeriod
	}
	return EndOfPeriod
}

type PresentValueRequest struct {
	FutureValue  float64 `json:"future_value"`
	NumPeriods   float64 `json:"num_periods" validate:"gte=0"`
	InterestRate float64 `json:"interest_rate"`
}

type PresentValueResult struct {
	PresentValue  float64 `json:"present_value"`
	TotalInterest float64 `json:"total_interest"`
}

type DepositsRequest struct {
	NumPeriods         float64 `json:"num_periods" validate:"gte=0"`
	InterestRate       float64 `json:"interest_rate"`
	DepositAmount      float64 `json:"deposit_amount"`
	DepositAtBeginning bool    `json:"deposit_at_beginning"`
}

type DepositsResult struct {
	PresentValue   float64 `json:"present_value"`
	TotalPrincipal float64 `json:"total_principal"`
	TotalInterest  float64 `json:"total_interest"`
}

type FutureValueRequest struct {
	PresentValue             float64 `json:"present_value"`
	NumPeriods               float64 `json:"num_periods" validate:"gte=0"`
	InterestRate             float64 `json:"interest_rate"`
	TimesCompoundedPerPeriod int     `json:"times_compounded_per_period" validate:"min=1"`
	DepositAmount            float64 `json:"deposit_amount"`
	DepositAtBeginning       bool    `json:"deposit_at_beginning"`
}

type FutureValueResult struct {
	FutureValue   float64 `json:"future_value"`
	TotalInterest float64 `json:"total_interest"`
}

type NetPresentValueRequest struct {
	InitialInvestment        float64   `json:"initial_investment"`
	DiscountRate             float64   `json:"discount_rate"`
	TimesCompoundedPerPeriod int       `json:"times_compounded_per_period" validate:"min=1"`
	CashFlowsAtBeginning     bool      `json:"cash_flows_at_beginning"`
	CashFlows                []float64 `json:"cash_flows" validate:"max=1000"`
}

type NetPresentValueResult struct {
	NetPresentValue float64 `json:"net_present_value"`
}

// Operation names a calculation kind in history records, cache keys and
// metrics labels.
type Operation string

const (
	OpPresentValue    Operation = "present_value"
	OpDeposits        Operation = "present_value_of_deposits"
	OpFutureValue     Operation = "future_value"
	OpNetPresentValue Operation = "net_present_value"
)

// Calculation is one entry of the calculation history.
type Calculation struct {
	ID        string    `json:"id"`
	Operation Operation `json:"operation"`
	Request   any       `json:"request"`
	Result    any       `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
