package service

const (
	MaxPeriods              = 10_000.0 // períodos por cálculo
	MaxCompoundingPerPeriod = 366 * 24 // capitalización horaria en un año bisiesto
	MaxCashFlows            = 1_000    // flujos por request
	MaxHistoryLimit         = 500
	DefaultHistoryLimit     = 50

	cacheKeyPrefix = "fincalc:v1"
)
