// Package calculator implements closed-form time-value-of-money formulas:
// present value of a lump sum, present value of a deposit stream, future
// value of a lump sum plus deposits, and net present value of a cash-flow
// series.
//
// Every function is pure. Arguments are validated before any arithmetic and
// rejections wrap ErrInvalidArgument, so
//
//	if errors.Is(err, calculator.ErrInvalidArgument) { ... }
//
// is the only check a caller needs. Rates are percentages (10 means 10%).
package calculator
