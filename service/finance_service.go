package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finance-calculator/calculator"
	"finance-calculator/domain"
	"finance-calculator/metrics"
	"finance-calculator/repository"
)

// Options tunes a FinanceService.
type Options struct {
	// Precision is the number of decimal places results are rounded to.
	// -1 disables rounding.
	Precision int
	// Now stamps history records. Defaults to time.Now.
	Now func() time.Time
}

type FinanceService struct {
	repo      repository.CalculationRepository
	cache     repository.CacheRepository
	logger    *slog.Logger
	metrics   *metrics.Metrics
	precision int
	now       func() time.Time
}

// NewFinanceService creates a new FinanceService backed by the given history
// repository and result cache.
func NewFinanceService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts Options,
) *FinanceService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &FinanceService{
		repo:      repo,
		cache:     cache,
		logger:    logger.With(slog.String("component", "finance_service")),
		metrics:   m,
		precision: opts.Precision,
		now:       now,
	}
}

// PresentValue calculates the present value of a future lump sum.
func (s *FinanceService) PresentValue(
	ctx context.Context,
	req domain.PresentValueRequest,
) (domain.PresentValueResult, error) {
	return calculate(ctx, s, domain.OpPresentValue, req, func() (domain.PresentValueResult, error) {
		if err := checkPeriods(req.NumPeriods); err != nil {
			return domain.PresentValueResult{}, err
		}
		res, err := calculator.PresentValue(req.FutureValue, req.NumPeriods, req.InterestRate)
		if err != nil {
			return domain.PresentValueResult{}, err
		}
		return domain.PresentValueResult{
			PresentValue:  s.round(res.PresentValue),
			TotalInterest: s.round(res.TotalInterest),
		}, nil
	})
}

// PresentValueOfDeposits calculates the present value of a periodic deposit stream.
func (s *FinanceService) PresentValueOfDeposits(
	ctx context.Context,
	req domain.DepositsRequest,
) (domain.DepositsResult, error) {
	return calculate(ctx, s, domain.OpDeposits, req, func() (domain.DepositsResult, error) {
		if err := checkPeriods(req.NumPeriods); err != nil {
			return domain.DepositsResult{}, err
		}
		res, err := calculator.PresentValueOfDeposits(
			req.NumPeriods,
			req.InterestRate,
			req.DepositAmount,
			domain.TimingFromBool(req.DepositAtBeginning),
		)
		if err != nil {
			return domain.DepositsResult{}, err
		}
		return domain.DepositsResult{
			PresentValue:   s.round(res.PresentValue),
			TotalPrincipal: s.round(res.TotalPrincipal),
			TotalInterest:  s.round(res.TotalInterest),
		}, nil
	})
}

// FutureValue calculates the future value of a lump sum plus periodic deposits.
func (s *FinanceService) FutureValue(
	ctx context.Context,
	req domain.FutureValueRequest,
) (domain.FutureValueResult, error) {
	return calculate(ctx, s, domain.OpFutureValue, req, func() (domain.FutureValueResult, error) {
		if err := checkPeriods(req.NumPeriods); err != nil {
			return domain.FutureValueResult{}, err
		}
		if err := checkCompounding(req.TimesCompoundedPerPeriod); err != nil {
			return domain.FutureValueResult{}, err
		}
		res, err := calculator.FutureValue(
			req.PresentValue,
			req.NumPeriods,
			req.InterestRate,
			req.TimesCompoundedPerPeriod,
			req.DepositAmount,
			domain.TimingFromBool(req.DepositAtBeginning),
		)
		if err != nil {
			return domain.FutureValueResult{}, err
		}
		return domain.FutureValueResult{
			FutureValue:   s.round(res.FutureValue),
			TotalInterest: s.round(res.TotalInterest),
		}, nil
	})
}

// NetPresentValue calculates the net present value of a cash-flow series.
func (s *FinanceService) NetPresentValue(
	ctx context.Context,
	req domain.NetPresentValueRequest,
) (domain.NetPresentValueResult, error) {
	return calculate(ctx, s, domain.OpNetPresentValue, req, func() (domain.NetPresentValueResult, error) {
		if err := checkCompounding(req.TimesCompoundedPerPeriod); err != nil {
			return domain.NetPresentValueResult{}, err
		}
		if len(req.CashFlows) > MaxCashFlows {
			return domain.NetPresentValueResult{}, &calculator.ArgumentError{
				Arg:    "cashFlows",
				Reason: fmt.Sprintf("at most %d values allowed, got %d", MaxCashFlows, len(req.CashFlows)),
			}
		}
		npv, err := calculator.NetPresentValue(
			req.InitialInvestment,
			req.DiscountRate,
			req.TimesCompoundedPerPeriod,
			domain.TimingFromBool(req.CashFlowsAtBeginning),
			req.CashFlows,
		)
		if err != nil {
			return domain.NetPresentValueResult{}, err
		}
		return domain.NetPresentValueResult{NetPresentValue: s.round(npv)}, nil
	})
}

// History returns the most recent fresh calculations, newest first.
func (s *FinanceService) History(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if limit < 0 {
		return nil, &calculator.ArgumentError{Arg: "limit", Reason: "must not be negative"}
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	calcs, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read calculation history: %w", err)
	}
	return calcs, nil
}

// calculate wraps one engine call with the result cache, history and metrics.
func calculate[Req, Res any](
	ctx context.Context,
	s *FinanceService,
	op domain.Operation,
	req Req,
	compute func() (Res, error),
) (Res, error) {
	key, keyErr := s.cacheKey(op, req)
	if keyErr != nil {
		s.logger.DebugContext(ctx, "skipping cache",
			slog.String("operation", string(op)),
			slog.String("error", keyErr.Error()))
	} else if res, ok := lookup[Res](ctx, s, key); ok {
		s.metrics.Calculations.WithLabelValues(string(op), metrics.OutcomeCacheHit).Inc()
		return res, nil
	}

	res, err := compute()
	if err != nil {
		s.metrics.Calculations.WithLabelValues(string(op), metrics.OutcomeInvalid).Inc()
		s.logger.InfoContext(ctx, "calculation rejected",
			slog.String("operation", string(op)),
			slog.String("error", err.Error()))
		var zero Res
		return zero, err
	}
	s.metrics.Calculations.WithLabelValues(string(op), metrics.OutcomeOK).Inc()

	if keyErr == nil {
		s.store(ctx, key, res)
	}

	// Guardar el resultado (no crítico si falla)
	calc := domain.Calculation{
		ID:        uuid.NewString(),
		Operation: op,
		Request:   req,
		Result:    res,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, calc); err != nil {
		s.logger.WarnContext(ctx, "failed to save calculation",
			slog.String("operation", string(op)),
			slog.String("error", err.Error()))
	}

	return res, nil
}

func lookup[Res any](ctx context.Context, s *FinanceService, key string) (Res, bool) {
	var res Res
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		return res, false
	}
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		s.logger.WarnContext(ctx, "discarding unreadable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		return res, false
	}
	s.metrics.CacheLookups.WithLabelValues("hit").Inc()
	return res, true
}

func (s *FinanceService) store(ctx context.Context, key string, res any) {
	raw, err := json.Marshal(res)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode result for cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		s.logger.WarnContext(ctx, "failed to cache result",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// cacheKey hashes the canonical JSON form of the request. Precision is part of
// the key because it changes the stored result.
func (s *FinanceService) cacheKey(op domain.Operation, req any) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s:p%d:%016x", cacheKeyPrefix, op, s.precision, xxhash.Sum64(raw)), nil
}

// round redondea al número de decimales configurado
func (s *FinanceService) round(v float64) float64 {
	if s.precision < 0 {
		return v
	}
	return decimal.NewFromFloat(v).Round(int32(s.precision)).InexactFloat64()
}

func checkPeriods(n float64) error {
	if n > MaxPeriods {
		return &calculator.ArgumentError{
			Arg:    "numPeriods",
			Reason: fmt.Sprintf("must not exceed %v, got %v", MaxPeriods, n),
		}
	}
	return nil
}

func checkCompounding(m int) error {
	if m > MaxCompoundingPerPeriod {
		return &calculator.ArgumentError{
			Arg:    "timesCompoundedPerPeriod",
			Reason: fmt.Sprintf("must not exceed %d, got %d", MaxCompoundingPerPeriod, m),
		}
	}
	return nil
}
