package repository

import (
	"context"

	"finance-calculator/domain"
)

type CalculationRepository interface {
	Save(ctx context.Context, calc domain.Calculation) error
	Recent(ctx context.Context, limit int) ([]domain.Calculation, error)
}
