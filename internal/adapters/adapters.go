package adapters

import (
	"context"
	"fxcalc/internal/domain"

	"github.com/google/uuid"
)

type RateRepository interface {
	LoadAll(ctx context.Context) ([]domain.Rate, error)
}

type QuoteCache interface {
	Get(id uuid.UUID) (domain.Quote, bool)
	Set(q domain.Quote)
}
