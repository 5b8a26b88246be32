package conversion

import (
	"context"
	"fxcalc/internal/adapters"
	"fxcalc/internal/domain"
	"time"

	"github.com/google/uuid"
)

type RateView struct {
	Source string
	Target string
	Rate   float64
}

// Service turns engine results into quotes that can be looked up again for a short while.
type Service struct {
	converter Converter
	cache     adapters.QuoteCache
	pairs     []domain.RatePair
	now       func() time.Time
}

func (s *Service) Quote(_ context.Context, req domain.ConversionRequest) (domain.Quote, error) {
	res, err := s.converter.Convert(req)
	if err != nil {
		return domain.Quote{}, err
	}

	q := domain.Quote{
		ID:        uuid.New(),
		Request:   req,
		Rate:      s.converter.GetRate(req.Source, req.Target),
		Result:    res,
		CreatedAt: s.now().UTC(),
	}
	if s.cache != nil {
		s.cache.Set(q)
	}
	return q, nil
}

func (s *Service) GetQuote(_ context.Context, id uuid.UUID) (domain.Quote, error) {
	if s.cache == nil {
		return domain.Quote{}, domain.ErrQuoteNotFound
	}
	q, ok := s.cache.Get(id)
	if !ok {
		return domain.Quote{}, domain.ErrQuoteNotFound
	}
	return q, nil
}

func (s *Service) GetRate(_ context.Context, source, target string) RateView {
	return RateView{
		Source: source,
		Target: target,
		Rate:   s.converter.GetRate(source, target),
	}
}

func (s *Service) Pairs() []domain.RatePair {
	return append([]domain.RatePair(nil), s.pairs...)
}

// NewService builds a Service. cache may be nil, then quotes are not retained.
func NewService(converter Converter, pairs []domain.RatePair, cache adapters.QuoteCache) *Service {
	return &Service{
		converter: converter,
		cache:     cache,
		pairs:     append([]domain.RatePair(nil), pairs...),
		now:       time.Now,
	}
}
