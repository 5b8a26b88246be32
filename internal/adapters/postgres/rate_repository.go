package postgres

import (
	"context"
	"fmt"
	"fxcalc/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

// LoadAll reads the whole rate table. It is called once at startup.
func (r *RateRepository) LoadAll(ctx context.Context) ([]domain.Rate, error) {
	const q = `
		select base, quote, value
		from fx_rates
		order by base, quote;
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	rates := make([]domain.Rate, 0, 16)
	for rows.Next() {
		var rate domain.Rate
		if err = rows.Scan(&rate.Base, &rate.Quote, &rate.Value); err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates: %w", err)
	}
	return rates, nil
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}
