package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"fxcalc/internal/adapters/postgres"
	"fxcalc/internal/conversion"
	"fxcalc/internal/domain"
	"fxcalc/internal/platform/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
	// rates present right after migrations, before any test truncates the table
	seededRates []domain.Rate
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})
	require.NotEmpty(t, pgConnStr, "postgres container failed to start")

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
		tcpg.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, db.Migrate(ctx, dsn))

	pool, err := db.OpenPool(ctx, dsn, 0)
	require.NoError(t, err)
	defer pool.Close()
	seededRates, err = postgres.NewRateRepository(pool).LoadAll(ctx)
	require.NoError(t, err)

	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `truncate table fx_rates`)
	return err
}

func TestMigrations_SeedDefaultRates(t *testing.T) {
	_ = setupPostgres(t)

	require.ElementsMatch(t, conversion.DefaultRates(), seededRates)
}

func TestRateRepository_LoadAll_Empty(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)

	rates, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, rates)
}

func TestRateRepository_LoadAll_Sorted(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `insert into fx_rates(base, quote, value) values
		('USD', 'KES', 128.50), ('EUR', 'KES', 140.25), ('KES', 'USD', 0.00778)`)
	require.NoError(t, err)

	rates, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Rate{
		{Base: "EUR", Quote: "KES", Value: 140.25},
		{Base: "KES", Quote: "USD", Value: 0.00778},
		{Base: "USD", Quote: "KES", Value: 128.50},
	}, rates)

	// loaded rows feed straight into an engine
	table, err := conversion.NewRateTable(rates)
	require.NoError(t, err)
	require.Equal(t, 140.25, conversion.NewEngine(table).GetRate("EUR", "KES"))
}

func TestRateRepository_LoadAll_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.LoadAll(ctx)
	require.Error(t, err)
}

func TestRateRepository_RejectsNonPositiveValues(t *testing.T) {
	pool := setupPostgres(t)

	_, err := pool.Exec(context.Background(), `insert into fx_rates(base, quote, value) values ('USD', 'KES', 0)`)
	require.Error(t, err)
}
