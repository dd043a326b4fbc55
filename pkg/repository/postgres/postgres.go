package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
)

// Postgres is a Record Store on a PostgreSQL database, e.g. the one behind
// a hosted Supabase project.
type Postgres struct {
	pool         *pgxpool.Pool
	riskScenario *riskScenarioRepository
	riskTable    *riskTableRepository
	profile      *profileRepository
}

var _ interfaces.Repository = &Postgres{}

func New(ctx context.Context, connString string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create postgres pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, goerr.Wrap(err, "failed to connect to postgres")
	}

	return &Postgres{
		pool:         pool,
		riskScenario: &riskScenarioRepository{pool: pool},
		riskTable:    &riskTableRepository{pool: pool},
		profile:      &profileRepository{pool: pool},
	}, nil
}

func (p *Postgres) RiskScenario() interfaces.RiskScenarioRepository {
	return p.riskScenario
}

func (p *Postgres) RiskTable() interfaces.RiskTableRepository {
	return p.riskTable
}

func (p *Postgres) Profile() interfaces.ProfileRepository {
	return p.profile
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// Migrate creates the tables when they do not exist
func (p *Postgres) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to apply schema", goerr.V("statement", stmt))
		}
	}
	return nil
}

// isConstraintViolation reports integrity constraint violations (SQLSTATE
// class 23): the store refused the row.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23")
}

// validUUID reports whether s can match a uuid column at all
func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
