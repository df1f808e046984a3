package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/repository"
)

type ruleRepository struct{ pool *pgxpool.Pool }

func NewRuleRepository(pool *pgxpool.Pool) repository.RuleRepository {
	return &ruleRepository{pool: pool}
}

const ruleColumns = `id, sport, category, action, kind, points, threshold,
	range_min, range_max, position, every, multiplier, active, created_at, updated_at`

func scanRule(row pgx.Row) (model.ScoringRuleRecord, error) {
	var rec model.ScoringRuleRecord
	err := row.Scan(
		&rec.ID, &rec.Sport, &rec.Category, &rec.Action, &rec.Kind, &rec.Points, &rec.Threshold,
		&rec.RangeMin, &rec.RangeMax, &rec.Position, &rec.Every, &rec.Multiplier, &rec.Active,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *ruleRepository) ListActive(ctx context.Context, sport string) ([]model.ScoringRuleRecord, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+ruleColumns+`
		 FROM scoring_rules WHERE sport = $1 AND active ORDER BY id`, sport,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.ScoringRuleRecord, 0, 32)
	for rows.Next() {
		rec, err := scanRule(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

func (r *ruleRepository) List(ctx context.Context, sport string, p repository.Page) (repository.PageResult[model.ScoringRuleRecord], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.ScoringRuleRecord]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)

	var total int
	if err := exec.QueryRow(ctx,
		`SELECT COUNT(*) FROM scoring_rules WHERE sport = $1`, sport,
	).Scan(&total); err != nil {
		return repository.PageResult[model.ScoringRuleRecord]{}, repository.MapPgError(err)
	}

	rows, err := exec.Query(ctx,
		`SELECT `+ruleColumns+`
		 FROM scoring_rules WHERE sport = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		sport, limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.ScoringRuleRecord]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.ScoringRuleRecord]{Total: total}
	for rows.Next() {
		rec, err := scanRule(rows)
		if err != nil {
			return repository.PageResult[model.ScoringRuleRecord]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, rec)
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.ScoringRuleRecord]{}, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.RuleRepository = (*ruleRepository)(nil)
