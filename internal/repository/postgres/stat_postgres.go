package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/repository"
)

type statRepository struct{ pool *pgxpool.Pool }

func NewStatRepository(pool *pgxpool.Pool) repository.StatRepository {
	return &statRepository{pool: pool}
}

const statColumns = `id, player_id, match_id, sport,
	runs, balls_faced, fours, sixes, dismissed, wickets, overs_bowled, maidens,
	runs_conceded, economy_rate, catches, run_outs, assisted_run_outs, stumpings,
	goals, assists, own_goals, clean_sheets, tackles, interceptions, blocks, clearances,
	saves, penalty_saves, goals_conceded, minutes_played, position,
	yellow_cards, red_cards, is_captain, is_vice_captain, is_player_of_match,
	fantasy_points, created_at, updated_at`

func scanStat(row pgx.Row) (model.PlayerMatchStat, error) {
	var s model.PlayerMatchStat
	err := row.Scan(
		&s.ID, &s.PlayerID, &s.MatchID, &s.Sport,
		&s.Runs, &s.BallsFaced, &s.Fours, &s.Sixes, &s.Dismissed, &s.Wickets, &s.OversBowled, &s.Maidens,
		&s.RunsConceded, &s.EconomyRate, &s.Catches, &s.RunOuts, &s.AssistedRunOuts, &s.Stumpings,
		&s.Goals, &s.Assists, &s.OwnGoals, &s.CleanSheets, &s.Tackles, &s.Interceptions, &s.Blocks, &s.Clearances,
		&s.Saves, &s.PenaltySaves, &s.GoalsConceded, &s.MinutesPlayed, &s.Position,
		&s.YellowCards, &s.RedCards, &s.IsCaptain, &s.IsViceCaptain, &s.IsPlayerOfMatch,
		&s.FantasyPoints, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *statRepository) GetByID(ctx context.Context, id int64) (model.PlayerMatchStat, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.PlayerMatchStat{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT `+statColumns+` FROM player_match_stats WHERE id = $1`, id,
	)
	out, err := scanStat(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PlayerMatchStat{}, repository.ErrNotFound
		}
		return model.PlayerMatchStat{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *statRepository) ListByMatch(ctx context.Context, matchID int64) ([]model.PlayerMatchStat, error) {
	return r.list(ctx,
		`SELECT `+statColumns+` FROM player_match_stats WHERE match_id = $1 ORDER BY id`, matchID)
}

func (r *statRepository) ListBySport(ctx context.Context, sport string) ([]model.PlayerMatchStat, error) {
	return r.list(ctx,
		`SELECT `+statColumns+` FROM player_match_stats WHERE sport = $1 ORDER BY id`, sport)
}

func (r *statRepository) list(ctx context.Context, sql string, arg any) ([]model.PlayerMatchStat, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, sql, arg)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.PlayerMatchStat, 0, 32)
	for rows.Next() {
		it, err := scanStat(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

func (r *statRepository) UpdateFantasyPoints(ctx context.Context, id int64, total float64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx,
		`UPDATE player_match_stats SET fantasy_points = $2, updated_at = NOW() WHERE id = $1`,
		id, total,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.StatRepository = (*statRepository)(nil)
