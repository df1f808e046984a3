package service

import (
	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/repository"
)

const defaultLimit = 50

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

// validateStat checks the count fields the engine trusts to be non-negative.
// Sport and position are deliberately not validated here: unknown values are
// legal inputs the engine degrades on, not client errors.
func validateStat(stat model.PlayerMatchStat) []FieldError {
	var ferrs []FieldError
	counts := []struct {
		field string
		value int
	}{
		{"runs", stat.Runs},
		{"balls_faced", stat.BallsFaced},
		{"fours", stat.Fours},
		{"sixes", stat.Sixes},
		{"wickets", stat.Wickets},
		{"maidens", stat.Maidens},
		{"runs_conceded", stat.RunsConceded},
		{"catches", stat.Catches},
		{"run_outs", stat.RunOuts},
		{"assisted_run_outs", stat.AssistedRunOuts},
		{"stumpings", stat.Stumpings},
		{"goals", stat.Goals},
		{"assists", stat.Assists},
		{"own_goals", stat.OwnGoals},
		{"clean_sheets", stat.CleanSheets},
		{"tackles", stat.Tackles},
		{"interceptions", stat.Interceptions},
		{"blocks", stat.Blocks},
		{"clearances", stat.Clearances},
		{"saves", stat.Saves},
		{"penalty_saves", stat.PenaltySaves},
		{"goals_conceded", stat.GoalsConceded},
		{"minutes_played", stat.MinutesPlayed},
		{"yellow_cards", stat.YellowCards},
		{"red_cards", stat.RedCards},
	}
	for _, c := range counts {
		if c.value < 0 {
			ferrs = append(ferrs, FieldError{Field: c.field, Message: "must be >= 0"})
		}
	}
	if stat.OversBowled < 0 {
		ferrs = append(ferrs, FieldError{Field: "overs_bowled", Message: "must be >= 0"})
	}
	if stat.EconomyRate != nil && *stat.EconomyRate < 0 {
		ferrs = append(ferrs, FieldError{Field: "economy_rate", Message: "must be >= 0"})
	}
	return ferrs
}
