// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"strings"
	"time"
)

// Sport identifiers as stored in the sports table. Lowercase is canonical;
// the scoring dispatcher normalizes before matching.
const (
	SportCricket  = "cricket"
	SportFootball = "football"
)

// Position is a football player position. Values mirror what the admin UI
// writes into player rows, including short aliases.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

// NormalizePosition folds aliases ("GK", "Def", ...) into canonical values.
// Unknown strings come back lowercased as-is; the scoring engine treats
// those as Forward rather than failing.
func NormalizePosition(raw string) Position {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "goalkeeper", "gk", "keeper":
		return PositionGoalkeeper
	case "defender", "def", "defence", "defense", "cb", "lb", "rb":
		return PositionDefender
	case "midfielder", "mid", "midfield", "cm", "dm", "am":
		return PositionMidfielder
	case "forward", "fwd", "striker", "st", "attacker":
		return PositionForward
	default:
		return Position(strings.ToLower(strings.TrimSpace(raw)))
	}
}

// PlayerMatchStat is one player's raw performance in one match. It mirrors
// the wide player_match_stats row: cricket and football columns coexist and
// the sport of the parent fixture decides which block is meaningful.
type PlayerMatchStat struct {
	ID       int64  `json:"id"`
	PlayerID int64  `json:"player_id"`
	MatchID  int64  `json:"match_id"`
	Sport    string `json:"sport"`

	// Cricket block.
	Runs            int      `json:"runs"`
	BallsFaced      int      `json:"balls_faced"`
	Fours           int      `json:"fours"`
	Sixes           int      `json:"sixes"`
	Dismissed       bool     `json:"dismissed"`
	Wickets         int      `json:"wickets"`
	OversBowled     float64  `json:"overs_bowled"`
	Maidens         int      `json:"maidens"`
	RunsConceded    int      `json:"runs_conceded"`
	EconomyRate     *float64 `json:"economy_rate,omitempty"` // precomputed by the stats feed when present
	Catches         int      `json:"catches"`
	RunOuts         int      `json:"run_outs"`
	AssistedRunOuts int      `json:"assisted_run_outs"`
	Stumpings       int      `json:"stumpings"`

	// Football block.
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	OwnGoals      int    `json:"own_goals"`
	CleanSheets   int    `json:"clean_sheets"`
	Tackles       int    `json:"tackles"`
	Interceptions int    `json:"interceptions"`
	Blocks        int    `json:"blocks"`
	Clearances    int    `json:"clearances"`
	Saves         int    `json:"saves"`
	PenaltySaves  int    `json:"penalty_saves"`
	GoalsConceded int    `json:"goals_conceded"`
	MinutesPlayed int    `json:"minutes_played"`
	Position      string `json:"position"`

	// Shared across sports.
	YellowCards     int  `json:"yellow_cards"`
	RedCards        int  `json:"red_cards"`
	IsCaptain       bool `json:"is_captain"`
	IsViceCaptain   bool `json:"is_vice_captain"`
	IsPlayerOfMatch bool `json:"is_player_of_match"`

	FantasyPoints float64   `json:"fantasy_points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ScoringRuleRecord is a raw scoring_rules row as fetched from storage.
// Shape-specific columns are nullable there, hence the pointers; validation
// into a typed rule happens at RuleSet construction time.
type ScoringRuleRecord struct {
	ID         int64     `json:"id"`
	Sport      string    `json:"sport"`
	Category   string    `json:"category"`
	Action     string    `json:"action"`
	Kind       string    `json:"kind"` // flat, milestone, range, position, interval, multiplier
	Points     float64   `json:"points"`
	Threshold  *float64  `json:"threshold,omitempty"`
	RangeMin   *float64  `json:"range_min,omitempty"`
	RangeMax   *float64  `json:"range_max,omitempty"`
	Position   *string   `json:"position,omitempty"`
	Every      *int      `json:"every,omitempty"`
	Multiplier *float64  `json:"multiplier,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Score category names shared between the engine and breakdown consumers.
const (
	CategoryBatting     = "batting"
	CategoryBowling     = "bowling"
	CategoryFielding    = "fielding"
	CategoryAttacking   = "attacking"
	CategoryDefensive   = "defensive"
	CategoryGoalkeeping = "goalkeeping"
	CategoryAppearance  = "appearance"
	CategoryDiscipline  = "discipline"
	CategoryBonus       = "bonus"
)

// ScoreBreakdown is the categorized result of one scoring call. Subtotals
// and Total are rounded to two decimals; Total is the floored, multiplied
// sum. Created fresh per call and never mutated after return.
type ScoreBreakdown struct {
	Subtotals map[string]float64 `json:"subtotals"`
	Total     float64            `json:"total"`
}

// RecalcFailure records one record the batch driver could not update.
type RecalcFailure struct {
	RecordID int64  `json:"record_id"`
	Reason   string `json:"reason"`
}

// RecalculationResult is the per-batch tally reported back to the admin UI.
type RecalculationResult struct {
	RunID        string          `json:"run_id"`
	UpdatedCount int             `json:"updated_count"`
	FailedCount  int             `json:"failed_count"`
	Failures     []RecalcFailure `json:"failures,omitempty"`
}
