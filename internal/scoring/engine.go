// Package scoring is the pure fantasy points engine: one stat record plus
// one rule set in, one breakdown out. No I/O, no mutation of inputs, and
// deterministic output at two decimal places.
package scoring

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/rules"
)

// ScoreForSport routes a stat record to the sport-specific formula. Unknown
// sport names degrade to ScoreGeneric, the named basic scorer, rather than
// failing; the admin flow must keep working when a new sport row appears
// before its formula does.
func ScoreForSport(sport string, stat model.PlayerMatchStat, rs *rules.RuleSet) model.ScoreBreakdown {
	switch strings.ToLower(strings.TrimSpace(sport)) {
	case model.SportCricket:
		return ScoreCricket(stat, rs)
	case model.SportFootball:
		return ScoreFootball(stat, rs)
	default:
		return ScoreGeneric(stat, rs)
	}
}

// ScoreGeneric is the degraded scorer for sports without a dedicated
// formula. It applies the football-shaped attack/defense/appearance terms to
// whatever fields are populated (missing fields are simply zero) using the
// Forward-equivalent rule values, and skips every position-gated block.
func ScoreGeneric(stat model.PlayerMatchStat, rs *rules.RuleSet) model.ScoreBreakdown {
	attacking := float64(stat.Goals)*rs.FlatFor(model.CategoryAttacking, rules.ActionGoal, model.PositionForward) +
		float64(stat.Assists)*rs.Flat(model.CategoryAttacking, rules.ActionAssist)

	defensive := float64(stat.Tackles) * rs.Flat(model.CategoryDefensive, rules.ActionTackle)
	defensive += float64(stat.Interceptions) * rs.Flat(model.CategoryDefensive, rules.ActionInterception)
	defensive += float64(stat.Blocks) * rs.Flat(model.CategoryDefensive, rules.ActionBlock)

	appearance := milestoneAward(rs.Milestones(model.CategoryAppearance, rules.ActionMinutes), float64(stat.MinutesPlayed))
	discipline := disciplineTotal(stat, rs)

	total := math.Max(attacking+defensive+appearance+discipline, 0)
	return model.ScoreBreakdown{
		Subtotals: map[string]float64{
			model.CategoryAttacking:  round2(attacking),
			model.CategoryDefensive:  round2(defensive),
			model.CategoryAppearance: round2(appearance),
			model.CategoryDiscipline: round2(discipline),
		},
		Total: round2(total),
	}
}

// milestoneAward returns the bonus of the highest satisfied milestone tier,
// or 0. Tiers arrive sorted by descending threshold, so the first match wins
// and milestones stay mutually exclusive.
func milestoneAward(tiers []rules.Rule, value float64) float64 {
	for _, t := range tiers {
		if value >= t.Threshold {
			return t.Points
		}
	}
	return 0
}

// rangeAdjustment returns the points of the matching range tier with the
// largest magnitude, so the most extreme tier takes priority when several
// nested tiers match. No match yields 0.
func rangeAdjustment(tiers []rules.Rule, value float64) float64 {
	best := 0.0
	for _, t := range tiers {
		if t.HasMin && !(value > t.Min) {
			continue
		}
		if t.HasMax && !(value < t.Max) {
			continue
		}
		if math.Abs(t.Points) > math.Abs(best) {
			best = t.Points
		}
	}
	return best
}

// disciplineTotal sums card deductions. Card rule values are stored negative
// so this is always an addition.
func disciplineTotal(stat model.PlayerMatchStat, rs *rules.RuleSet) float64 {
	return float64(stat.YellowCards)*rs.Flat(model.CategoryDiscipline, rules.ActionYellowCard) +
		float64(stat.RedCards)*rs.Flat(model.CategoryDiscipline, rules.ActionRedCard)
}

// round2 pins a value to two decimal places. Going through decimal avoids
// the drift that stacking many small float terms would otherwise leak into
// stored totals.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
