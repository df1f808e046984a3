package scoring

import (
	"math"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/rules"
)

// minBallsForStrikeRate guards the strike-rate adjustment against
// small-sample distortion: a six off two balls is not a 300 strike rate
// worth six bonus points.
const minBallsForStrikeRate = 10

// ScoreCricket computes the cricket fantasy total for one stat record.
//
// Contribution order matters only at the end: the captain or vice-captain
// multiplier scales the full running total, the player-of-match bonus lands
// after the multiplier, and the result is floored at zero.
func ScoreCricket(stat model.PlayerMatchStat, rs *rules.RuleSet) model.ScoreBreakdown {
	batting := float64(stat.Runs)*rs.Flat(model.CategoryBatting, rules.ActionRun) +
		float64(stat.Fours)*rs.Flat(model.CategoryBatting, rules.ActionFour) +
		float64(stat.Sixes)*rs.Flat(model.CategoryBatting, rules.ActionSix)

	batting += milestoneAward(rs.Milestones(model.CategoryBatting, rules.ActionRunsMilestone), float64(stat.Runs))

	// A duck is a dismissal for zero; a not-out zero carries no penalty.
	// The duck rule value is stored negative, so it is added.
	if stat.Runs == 0 && stat.Dismissed {
		batting += rs.Flat(model.CategoryBatting, rules.ActionDuck)
	}

	if stat.BallsFaced >= minBallsForStrikeRate {
		strikeRate := float64(stat.Runs) / float64(stat.BallsFaced) * 100
		batting += rangeAdjustment(rs.Ranges(model.CategoryBatting, rules.ActionStrikeRate), strikeRate)
	}

	bowling := float64(stat.Wickets) * rs.Flat(model.CategoryBowling, rules.ActionWicket)
	bowling += milestoneAward(rs.Milestones(model.CategoryBowling, rules.ActionWicketMilestone), float64(stat.Wickets))
	bowling += float64(stat.Maidens) * rs.Flat(model.CategoryBowling, rules.ActionMaiden)

	// Economy adjustments. Both the over-derived rate and the precomputed
	// economy_rate column apply when present; that matches the current
	// observable scoring and stays until product decides otherwise.
	econTiers := rs.Ranges(model.CategoryBowling, rules.ActionEconomy)
	if stat.OversBowled > 0 && stat.RunsConceded > 0 {
		bowling += rangeAdjustment(econTiers, float64(stat.RunsConceded)/stat.OversBowled)
	}
	if stat.EconomyRate != nil && *stat.EconomyRate > 0 {
		bowling += rangeAdjustment(econTiers, *stat.EconomyRate)
	}

	fielding := float64(stat.Catches)*rs.Flat(model.CategoryFielding, rules.ActionCatch) +
		float64(stat.RunOuts)*rs.Flat(model.CategoryFielding, rules.ActionRunOut) +
		float64(stat.AssistedRunOuts)*rs.Flat(model.CategoryFielding, rules.ActionAssistedRunOut) +
		float64(stat.Stumpings)*rs.Flat(model.CategoryFielding, rules.ActionStumping)

	discipline := disciplineTotal(stat, rs)

	total := batting + bowling + fielding + discipline
	switch {
	case stat.IsCaptain:
		total *= rs.Multiplier(rules.ActionCaptain)
	case stat.IsViceCaptain:
		total *= rs.Multiplier(rules.ActionViceCaptain)
	}

	bonus := 0.0
	if stat.IsPlayerOfMatch {
		bonus = rs.Flat(model.CategoryBonus, rules.ActionPlayerOfMatch)
		total += bonus
	}

	total = math.Max(total, 0)
	return model.ScoreBreakdown{
		Subtotals: map[string]float64{
			model.CategoryBatting:    round2(batting),
			model.CategoryBowling:    round2(bowling),
			model.CategoryFielding:   round2(fielding),
			model.CategoryDiscipline: round2(discipline),
			model.CategoryBonus:      round2(bonus),
		},
		Total: round2(total),
	}
}
