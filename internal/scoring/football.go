package scoring

import (
	"math"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/rules"
)

// ScoreFootball computes the football fantasy total for one stat record.
// The player position picks the goal/assist/clean-sheet values; unknown or
// custom position strings resolve to the Forward-equivalent table.
func ScoreFootball(stat model.PlayerMatchStat, rs *rules.RuleSet) model.ScoreBreakdown {
	pos := model.NormalizePosition(stat.Position)

	attacking := float64(stat.Goals)*rs.FlatFor(model.CategoryAttacking, rules.ActionGoal, pos) +
		float64(stat.Assists)*rs.Flat(model.CategoryAttacking, rules.ActionAssist)

	defensive := 0.0
	// Clean sheet is a boolean trigger: one bonus regardless of how many
	// clean-sheet credits a single record carries.
	if stat.CleanSheets > 0 {
		defensive += rs.FlatFor(model.CategoryDefensive, rules.ActionCleanSheet, pos)
	}
	defensive += float64(stat.Tackles) * rs.Flat(model.CategoryDefensive, rules.ActionTackle)
	defensive += float64(stat.Interceptions) * rs.Flat(model.CategoryDefensive, rules.ActionInterception)
	defensive += float64(stat.Blocks) * rs.Flat(model.CategoryDefensive, rules.ActionBlock)

	goalkeeping := 0.0
	if pos == model.PositionGoalkeeper {
		if every, points, ok := rs.Interval(model.CategoryGoalkeeping, rules.ActionSaves); ok {
			goalkeeping += math.Floor(float64(stat.Saves)/float64(every)) * points
		}
		goalkeeping += float64(stat.PenaltySaves) * rs.Flat(model.CategoryGoalkeeping, rules.ActionPenaltySave)
		goalkeeping += milestoneAward(rs.Milestones(model.CategoryGoalkeeping, rules.ActionGoalsConceded), float64(stat.GoalsConceded))
	}

	appearance := milestoneAward(rs.Milestones(model.CategoryAppearance, rules.ActionMinutes), float64(stat.MinutesPlayed))
	discipline := disciplineTotal(stat, rs)

	total := math.Max(attacking+defensive+goalkeeping+appearance+discipline, 0)
	return model.ScoreBreakdown{
		Subtotals: map[string]float64{
			model.CategoryAttacking:   round2(attacking),
			model.CategoryDefensive:   round2(defensive),
			model.CategoryGoalkeeping: round2(goalkeeping),
			model.CategoryAppearance:  round2(appearance),
			model.CategoryDiscipline:  round2(discipline),
		},
		Total: round2(total),
	}
}
