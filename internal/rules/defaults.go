package rules

import "github.com/maxviazov/fantasy-points-service/internal/model"

// Action names the engine queries. The scoring_rules admin screen writes the
// same strings, so overrides line up with defaults by construction.
const (
	ActionRun             = "run"
	ActionFour            = "four"
	ActionSix             = "six"
	ActionRunsMilestone   = "runs_milestone"
	ActionDuck            = "duck"
	ActionStrikeRate      = "strike_rate"
	ActionWicket          = "wicket"
	ActionWicketMilestone = "wickets_milestone"
	ActionMaiden          = "maiden"
	ActionEconomy         = "economy"
	ActionCatch           = "catch"
	ActionRunOut          = "run_out"
	ActionAssistedRunOut  = "assisted_run_out"
	ActionStumping        = "stumping"

	ActionGoal          = "goal"
	ActionAssist        = "assist"
	ActionCleanSheet    = "clean_sheet"
	ActionTackle        = "tackle"
	ActionInterception  = "interception"
	ActionBlock         = "block"
	ActionSaves         = "saves"
	ActionPenaltySave   = "penalty_save"
	ActionGoalsConceded = "goals_conceded"
	ActionMinutes       = "minutes"

	ActionYellowCard    = "yellow_card"
	ActionRedCard       = "red_card"
	ActionPlayerOfMatch = "player_of_match"
	ActionCaptain       = "captain"
	ActionViceCaptain   = "vice_captain"
)

// defaultRules is the single authoritative default table per sport. The two
// historic constant sets are unified here with the richer bonus tiers as
// canonical.
func defaultRules(sport string) []Rule {
	switch sport {
	case model.SportCricket:
		return cricketDefaults()
	case model.SportFootball:
		return footballDefaults()
	default:
		// The generic degraded scorer reuses the football-shaped table.
		return footballDefaults()
	}
}

func flat(category, action string, points float64) Rule {
	return Rule{Category: category, Action: action, Kind: KindFlat, Points: points}
}

func milestone(category, action string, threshold, bonus float64) Rule {
	return Rule{Category: category, Action: action, Kind: KindMilestone, Threshold: threshold, Points: bonus}
}

func above(category, action string, min, points float64) Rule {
	return Rule{Category: category, Action: action, Kind: KindRange, Min: min, HasMin: true, Points: points}
}

func below(category, action string, max, points float64) Rule {
	return Rule{Category: category, Action: action, Kind: KindRange, Max: max, HasMax: true, Points: points}
}

func positional(category, action string, pos model.Position, points float64) Rule {
	return Rule{Category: category, Action: action, Kind: KindPosition, Position: pos, Points: points}
}

func interval(category, action string, every int, points float64) Rule {
	return Rule{Category: category, Action: action, Kind: KindInterval, Every: every, Points: points}
}

func multiplier(action string, factor float64) Rule {
	return Rule{Category: "multiplier", Action: action, Kind: KindMultiplier, Factor: factor}
}

func cricketDefaults() []Rule {
	return []Rule{
		// Batting.
		flat(model.CategoryBatting, ActionRun, 1),
		flat(model.CategoryBatting, ActionFour, 1),
		flat(model.CategoryBatting, ActionSix, 2),
		milestone(model.CategoryBatting, ActionRunsMilestone, 100, 20),
		milestone(model.CategoryBatting, ActionRunsMilestone, 50, 10),
		milestone(model.CategoryBatting, ActionRunsMilestone, 30, 4),
		flat(model.CategoryBatting, ActionDuck, -5),
		above(model.CategoryBatting, ActionStrikeRate, 170, 6),
		above(model.CategoryBatting, ActionStrikeRate, 150, 4),
		above(model.CategoryBatting, ActionStrikeRate, 130, 2),
		below(model.CategoryBatting, ActionStrikeRate, 50, -6),
		below(model.CategoryBatting, ActionStrikeRate, 60, -4),
		below(model.CategoryBatting, ActionStrikeRate, 70, -2),

		// Bowling.
		flat(model.CategoryBowling, ActionWicket, 25),
		milestone(model.CategoryBowling, ActionWicketMilestone, 5, 16),
		milestone(model.CategoryBowling, ActionWicketMilestone, 4, 8),
		flat(model.CategoryBowling, ActionMaiden, 12),
		below(model.CategoryBowling, ActionEconomy, 5, 6),
		below(model.CategoryBowling, ActionEconomy, 6, 4),
		below(model.CategoryBowling, ActionEconomy, 7, 2),
		above(model.CategoryBowling, ActionEconomy, 11, -6),
		above(model.CategoryBowling, ActionEconomy, 10, -4),
		above(model.CategoryBowling, ActionEconomy, 9, -2),

		// Fielding.
		flat(model.CategoryFielding, ActionCatch, 8),
		flat(model.CategoryFielding, ActionRunOut, 12),
		flat(model.CategoryFielding, ActionAssistedRunOut, 6),
		flat(model.CategoryFielding, ActionStumping, 12),

		// Discipline, stored negative so the engine always adds.
		flat(model.CategoryDiscipline, ActionYellowCard, -1),
		flat(model.CategoryDiscipline, ActionRedCard, -3),

		// Bonuses and multipliers.
		flat(model.CategoryBonus, ActionPlayerOfMatch, 10),
		multiplier(ActionCaptain, 1.5),
		multiplier(ActionViceCaptain, 1.25),
	}
}

func footballDefaults() []Rule {
	return []Rule{
		// Attacking.
		positional(model.CategoryAttacking, ActionGoal, model.PositionGoalkeeper, 6),
		positional(model.CategoryAttacking, ActionGoal, model.PositionDefender, 6),
		positional(model.CategoryAttacking, ActionGoal, model.PositionMidfielder, 5),
		positional(model.CategoryAttacking, ActionGoal, model.PositionForward, 4),
		flat(model.CategoryAttacking, ActionAssist, 3),

		// Defensive. Clean sheet value depends on position; forwards get
		// nothing, so the unknown-position fallback lands on 0 too.
		positional(model.CategoryDefensive, ActionCleanSheet, model.PositionGoalkeeper, 4),
		positional(model.CategoryDefensive, ActionCleanSheet, model.PositionDefender, 4),
		positional(model.CategoryDefensive, ActionCleanSheet, model.PositionMidfielder, 1),
		positional(model.CategoryDefensive, ActionCleanSheet, model.PositionForward, 0),
		flat(model.CategoryDefensive, ActionTackle, 1),
		flat(model.CategoryDefensive, ActionInterception, 1),
		flat(model.CategoryDefensive, ActionBlock, 1),

		// Goalkeeping.
		interval(model.CategoryGoalkeeping, ActionSaves, 3, 1),
		flat(model.CategoryGoalkeeping, ActionPenaltySave, 5),
		milestone(model.CategoryGoalkeeping, ActionGoalsConceded, 4, -3),
		milestone(model.CategoryGoalkeeping, ActionGoalsConceded, 3, -2),
		milestone(model.CategoryGoalkeeping, ActionGoalsConceded, 2, -1),

		// Appearance.
		milestone(model.CategoryAppearance, ActionMinutes, 60, 2),
		milestone(model.CategoryAppearance, ActionMinutes, 1, 1),

		// Discipline.
		flat(model.CategoryDiscipline, ActionYellowCard, -1),
		flat(model.CategoryDiscipline, ActionRedCard, -3),

		// Kept for parity with the admin rule screens; the football formula
		// itself applies no captaincy step.
		multiplier(ActionCaptain, 1.5),
		multiplier(ActionViceCaptain, 1.25),
	}
}
