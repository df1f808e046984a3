// Package rules holds the indexed, immutable scoring rule set the engine
// queries. Rules come either from the built-in default tables or from
// scoring_rules records layered on top of them; lookups always fall back to
// the defaults so scoring can proceed with zero configuration.
package rules

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/fantasy-points-service/internal/model"
)

// Kind discriminates the payload shape of a rule.
type Kind string

const (
	KindFlat       Kind = "flat"
	KindMilestone  Kind = "milestone"
	KindRange      Kind = "range"
	KindPosition   Kind = "position"
	KindInterval   Kind = "interval"
	KindMultiplier Kind = "multiplier"
)

// Rule is one validated scoring rule. Only the fields implied by Kind are
// meaningful; the rest stay at zero values.
type Rule struct {
	ID        int64
	Sport     string
	Category  string
	Action    string
	Kind      Kind
	Points    float64
	Threshold float64 // milestone: award Points once value >= Threshold
	Min       float64 // range: applies when value > Min
	Max       float64 // range: applies when value < Max
	HasMin    bool
	HasMax    bool
	Position  model.Position // position: qualifier restricting the rule
	Every     int            // interval: Points per Every whole units
	Factor    float64        // multiplier: scalar applied to a running total
	updated   int64          // recency for duplicate resolution
}

// newer reports whether a beats b when both claim the same tuple: later
// update wins, then higher ID. Built-in defaults carry updated=0 and ID=0,
// so any stored rule beats them.
func newer(a, b Rule) bool {
	if a.updated != b.updated {
		return a.updated > b.updated
	}
	return a.ID > b.ID
}

// RuleSet indexes rules by (category, action) for one sport. Overrides
// shadow the default table per tuple: once any override rules exist for a
// tuple they replace the default rules for that tuple entirely.
type RuleSet struct {
	sport     string
	overrides map[string][]Rule
	defaults  map[string][]Rule
}

func key(category, action string) string { return category + "/" + action }

// Defaults returns the canonical built-in rule set for a sport.
func Defaults(sport string) *RuleSet {
	sport = strings.ToLower(strings.TrimSpace(sport))
	return &RuleSet{
		sport:     sport,
		overrides: map[string][]Rule{},
		defaults:  index(defaultRules(sport)),
	}
}

// FromRecords builds a RuleSet for sport from raw storage records layered
// over the defaults. Malformed records are skipped with a warning, never
// fatal; inactive records and records for other sports are ignored.
func FromRecords(sport string, records []model.ScoringRuleRecord, logger zerolog.Logger) *RuleSet {
	rs := Defaults(sport)
	log := logger.With().Str("module", "rules").Str("sport", rs.sport).Logger()
	for _, rec := range records {
		if !rec.Active {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(rec.Sport), rs.sport) {
			continue
		}
		r, err := fromRecord(rec)
		if err != nil {
			log.Warn().
				Int64("rule_id", rec.ID).
				Str("category", rec.Category).
				Str("action", rec.Action).
				Str("kind", rec.Kind).
				Err(err).
				Msg("skipping malformed scoring rule")
			continue
		}
		k := key(r.Category, r.Action)
		rs.overrides[k] = append(rs.overrides[k], r)
	}
	return rs
}

// Sport reports which sport this rule set was built for.
func (rs *RuleSet) Sport() string { return rs.sport }

// rulesFor returns the active rules for a tuple: overrides if any exist,
// otherwise the defaults.
func (rs *RuleSet) rulesFor(category, action string) []Rule {
	k := key(category, action)
	if over, ok := rs.overrides[k]; ok && len(over) > 0 {
		return over
	}
	return rs.defaults[k]
}

// pick returns the winning rule of a given kind, resolving duplicates
// deterministically via newer.
func (rs *RuleSet) pick(category, action string, kind Kind) (Rule, bool) {
	var best Rule
	found := false
	for _, r := range rs.rulesFor(category, action) {
		if r.Kind != kind {
			continue
		}
		if !found || newer(r, best) {
			best = r
			found = true
		}
	}
	return best, found
}

// Flat returns the flat point value for an action, or 0 when no flat rule
// exists.
func (rs *RuleSet) Flat(category, action string) float64 {
	if r, ok := rs.pick(category, action, KindFlat); ok {
		return r.Points
	}
	return 0
}

// FlatFor resolves a position-qualified point value. A rule matching the
// exact position wins over the Forward-equivalent fallback, which wins over
// a general flat rule. Unknown positions never fail; they take the fallback.
func (rs *RuleSet) FlatFor(category, action string, pos model.Position) float64 {
	var exact, fallback Rule
	haveExact, haveFallback := false, false
	for _, r := range rs.rulesFor(category, action) {
		if r.Kind != KindPosition {
			continue
		}
		switch r.Position {
		case pos:
			if !haveExact || newer(r, exact) {
				exact = r
				haveExact = true
			}
		case model.PositionForward:
			if !haveFallback || newer(r, fallback) {
				fallback = r
				haveFallback = true
			}
		}
	}
	if haveExact {
		return exact.Points
	}
	if haveFallback {
		return fallback.Points
	}
	return rs.Flat(category, action)
}

// Milestones returns milestone rules for an action ordered by descending
// threshold, deduplicated by threshold. The engine awards the first
// satisfied tier only, which keeps milestones mutually exclusive.
func (rs *RuleSet) Milestones(category, action string) []Rule {
	byThreshold := map[float64]Rule{}
	for _, r := range rs.rulesFor(category, action) {
		if r.Kind != KindMilestone {
			continue
		}
		if prev, ok := byThreshold[r.Threshold]; !ok || newer(r, prev) {
			byThreshold[r.Threshold] = r
		}
	}
	out := make([]Rule, 0, len(byThreshold))
	for _, r := range byThreshold {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Threshold > out[j].Threshold })
	return out
}

// Ranges returns the range rules for an action, deduplicated by bounds.
func (rs *RuleSet) Ranges(category, action string) []Rule {
	type bounds struct {
		min, max       float64
		hasMin, hasMax bool
	}
	byBounds := map[bounds]Rule{}
	for _, r := range rs.rulesFor(category, action) {
		if r.Kind != KindRange {
			continue
		}
		b := bounds{min: r.Min, max: r.Max, hasMin: r.HasMin, hasMax: r.HasMax}
		if prev, ok := byBounds[b]; !ok || newer(r, prev) {
			byBounds[b] = r
		}
	}
	out := make([]Rule, 0, len(byBounds))
	for _, r := range byBounds {
		out = append(out, r)
	}
	// Deterministic order; the engine selects by magnitude, not position.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Interval returns the interval rule (Points per Every whole units) for an
// action. ok is false when no interval rule exists.
func (rs *RuleSet) Interval(category, action string) (every int, points float64, ok bool) {
	r, found := rs.pick(category, action, KindInterval)
	if !found || r.Every <= 0 {
		return 0, 0, false
	}
	return r.Every, r.Points, true
}

// Multiplier returns the scalar for a multiplier action (captain,
// vice_captain), falling back to 1 when absent.
func (rs *RuleSet) Multiplier(action string) float64 {
	r, found := rs.pick("multiplier", action, KindMultiplier)
	if !found || r.Factor <= 0 {
		return 1
	}
	return r.Factor
}

func index(rules []Rule) map[string][]Rule {
	m := make(map[string][]Rule, len(rules))
	for _, r := range rules {
		k := key(r.Category, r.Action)
		m[k] = append(m[k], r)
	}
	return m
}
