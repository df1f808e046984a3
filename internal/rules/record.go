package rules

import (
	"errors"
	"strings"

	"github.com/maxviazov/fantasy-points-service/internal/model"
)

var (
	errMissingCategory = errors.New("missing category")
	errMissingAction   = errors.New("missing action")
	errUnknownKind     = errors.New("unknown kind")
	errBadPayload      = errors.New("payload does not match kind")
)

// fromRecord validates one raw storage record into a typed Rule. Records
// with a missing identity or a payload that does not match the declared kind
// are rejected so untyped shapes never reach the engine.
func fromRecord(rec model.ScoringRuleRecord) (Rule, error) {
	category := strings.ToLower(strings.TrimSpace(rec.Category))
	action := strings.ToLower(strings.TrimSpace(rec.Action))
	if category == "" {
		return Rule{}, errMissingCategory
	}
	if action == "" {
		return Rule{}, errMissingAction
	}

	r := Rule{
		ID:       rec.ID,
		Sport:    strings.ToLower(strings.TrimSpace(rec.Sport)),
		Category: category,
		Action:   action,
		Points:   rec.Points,
		updated:  rec.UpdatedAt.UnixNano(),
	}

	switch Kind(strings.ToLower(strings.TrimSpace(rec.Kind))) {
	case KindFlat:
		r.Kind = KindFlat
	case KindMilestone:
		if rec.Threshold == nil {
			return Rule{}, errBadPayload
		}
		r.Kind = KindMilestone
		r.Threshold = *rec.Threshold
	case KindRange:
		if rec.RangeMin == nil && rec.RangeMax == nil {
			return Rule{}, errBadPayload
		}
		r.Kind = KindRange
		if rec.RangeMin != nil {
			r.Min = *rec.RangeMin
			r.HasMin = true
		}
		if rec.RangeMax != nil {
			r.Max = *rec.RangeMax
			r.HasMax = true
		}
	case KindPosition:
		if rec.Position == nil || strings.TrimSpace(*rec.Position) == "" {
			return Rule{}, errBadPayload
		}
		r.Kind = KindPosition
		r.Position = model.NormalizePosition(*rec.Position)
	case KindInterval:
		if rec.Every == nil || *rec.Every <= 0 {
			return Rule{}, errBadPayload
		}
		r.Kind = KindInterval
		r.Every = *rec.Every
	case KindMultiplier:
		if rec.Multiplier == nil || *rec.Multiplier <= 0 {
			return Rule{}, errBadPayload
		}
		r.Kind = KindMultiplier
		r.Factor = *rec.Multiplier
	default:
		return Rule{}, errUnknownKind
	}

	return r, nil
}
