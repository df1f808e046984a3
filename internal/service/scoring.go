package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/recalc"
	"github.com/maxviazov/fantasy-points-service/internal/repository"
	"github.com/maxviazov/fantasy-points-service/internal/rules"
	"github.com/maxviazov/fantasy-points-service/internal/scoring"
)

type scoringService struct {
	stats  repository.StatRepository
	rules  repository.RuleRepository
	driver *recalc.Driver
	log    zerolog.Logger
}

func NewScoringService(stats repository.StatRepository, ruleRepo repository.RuleRepository, driver *recalc.Driver, logger zerolog.Logger) ScoringService {
	l := logger.With().Str("module", "service").Str("component", "scoring").Logger()
	return &scoringService{stats: stats, rules: ruleRepo, driver: driver, log: l}
}

func (s *scoringService) PreviewScore(ctx context.Context, stat model.PlayerMatchStat) (model.ScoreBreakdown, error) {
	if err := NewInvalidInputError(validateStat(stat)); err != nil {
		return model.ScoreBreakdown{}, err
	}
	rs := s.loadRuleSet(ctx, stat.Sport)
	return scoring.ScoreForSport(stat.Sport, stat, rs), nil
}

func (s *scoringService) RecalculateMatch(ctx context.Context, matchID int64) (model.RecalculationResult, error) {
	if matchID <= 0 {
		return model.RecalculationResult{}, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must be > 0"}})
	}
	records, err := s.stats.ListByMatch(ctx, matchID)
	if err != nil {
		s.log.Error().Err(err).Int64("match_id", matchID).Msg("list stats by match failed")
		return model.RecalculationResult{}, err
	}
	if len(records) == 0 {
		return model.RecalculationResult{}, nil
	}
	// All rows of one match share the fixture's sport.
	return s.run(ctx, records[0].Sport, records), nil
}

func (s *scoringService) RecalculateSport(ctx context.Context, sport string) (model.RecalculationResult, error) {
	sport = strings.ToLower(strings.TrimSpace(sport))
	if sport == "" {
		return model.RecalculationResult{}, NewInvalidInputError([]FieldError{{Field: "sport", Message: "must not be empty"}})
	}
	records, err := s.stats.ListBySport(ctx, sport)
	if err != nil {
		s.log.Error().Err(err).Str("sport", sport).Msg("list stats by sport failed")
		return model.RecalculationResult{}, err
	}
	return s.run(ctx, sport, records), nil
}

func (s *scoringService) ListRules(ctx context.Context, sport string, page repository.Page) (repository.PageResult[model.ScoringRuleRecord], error) {
	sport = strings.ToLower(strings.TrimSpace(sport))
	if sport == "" {
		return repository.PageResult[model.ScoringRuleRecord]{}, NewInvalidInputError([]FieldError{{Field: "sport", Message: "must not be empty"}})
	}
	res, err := s.rules.List(ctx, sport, normalizePage(page))
	if err != nil {
		s.log.Error().Err(err).Str("sport", sport).Msg("list rules failed")
		return repository.PageResult[model.ScoringRuleRecord]{}, err
	}
	return res, nil
}

func (s *scoringService) run(ctx context.Context, sport string, records []model.PlayerMatchStat) model.RecalculationResult {
	start := time.Now()
	rs := s.loadRuleSet(ctx, sport)
	result := s.driver.RecalculateAll(ctx, records, rs, s.stats.UpdateFantasyPoints)
	s.log.Info().
		Dur("took", time.Since(start)).
		Str("sport", sport).
		Str("run_id", result.RunID).
		Int("updated", result.UpdatedCount).
		Int("failed", result.FailedCount).
		Msg("recalculation completed")
	return result
}

// loadRuleSet layers stored overrides onto the built-in defaults. A rule
// store failure degrades to the defaults instead of aborting: a skipped
// override is visible in the breakdown, a dead admin action is not.
func (s *scoringService) loadRuleSet(ctx context.Context, sport string) *rules.RuleSet {
	records, err := s.rules.ListActive(ctx, sport)
	if err != nil {
		s.log.Warn().Err(err).Str("sport", sport).Msg("rule store unavailable, scoring with defaults")
		return rules.Defaults(sport)
	}
	return rules.FromRecords(sport, records, s.log)
}
