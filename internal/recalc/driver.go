// Package recalc applies the scoring engine across many stat records and
// persists totals through an injected collaborator. One bad record never
// aborts the batch.
package recalc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/rules"
	"github.com/maxviazov/fantasy-points-service/internal/scoring"
)

// ApplyFunc persists one computed total. The driver owns no persistence
// client; whatever the caller injects here is the only side effect.
type ApplyFunc func(ctx context.Context, recordID int64, total float64) error

// Driver runs batch recalculations sequentially, in input order. The apply
// collaborator is not assumed safe for concurrent writes, so there is no
// fan-out here; scoring itself is O(1) per record and not worth parallelism.
type Driver struct {
	log zerolog.Logger
}

func NewDriver(logger zerolog.Logger) *Driver {
	return &Driver{log: logger.With().Str("module", "recalc").Logger()}
}

// RecalculateAll scores every record with the given rule set and applies the
// totals one by one. A failed apply is tallied with its reason and the batch
// continues; no retries happen here, retry policy belongs to the
// collaborator behind apply. Context cancellation stops submission between
// records, and records never submitted count as failures so the tally always
// covers the whole input.
func (d *Driver) RecalculateAll(ctx context.Context, records []model.PlayerMatchStat, rs *rules.RuleSet, apply ApplyFunc) model.RecalculationResult {
	start := time.Now()
	result := model.RecalculationResult{RunID: uuid.NewString()}
	log := d.log.With().Str("run_id", result.RunID).Logger()

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			for _, rest := range records[i:] {
				result.FailedCount++
				result.Failures = append(result.Failures, model.RecalcFailure{RecordID: rest.ID, Reason: err.Error()})
			}
			log.Warn().Err(err).Int("remaining", len(records)-i).Msg("recalculation interrupted")
			break
		}

		breakdown := scoring.ScoreForSport(rec.Sport, rec, rs)
		if err := apply(ctx, rec.ID, breakdown.Total); err != nil {
			result.FailedCount++
			result.Failures = append(result.Failures, model.RecalcFailure{RecordID: rec.ID, Reason: err.Error()})
			log.Warn().Err(err).Int64("record_id", rec.ID).Msg("apply failed, continuing batch")
			continue
		}
		result.UpdatedCount++
	}

	log.Info().
		Dur("took", time.Since(start)).
		Int("updated", result.UpdatedCount).
		Int("failed", result.FailedCount).
		Msg("recalculation finished")
	return result
}
