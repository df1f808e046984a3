package repository

import (
	"context"

	"github.com/maxviazov/fantasy-points-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// StatRepository declares persistence operations for player_match_stats.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type StatRepository interface {
	GetByID(ctx context.Context, id int64) (model.PlayerMatchStat, error)
	// ListByMatch returns every stat row of one match in id order.
	ListByMatch(ctx context.Context, matchID int64) ([]model.PlayerMatchStat, error)
	// ListBySport returns every stat row for a sport in id order. This feeds
	// the full-table recalculation, so no pagination: the driver wants the
	// whole input and reports per-record outcomes itself.
	ListBySport(ctx context.Context, sport string) ([]model.PlayerMatchStat, error)
	// UpdateFantasyPoints persists one computed total back onto its row.
	UpdateFantasyPoints(ctx context.Context, id int64, total float64) error
}

// RuleRepository declares persistence operations for scoring_rules.
type RuleRepository interface {
	// ListActive returns the active rule records for a sport. Malformed rows
	// still come back raw; filtering them is RuleSet construction's job.
	ListActive(ctx context.Context, sport string) ([]model.ScoringRuleRecord, error)
	// List returns rule records for the admin screens, active or not.
	List(ctx context.Context, sport string, p Page) (PageResult[model.ScoringRuleRecord], error)
}
