// Package contract holds repository contract suites that any implementation
// must pass. The postgres tests wire them against a real database; an
// in-memory implementation could reuse them unchanged.
package contract

import (
	"context"
	"testing"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/repository"
)

// SeedStat inserts a stat row directly into storage and returns its id.
type SeedStat func(ctx context.Context, s model.PlayerMatchStat) (int64, error)

// SeedRule inserts a rule row directly into storage and returns its id.
type SeedRule func(ctx context.Context, r model.ScoringRuleRecord) (int64, error)

type StatFactory func(t *testing.T) (repo repository.StatRepository, seed SeedStat, cleanup func())

type RuleFactory func(t *testing.T) (repo repository.RuleRepository, seed SeedRule, cleanup func())

func RunStatRepositoryContract(t *testing.T, makeRepo StatFactory) {
	t.Helper()

	t.Run("list_by_match_in_id_order", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		first, err := seed(ctx, model.PlayerMatchStat{PlayerID: 1, MatchID: 7, Sport: model.SportCricket, Runs: 30})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		second, err := seed(ctx, model.PlayerMatchStat{PlayerID: 2, MatchID: 7, Sport: model.SportCricket, Runs: 55})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if _, err := seed(ctx, model.PlayerMatchStat{PlayerID: 3, MatchID: 8, Sport: model.SportCricket}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		got, err := repo.ListByMatch(ctx, 7)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != first || got[1].ID != second {
			t.Fatalf("unexpected listing: %+v", got)
		}
	})

	t.Run("list_by_sport", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		if _, err := seed(ctx, model.PlayerMatchStat{PlayerID: 1, MatchID: 1, Sport: model.SportCricket}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if _, err := seed(ctx, model.PlayerMatchStat{PlayerID: 1, MatchID: 2, Sport: model.SportFootball}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		got, err := repo.ListBySport(ctx, model.SportFootball)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 1 || got[0].Sport != model.SportFootball {
			t.Fatalf("unexpected listing: %+v", got)
		}
	})

	t.Run("update_fantasy_points_roundtrip", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		id, err := seed(ctx, model.PlayerMatchStat{PlayerID: 9, MatchID: 9, Sport: model.SportCricket, Runs: 55})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if err := repo.UpdateFantasyPoints(ctx, id, 83); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		got, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.FantasyPoints != 83 {
			t.Fatalf("expected 83 points, got %v", got.FantasyPoints)
		}
	})

	t.Run("update_missing_row_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if err := repo.UpdateFantasyPoints(context.Background(), 999999, 1); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if _, err := repo.GetByID(context.Background(), 999999); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunRuleRepositoryContract(t *testing.T, makeRepo RuleFactory) {
	t.Helper()

	threshold := 50.0

	t.Run("list_active_filters_inactive_and_other_sports", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		active, err := seed(ctx, model.ScoringRuleRecord{
			Sport: model.SportCricket, Category: model.CategoryBatting, Action: "runs_milestone",
			Kind: "milestone", Points: 12, Threshold: &threshold, Active: true,
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if _, err := seed(ctx, model.ScoringRuleRecord{
			Sport: model.SportCricket, Category: model.CategoryBatting, Action: "run",
			Kind: "flat", Points: 2, Active: false,
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if _, err := seed(ctx, model.ScoringRuleRecord{
			Sport: model.SportFootball, Category: model.CategoryAttacking, Action: "assist",
			Kind: "flat", Points: 4, Active: true,
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		got, err := repo.ListActive(ctx, model.SportCricket)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != active {
			t.Fatalf("unexpected listing: %+v", got)
		}
	})

	t.Run("list_pages_with_total", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if _, err := seed(ctx, model.ScoringRuleRecord{
				Sport: model.SportCricket, Category: model.CategoryFielding, Action: "catch",
				Kind: "flat", Points: float64(i), Active: i%2 == 0,
			}); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
		}

		res, err := repo.List(ctx, model.SportCricket, repository.Page{Limit: 2, Offset: 0})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if res.Total != 3 || len(res.Items) != 2 {
			t.Fatalf("expected total=3 items=2, got total=%d items=%d", res.Total, len(res.Items))
		}
	})
}
