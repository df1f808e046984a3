package recalc_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/recalc"
	"github.com/maxviazov/fantasy-points-service/internal/rules"
)

func testDriver() *recalc.Driver { return recalc.NewDriver(zerolog.New(io.Discard)) }

func cricketBatch() []model.PlayerMatchStat {
	return []model.PlayerMatchStat{
		{ID: 1, Sport: model.SportCricket, Runs: 55, BallsFaced: 40, Fours: 6, Sixes: 1, Catches: 1},
		{ID: 2, Sport: model.SportCricket, Wickets: 5, Maidens: 2, OversBowled: 10, RunsConceded: 42},
		{ID: 3, Sport: model.SportCricket, Runs: 30, BallsFaced: 30},
	}
}

func TestRecalculateAll_AppliesInInputOrder(t *testing.T) {
	var applied []int64
	totals := map[int64]float64{}
	apply := func(ctx context.Context, id int64, total float64) error {
		applied = append(applied, id)
		totals[id] = total
		return nil
	}

	res := testDriver().RecalculateAll(context.Background(), cricketBatch(), rules.Defaults(model.SportCricket), apply)

	if res.UpdatedCount != 3 || res.FailedCount != 0 {
		t.Fatalf("expected 3 updates, got %+v", res)
	}
	if res.RunID == "" {
		t.Fatal("run id must be set")
	}
	if len(applied) != 3 || applied[0] != 1 || applied[1] != 2 || applied[2] != 3 {
		t.Fatalf("apply order: got %v", applied)
	}
	if totals[1] != 83 || totals[2] != 171 || totals[3] != 34 {
		t.Fatalf("unexpected totals: %v", totals)
	}
}

func TestRecalculateAll_FailedApplyDoesNotAbortBatch(t *testing.T) {
	boom := errors.New("storage unavailable")
	apply := func(ctx context.Context, id int64, total float64) error {
		if id == 2 {
			return boom
		}
		return nil
	}

	res := testDriver().RecalculateAll(context.Background(), cricketBatch(), rules.Defaults(model.SportCricket), apply)

	if res.UpdatedCount != 2 || res.FailedCount != 1 {
		t.Fatalf("expected 2 updated / 1 failed, got %+v", res)
	}
	if len(res.Failures) != 1 || res.Failures[0].RecordID != 2 || res.Failures[0].Reason != boom.Error() {
		t.Fatalf("unexpected failure entry: %+v", res.Failures)
	}
}

func TestRecalculateAll_CancelledContextTalliesRemaining(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	applied := 0
	res := testDriver().RecalculateAll(ctx, cricketBatch(), rules.Defaults(model.SportCricket),
		func(context.Context, int64, float64) error { applied++; return nil })

	if applied != 0 {
		t.Fatalf("cancelled context must stop submission, applied %d", applied)
	}
	if res.UpdatedCount != 0 || res.FailedCount != 3 || len(res.Failures) != 3 {
		t.Fatalf("every record must be tallied: %+v", res)
	}
}

func TestRecalculateAll_EmptyBatch(t *testing.T) {
	res := testDriver().RecalculateAll(context.Background(), nil, rules.Defaults(model.SportCricket),
		func(context.Context, int64, float64) error { t.Fatal("apply must not be called"); return nil })
	if res.UpdatedCount != 0 || res.FailedCount != 0 {
		t.Fatalf("empty batch: %+v", res)
	}
}
