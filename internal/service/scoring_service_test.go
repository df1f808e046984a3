package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/recalc"
	"github.com/maxviazov/fantasy-points-service/internal/repository"
	"github.com/maxviazov/fantasy-points-service/internal/service"
)

type fakeStatRepo struct {
	records   []model.PlayerMatchStat
	listErr   error
	updateErr map[int64]error
	updated   map[int64]float64
	lastMatch int64
	lastSport string
}

func (f *fakeStatRepo) GetByID(_ context.Context, id int64) (model.PlayerMatchStat, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.PlayerMatchStat{}, repository.ErrNotFound
}

func (f *fakeStatRepo) ListByMatch(_ context.Context, matchID int64) ([]model.PlayerMatchStat, error) {
	f.lastMatch = matchID
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.PlayerMatchStat
	for _, r := range f.records {
		if r.MatchID == matchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStatRepo) ListBySport(_ context.Context, sport string) ([]model.PlayerMatchStat, error) {
	f.lastSport = sport
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.PlayerMatchStat
	for _, r := range f.records {
		if r.Sport == sport {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStatRepo) UpdateFantasyPoints(_ context.Context, id int64, total float64) error {
	if err := f.updateErr[id]; err != nil {
		return err
	}
	if f.updated == nil {
		f.updated = map[int64]float64{}
	}
	f.updated[id] = total
	return nil
}

type fakeRuleRepo struct {
	records  []model.ScoringRuleRecord
	err      error
	lastPage repository.Page
}

func (f *fakeRuleRepo) ListActive(_ context.Context, sport string) ([]model.ScoringRuleRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeRuleRepo) List(_ context.Context, sport string, page repository.Page) (repository.PageResult[model.ScoringRuleRecord], error) {
	f.lastPage = page
	if f.err != nil {
		return repository.PageResult[model.ScoringRuleRecord]{}, f.err
	}
	return repository.PageResult[model.ScoringRuleRecord]{Items: f.records, Total: len(f.records)}, nil
}

func newService(stats *fakeStatRepo, ruleRepo *fakeRuleRepo) service.ScoringService {
	log := zerolog.New(io.Discard)
	return service.NewScoringService(stats, ruleRepo, recalc.NewDriver(log), log)
}

func TestPreviewScore_ComputesWithDefaults(t *testing.T) {
	svc := newService(&fakeStatRepo{}, &fakeRuleRepo{})
	stat := model.PlayerMatchStat{
		Sport: model.SportCricket,
		Runs:  55, BallsFaced: 40, Fours: 6, Sixes: 1, Catches: 1,
	}
	got, err := svc.PreviewScore(context.Background(), stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 83 {
		t.Fatalf("total: got %v want 83", got.Total)
	}
}

func TestPreviewScore_RejectsNegativeCounts(t *testing.T) {
	svc := newService(&fakeStatRepo{}, &fakeRuleRepo{})
	stat := model.PlayerMatchStat{Sport: model.SportCricket, Runs: -1, Catches: -2}

	_, err := svc.PreviewScore(context.Background(), stat)
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	fields := service.FieldErrors(err)
	if len(fields) != 2 || fields[0].Field != "runs" || fields[1].Field != "catches" {
		t.Fatalf("unexpected field errors: %+v", fields)
	}
}

func TestPreviewScore_RuleStoreFailureFallsBackToDefaults(t *testing.T) {
	svc := newService(&fakeStatRepo{}, &fakeRuleRepo{err: errors.New("connection refused")})
	stat := model.PlayerMatchStat{Sport: model.SportCricket, Runs: 55, BallsFaced: 40, Fours: 6, Sixes: 1, Catches: 1}

	got, err := svc.PreviewScore(context.Background(), stat)
	if err != nil {
		t.Fatalf("rule store failure must not surface: %v", err)
	}
	if got.Total != 83 {
		t.Fatalf("defaults total: got %v want 83", got.Total)
	}
}

func TestPreviewScore_AppliesStoredOverrides(t *testing.T) {
	ruleRepo := &fakeRuleRepo{records: []model.ScoringRuleRecord{
		{ID: 1, Sport: "cricket", Category: "fielding", Action: "catch", Kind: "flat", Points: 10, Active: true},
	}}
	svc := newService(&fakeStatRepo{}, ruleRepo)
	stat := model.PlayerMatchStat{Sport: model.SportCricket, Catches: 2}

	got, err := svc.PreviewScore(context.Background(), stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 20 {
		t.Fatalf("override total: got %v want 20", got.Total)
	}
}

func TestRecalculateMatch_PersistsTotals(t *testing.T) {
	stats := &fakeStatRepo{records: []model.PlayerMatchStat{
		{ID: 1, MatchID: 7, Sport: model.SportCricket, Runs: 55, BallsFaced: 40, Fours: 6, Sixes: 1, Catches: 1},
		{ID: 2, MatchID: 7, Sport: model.SportCricket, Wickets: 5, Maidens: 2, OversBowled: 10, RunsConceded: 42},
		{ID: 3, MatchID: 8, Sport: model.SportCricket, Runs: 10},
	}}
	svc := newService(stats, &fakeRuleRepo{})

	res, err := svc.RecalculateMatch(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UpdatedCount != 2 || res.FailedCount != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if stats.updated[1] != 83 || stats.updated[2] != 171 {
		t.Fatalf("unexpected persisted totals: %v", stats.updated)
	}
	if _, ok := stats.updated[3]; ok {
		t.Fatal("rows of other matches must not be touched")
	}
}

func TestRecalculateMatch_PartialFailure(t *testing.T) {
	stats := &fakeStatRepo{
		records: []model.PlayerMatchStat{
			{ID: 1, MatchID: 7, Sport: model.SportCricket, Runs: 10},
			{ID: 2, MatchID: 7, Sport: model.SportCricket, Runs: 20},
			{ID: 3, MatchID: 7, Sport: model.SportCricket, Runs: 30},
		},
		updateErr: map[int64]error{2: errors.New("row locked")},
	}
	svc := newService(stats, &fakeRuleRepo{})

	res, err := svc.RecalculateMatch(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UpdatedCount != 2 || res.FailedCount != 1 {
		t.Fatalf("expected 2 updated / 1 failed, got %+v", res)
	}
	if len(res.Failures) != 1 || res.Failures[0].RecordID != 2 || res.Failures[0].Reason != "row locked" {
		t.Fatalf("unexpected failures: %+v", res.Failures)
	}
}

func TestRecalculateMatch_Validation(t *testing.T) {
	svc := newService(&fakeStatRepo{}, &fakeRuleRepo{})
	_, err := svc.RecalculateMatch(context.Background(), 0)
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecalculateMatch_EmptyMatch(t *testing.T) {
	svc := newService(&fakeStatRepo{}, &fakeRuleRepo{})
	res, err := svc.RecalculateMatch(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UpdatedCount != 0 || res.FailedCount != 0 {
		t.Fatalf("empty match must produce an empty result: %+v", res)
	}
}

func TestRecalculateMatch_ListErrorSurfaces(t *testing.T) {
	boom := errors.New("db down")
	svc := newService(&fakeStatRepo{listErr: boom}, &fakeRuleRepo{})
	if _, err := svc.RecalculateMatch(context.Background(), 7); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}

func TestRecalculateSport_NormalizesAndRuns(t *testing.T) {
	stats := &fakeStatRepo{records: []model.PlayerMatchStat{
		{ID: 1, MatchID: 1, Sport: model.SportFootball, Position: "forward", Goals: 2, Assists: 1, MinutesPlayed: 75},
	}}
	svc := newService(stats, &fakeRuleRepo{})

	res, err := svc.RecalculateSport(context.Background(), "  Football ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.lastSport != "football" {
		t.Fatalf("sport must be normalized, got %q", stats.lastSport)
	}
	if res.UpdatedCount != 1 || stats.updated[1] != 13 {
		t.Fatalf("unexpected result: %+v totals=%v", res, stats.updated)
	}
}

func TestRecalculateSport_EmptySportRejected(t *testing.T) {
	svc := newService(&fakeStatRepo{}, &fakeRuleRepo{})
	if _, err := svc.RecalculateSport(context.Background(), "   "); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListRules_NormalizesPaging(t *testing.T) {
	ruleRepo := &fakeRuleRepo{records: []model.ScoringRuleRecord{{ID: 1}}}
	svc := newService(&fakeStatRepo{}, ruleRepo)

	res, err := svc.ListRules(context.Background(), "cricket", repository.Page{Limit: 0, Offset: -3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ruleRepo.lastPage.Limit != 50 || ruleRepo.lastPage.Offset != 0 {
		t.Fatalf("page not normalized: %+v", ruleRepo.lastPage)
	}
	if res.Total != 1 {
		t.Fatalf("unexpected total: %d", res.Total)
	}
}

func TestListRules_EmptySportRejected(t *testing.T) {
	svc := newService(&fakeStatRepo{}, &fakeRuleRepo{})
	if _, err := svc.ListRules(context.Background(), "", repository.Page{}); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
