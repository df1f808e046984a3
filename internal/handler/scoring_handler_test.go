package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/fantasy-points-service/internal/handler"
	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/repository"
	"github.com/maxviazov/fantasy-points-service/internal/service"
)

// stubScoringService lets us control each method outcome.
type stubScoringService struct {
	preview struct {
		res model.ScoreBreakdown
		err error
	}
	recalcMatch struct {
		res model.RecalculationResult
		err error
	}
	recalcSport struct {
		res model.RecalculationResult
		err error
	}
	list struct {
		res repository.PageResult[model.ScoringRuleRecord]
		err error
	}
	gotMatchID int64
	gotSport   string
}

func (s *stubScoringService) PreviewScore(ctx context.Context, stat model.PlayerMatchStat) (model.ScoreBreakdown, error) {
	return s.preview.res, s.preview.err
}

func (s *stubScoringService) RecalculateMatch(ctx context.Context, matchID int64) (model.RecalculationResult, error) {
	s.gotMatchID = matchID
	return s.recalcMatch.res, s.recalcMatch.err
}

func (s *stubScoringService) RecalculateSport(ctx context.Context, sport string) (model.RecalculationResult, error) {
	s.gotSport = sport
	return s.recalcSport.res, s.recalcSport.err
}

func (s *stubScoringService) ListRules(ctx context.Context, sport string, page repository.Page) (repository.PageResult[model.ScoringRuleRecord], error) {
	s.gotSport = sport
	return s.list.res, s.list.err
}

func newAPIEngine(svc service.ScoringService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, stubPinger{}, svc)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPreview_OK(t *testing.T) {
	svc := &stubScoringService{}
	svc.preview.res = model.ScoreBreakdown{
		Subtotals: map[string]float64{model.CategoryBatting: 75, model.CategoryFielding: 8},
		Total:     83,
	}
	r := newAPIEngine(svc)

	w := postJSON(t, r, "/api/v1/score/preview", map[string]any{"sport": "cricket", "runs": 55})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var got model.ScoreBreakdown
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Total != 83 || got.Subtotals[model.CategoryBatting] != 75 {
		t.Fatalf("unexpected breakdown: %+v", got)
	}
}

func TestPreview_ValidationErrorMapsTo400(t *testing.T) {
	svc := &stubScoringService{}
	svc.preview.err = service.NewInvalidInputError([]service.FieldError{{Field: "runs", Message: "must be >= 0"}})
	r := newAPIEngine(svc)

	w := postJSON(t, r, "/api/v1/score/preview", map[string]any{"runs": -1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPreview_MalformedJSON(t *testing.T) {
	r := newAPIEngine(&stubScoringService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/score/preview", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRecalculate_ByMatch(t *testing.T) {
	svc := &stubScoringService{}
	svc.recalcMatch.res = model.RecalculationResult{RunID: "r1", UpdatedCount: 2, FailedCount: 1,
		Failures: []model.RecalcFailure{{RecordID: 2, Reason: "row locked"}}}
	r := newAPIEngine(svc)

	w := postJSON(t, r, "/api/v1/recalculate", map[string]any{"match_id": 7})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if svc.gotMatchID != 7 {
		t.Fatalf("expected match_id 7, got %d", svc.gotMatchID)
	}

	var got model.RecalculationResult
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.UpdatedCount != 2 || got.FailedCount != 1 || len(got.Failures) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestRecalculate_BySport(t *testing.T) {
	svc := &stubScoringService{}
	svc.recalcSport.res = model.RecalculationResult{RunID: "r2", UpdatedCount: 5}
	r := newAPIEngine(svc)

	w := postJSON(t, r, "/api/v1/recalculate", map[string]any{"sport": "football"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if svc.gotSport != "football" {
		t.Fatalf("expected sport football, got %q", svc.gotSport)
	}
}

func TestRecalculate_NeitherTargetIs400(t *testing.T) {
	r := newAPIEngine(&stubScoringService{})
	w := postJSON(t, r, "/api/v1/recalculate", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRecalculate_ServiceErrorIs500(t *testing.T) {
	svc := &stubScoringService{}
	svc.recalcMatch.err = errors.New("db down")
	r := newAPIEngine(svc)

	w := postJSON(t, r, "/api/v1/recalculate", map[string]any{"match_id": 7})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListRules_OK(t *testing.T) {
	svc := &stubScoringService{}
	svc.list.res = repository.PageResult[model.ScoringRuleRecord]{
		Items: []model.ScoringRuleRecord{{ID: 1, Sport: "cricket", Category: "batting", Action: "run"}},
		Total: 1,
	}
	r := newAPIEngine(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rules?sport=cricket&limit=10&offset=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if svc.gotSport != "cricket" {
		t.Fatalf("expected sport cricket, got %q", svc.gotSport)
	}
}

func TestListRules_MissingSportIs400(t *testing.T) {
	svc := &stubScoringService{}
	svc.list.err = service.NewInvalidInputError([]service.FieldError{{Field: "sport", Message: "must not be empty"}})
	r := newAPIEngine(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rules", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d, body=%s", w.Code, w.Body.String())
	}
}
