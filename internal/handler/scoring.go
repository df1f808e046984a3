package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/service"
	"github.com/maxviazov/fantasy-points-service/pkg/response"
)

type ScoringHandler struct {
	svc service.ScoringService
}

func NewScoringHandler(svc service.ScoringService) *ScoringHandler { return &ScoringHandler{svc: svc} }

func (h *ScoringHandler) Register(r *gin.RouterGroup) {
	score := r.Group("/score")
	{
		score.POST("/preview", h.preview)
	}
	r.POST("/recalculate", h.recalculate)
}

// preview scores an ad-hoc stat record and returns the full breakdown.
// Nothing is persisted; the admin UI uses this for the breakdown modal.
func (h *ScoringHandler) preview(c *gin.Context) {
	var stat model.PlayerMatchStat
	if err := c.ShouldBindJSON(&stat); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	breakdown, err := h.svc.PreviewScore(c.Request.Context(), stat)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, breakdown)
}

type recalculateRequest struct {
	MatchID int64  `json:"match_id"`
	Sport   string `json:"sport"`
}

// recalculate recomputes fantasy points for one match (match_id set) or a
// whole sport (sport set). The per-record tally always comes back, failures
// included, so the admin UI can report partial outcomes.
func (h *ScoringHandler) recalculate(c *gin.Context) {
	var req recalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}

	var (
		result model.RecalculationResult
		err    error
	)
	switch {
	case req.MatchID > 0:
		result, err = h.svc.RecalculateMatch(c.Request.Context(), req.MatchID)
	case req.Sport != "":
		result, err = h.svc.RecalculateSport(c.Request.Context(), req.Sport)
	default:
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{
			{Field: "match_id", Message: "either match_id or sport is required"},
		}))
		return
	}
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, result)
}
