package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/fantasy-points-service/internal/repository"
	"github.com/maxviazov/fantasy-points-service/internal/service"
	"github.com/maxviazov/fantasy-points-service/pkg/response"
)

type RulesHandler struct {
	svc service.ScoringService
}

func NewRulesHandler(svc service.ScoringService) *RulesHandler { return &RulesHandler{svc: svc} }

func (h *RulesHandler) Register(r *gin.RouterGroup) {
	r.Group("/rules").GET("", h.list)
}

func (h *RulesHandler) list(c *gin.Context) {
	sport := c.Query("sport")
	page := repository.Page{
		Limit:  atoiOrZero(c.Query("limit")),
		Offset: atoiOrZero(c.Query("offset")),
	}
	res, err := h.svc.ListRules(c.Request.Context(), sport, page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
