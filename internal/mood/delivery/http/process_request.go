package http

import (
	"strconv"

	"companion-srv/internal/model"
	"companion-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processLogMoodRequest(c *gin.Context) (logMoodReq, model.Scope, error) {
	var req logMoodReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListEntriesRequest(c *gin.Context) (listEntriesReq, model.Scope, error) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	req := listEntriesReq{
		Days:  days,
		Limit: limit,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processSummaryRequest(c *gin.Context) (summaryReq, model.Scope, error) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	req := summaryReq{
		Days: days,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
