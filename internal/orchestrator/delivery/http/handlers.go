package http

import (
	"companion-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Backend health snapshot
// @Description Per-backend status, circuit-breaker state and rolling response-time metrics
// @Tags AI
// @Accept json
// @Produce json
// @Success 200 {object} orchestrator.Stats
// @Failure 401 {object} response.Resp
// @Router /api/v1/ai/health [get]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, h.uc.Stats())
}
