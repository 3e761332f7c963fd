package http

import (
	"companion-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List coping tools
// @Description Return catalog tools, optionally filtered by type, emotion, difficulty or duration
// @Tags Coping
// @Accept json
// @Produce json
// @Param type query string false "Tool type (breathing, grounding, mindfulness, journaling, physical, cognitive)"
// @Param emotion query string false "Target emotion"
// @Param difficulty query string false "Difficulty (easy, medium, hard)"
// @Param max_duration query int false "Maximum duration in minutes"
// @Success 200 {array} model.CopingTool
// @Failure 500 {object} response.Resp
// @Router /api/v1/coping/tools [get]
func (h *handler) ListTools(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListToolsRequest(c)

	o, err := h.uc.ListTools(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "coping.delivery.http.ListTools: usecase ListTools failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Get a coping tool
// @Description Return one catalog tool with full instructions and guided steps
// @Tags Coping
// @Accept json
// @Produce json
// @Param tool_id path string true "Tool ID"
// @Success 200 {object} model.CopingTool
// @Failure 404 {object} response.Resp
// @Router /api/v1/coping/tools/{tool_id} [get]
func (h *handler) GetTool(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processGetToolRequest(c)

	o, err := h.uc.GetTool(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "coping.delivery.http.GetTool: usecase GetTool failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Recommend coping tools
// @Description Recommend tools for an emotion, most specific matches first
// @Tags Coping
// @Accept json
// @Produce json
// @Param emotion query string true "Target emotion"
// @Param types query string false "Comma-separated preferred tool types"
// @Param difficulty query string false "Difficulty (easy, medium, hard)"
// @Param max_duration query int false "Maximum duration in minutes"
// @Success 200 {array} model.CopingTool
// @Failure 400 {object} response.Resp
// @Router /api/v1/coping/recommend [get]
func (h *handler) Recommend(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processRecommendRequest(c)

	o, err := h.uc.Recommend(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "coping.delivery.http.Recommend: usecase Recommend failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}
