package http

import (
	"companion-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Log a mood check-in
// @Description Record a mood with intensity and an optional note; notes are analysed for emotion and sentiment
// @Tags Mood
// @Accept json
// @Produce json
// @Param body body logMoodReq true "Mood check-in"
// @Success 200 {object} entryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mood [post]
func (h *handler) LogMood(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processLogMoodRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "mood.delivery.http.LogMood: processLogMoodRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.LogMood(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mood.delivery.http.LogMood: usecase LogMood failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newEntryResp(o))
}

// @Summary List mood history
// @Description Return the caller's mood check-ins, newest first
// @Tags Mood
// @Accept json
// @Produce json
// @Param days query int false "Window in days (default 30, max 365)"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} entryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mood [get]
func (h *handler) ListEntries(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListEntriesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "mood.delivery.http.ListEntries: processListEntriesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListEntries(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mood.delivery.http.ListEntries: usecase ListEntries failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListEntriesResp(o))
}

// @Summary Mood summary
// @Description Aggregate the caller's check-ins over a day window
// @Tags Mood
// @Accept json
// @Produce json
// @Param days query int false "Window in days (default 30, max 365)"
// @Success 200 {object} summaryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mood/summary [get]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSummaryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "mood.delivery.http.Summary: processSummaryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Summary(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mood.delivery.http.Summary: usecase Summary failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSummaryResp(o))
}
