package http

import (
	"strconv"
	"strings"

	"companion-srv/internal/coping"

	"github.com/gin-gonic/gin"
)

type listToolsReq struct {
	Type        string
	Emotion     string
	Difficulty  string
	MaxDuration int
}

func (r listToolsReq) toInput() coping.ListToolsInput {
	return coping.ListToolsInput{
		Type:               r.Type,
		Emotion:            r.Emotion,
		Difficulty:         r.Difficulty,
		MaxDurationMinutes: r.MaxDuration,
	}
}

type getToolReq struct {
	ID string
}

func (r getToolReq) toInput() coping.GetToolInput {
	return coping.GetToolInput{ID: r.ID}
}

type recommendReq struct {
	Emotion     string
	Types       []string
	Difficulty  string
	MaxDuration int
}

func (r recommendReq) toInput() coping.RecommendInput {
	return coping.RecommendInput{
		Emotion:            r.Emotion,
		PreferredTypes:     r.Types,
		Difficulty:         r.Difficulty,
		MaxDurationMinutes: r.MaxDuration,
	}
}

func (h *handler) processListToolsRequest(c *gin.Context) listToolsReq {
	maxDuration, _ := strconv.Atoi(c.DefaultQuery("max_duration", "0"))

	return listToolsReq{
		Type:        c.Query("type"),
		Emotion:     c.Query("emotion"),
		Difficulty:  c.Query("difficulty"),
		MaxDuration: maxDuration,
	}
}

func (h *handler) processGetToolRequest(c *gin.Context) getToolReq {
	return getToolReq{ID: c.Param("tool_id")}
}

func (h *handler) processRecommendRequest(c *gin.Context) recommendReq {
	maxDuration, _ := strconv.Atoi(c.DefaultQuery("max_duration", "0"))

	var types []string
	if raw := c.Query("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	return recommendReq{
		Emotion:     c.Query("emotion"),
		Types:       types,
		Difficulty:  c.Query("difficulty"),
		MaxDuration: maxDuration,
	}
}
