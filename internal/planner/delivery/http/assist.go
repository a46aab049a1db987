package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"one48-planner/pkg/response"
)

// Assist godoc
// @Summary     Ask the assistant
// @Description Interprets a text or voice instruction and applies the resulting schedule changes to the week.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body assistReq true "Instruction (text or base64 audio)"
// @Success     200 {object} assistResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/assist [POST]
func (h *handler) Assist(c *gin.Context) {
	ctx := c.Request.Context()

	var req assistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Assist(ctx, scope(c), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, assistResp{Reply: out.Reply, Applied: out.Applied})
}

// SyncDown godoc
// @Summary     Download the calendar week
// @Description Replaces the displayed week with the connected calendar's events.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sync/down [POST]
func (h *handler) SyncDown(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.SyncDown(ctx, scope(c)); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// SyncUp godoc
// @Summary     Upload the week
// @Description Overwrites the connected calendar's week with the board.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sync/up [POST]
func (h *handler) SyncUp(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.SyncUp(ctx, scope(c)); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// ExportWeek godoc
// @Summary     Export the week
// @Description Serializes the displayed week to an iCalendar file download.
// @Tags        Planner
// @Produce     text/calendar
// @Success     200 {string} string "iCalendar payload"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/export [GET]
func (h *handler) ExportWeek(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ExportWeek(ctx, scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(200, out.MIMEType, out.Data)
}
