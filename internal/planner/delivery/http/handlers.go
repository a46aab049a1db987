package http

import (
	"github.com/gin-gonic/gin"

	"one48-planner/internal/middleware"
	"one48-planner/internal/model"
	"one48-planner/pkg/response"
)

func scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: middleware.UserID(c)}
}

// Week godoc
// @Summary     Get the week snapshot
// @Description Returns the full state of the displayed week: scheduled events, unassigned tasks, categories, routines, rules and sync flags.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID header string false "User id (defaults to 'default')"
// @Success     200 {object} weekResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/week [GET]
func (h *handler) Week(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Week(ctx, scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newWeekResp(out))
}

// Reload godoc
// @Summary     Reload from the store
// @Description Re-reads tasks, routines and rules from the persistent store.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/week/reload [POST]
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reload(ctx, scope(c)); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// SaveEvent godoc
// @Summary     Save an entry
// @Description Creates or updates an entry. With a day index and time slot it is scheduled on the grid, without one it stays an unassigned task.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body saveEventReq true "Entry data"
// @Success     200 {object} saveEventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/events [POST]
func (h *handler) SaveEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req saveEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SaveEvent(ctx, scope(c), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, saveEventResp{ID: out.ID, Scheduled: out.Scheduled})
}

// RemoveEvent godoc
// @Summary     Delete an entry
// @Description Removes an entry from the schedule or the unassigned store.
// @Tags        Planner
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/events/{id} [DELETE]
func (h *handler) RemoveEvent(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveEvent(ctx, scope(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
