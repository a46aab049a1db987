package http

import (
	"github.com/gin-gonic/gin"

	"one48-planner/internal/planner"
	"one48-planner/pkg/response"
)

// BeginDrag godoc
// @Summary     Begin a drag
// @Description Starts dragging a task from the side list or an event already on the grid.
// @Tags        Gestures
// @Accept      json
// @Produce     json
// @Param       body body dragReq true "Drag source"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/gestures/drag [POST]
func (h *handler) BeginDrag(c *gin.Context) {
	ctx := c.Request.Context()

	var req dragReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.BeginDrag(ctx, scope(c), req.toInput()); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// PreviewDrop godoc
// @Summary     Preview a drop position
// @Description Reports the snapped time slot the current drag would land on.
// @Tags        Gestures
// @Accept      json
// @Produce     json
// @Param       body body dropReq true "Pointer position"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/gestures/preview [POST]
func (h *handler) PreviewDrop(c *gin.Context) {
	ctx := c.Request.Context()

	var req dropReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	slot, err := h.uc.PreviewDrop(ctx, scope(c), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, previewResp{TimeSlot: slot})
}

// Drop godoc
// @Summary     Drop onto the grid
// @Description Commits the current drag onto a day column at the pointer position.
// @Tags        Gestures
// @Accept      json
// @Produce     json
// @Param       body body dropReq true "Pointer position"
// @Success     200 {object} dropResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/gestures/drop [POST]
func (h *handler) Drop(c *gin.Context) {
	ctx := c.Request.Context()

	var req dropReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Drop(ctx, scope(c), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, dropResp{Event: newEventResp(out.Event), Scheduled: out.Scheduled})
}

// DropOnUnassigned godoc
// @Summary     Drop onto the task list
// @Description Detaches the dragged event from the grid back into the unassigned task list.
// @Tags        Gestures
// @Produce     json
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/gestures/unassign [POST]
func (h *handler) DropOnUnassigned(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := h.uc.DropOnUnassigned(ctx, scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(task))
}

// CancelDrag godoc
// @Summary     Cancel the drag
// @Description Abandons the current drag without changing the schedule.
// @Tags        Gestures
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/planner/gestures/cancel [POST]
func (h *handler) CancelDrag(c *gin.Context) {
	h.uc.CancelDrag(c.Request.Context(), scope(c))
	response.OK(c, nil)
}

// ClickSlot godoc
// @Summary     Resolve a grid click
// @Description Maps a click on the grid to a snapped time slot for a new entry.
// @Tags        Gestures
// @Accept      json
// @Produce     json
// @Param       body body dropReq true "Pointer position"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/gestures/click [POST]
func (h *handler) ClickSlot(c *gin.Context) {
	ctx := c.Request.Context()

	var req dropReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	slot, err := h.uc.ClickSlot(ctx, scope(c), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, previewResp{TimeSlot: slot})
}

// BeginResize godoc
// @Summary     Begin a resize
// @Description Starts resizing a scheduled event from its bottom edge.
// @Tags        Gestures
// @Accept      json
// @Produce     json
// @Param       body body resizeStartReq true "Event to resize"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/gestures/resize/start [POST]
func (h *handler) BeginResize(c *gin.Context) {
	ctx := c.Request.Context()

	var req resizeStartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.BeginResize(ctx, scope(c), req.ID); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Resize godoc
// @Summary     Apply a resize step
// @Description Applies one incremental pointer movement to the active resize.
// @Tags        Gestures
// @Accept      json
// @Produce     json
// @Param       body body resizeStepReq true "Pointer delta"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/gestures/resize/step [POST]
func (h *handler) Resize(c *gin.Context) {
	ctx := c.Request.Context()

	var req resizeStepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Resize(ctx, scope(c), planner.ResizeInput{DeltaPixels: req.DeltaPixels}); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// EndResize godoc
// @Summary     End the resize
// @Description Snaps the resized duration and commits it.
// @Tags        Gestures
// @Produce     json
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/gestures/resize/end [POST]
func (h *handler) EndResize(c *gin.Context) {
	ctx := c.Request.Context()

	ev, err := h.uc.EndResize(ctx, scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newEventResp(ev))
}
