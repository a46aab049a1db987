package http

import (
	"github.com/gin-gonic/gin"

	"one48-planner/pkg/response"
)

// AddRule godoc
// @Summary     Add an assistant rule
// @Description Stores a free-text constraint forwarded to the assistant on every request.
// @Tags        Rules
// @Accept      json
// @Produce     json
// @Param       body body addRuleReq true "Rule text"
// @Success     200 {object} ruleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/rules [POST]
func (h *handler) AddRule(c *gin.Context) {
	ctx := c.Request.Context()

	var req addRuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	rule, err := h.uc.AddRule(ctx, scope(c), req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, ruleResp{ID: rule.ID, Text: rule.Text})
}

// RemoveRule godoc
// @Summary     Delete an assistant rule
// @Tags        Rules
// @Produce     json
// @Param       id path string true "Rule ID"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/rules/{id} [DELETE]
func (h *handler) RemoveRule(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveRule(ctx, scope(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddRoutine godoc
// @Summary     Add a weekly routine
// @Description Stores a routine template that can be bulk-imported into the task list each week.
// @Tags        Routines
// @Accept      json
// @Produce     json
// @Param       body body addRoutineReq true "Routine data"
// @Success     200 {object} routineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/routines [POST]
func (h *handler) AddRoutine(c *gin.Context) {
	ctx := c.Request.Context()

	var req addRoutineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	routine, err := h.uc.AddRoutine(ctx, scope(c), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newRoutineResp(routine))
}

// RemoveRoutine godoc
// @Summary     Delete a weekly routine
// @Tags        Routines
// @Produce     json
// @Param       id path string true "Routine ID"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/routines/{id} [DELETE]
func (h *handler) RemoveRoutine(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveRoutine(ctx, scope(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// ImportRoutines godoc
// @Summary     Import routines
// @Description Instantiates every stored routine as an unassigned task for the week.
// @Tags        Routines
// @Produce     json
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/routines/import [POST]
func (h *handler) ImportRoutines(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ImportRoutines(ctx, scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, importResp{Imported: out.Imported})
}
