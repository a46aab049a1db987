package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"one48-planner/internal/calsync"
	"one48-planner/internal/planner"
	"one48-planner/pkg/response"
)

// respondError translates domain errors into HTTP responses. Known domain
// errors are client errors; anything else is logged and hidden behind a 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrEventNotFound),
		errors.Is(err, planner.ErrTaskNotFound),
		errors.Is(err, planner.ErrInvalidPlacement),
		errors.Is(err, planner.ErrEmptyTitle),
		errors.Is(err, planner.ErrEmptyRule),
		errors.Is(err, planner.ErrNothingToImport),
		errors.Is(err, planner.ErrGestureRejected),
		errors.Is(err, calsync.ErrNoSession),
		errors.Is(err, calsync.ErrSyncInFlight):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "planner.http: %v", err)
		response.InternalError(c, err)
	}
}
