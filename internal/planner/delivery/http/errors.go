package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"muhurat-planner/internal/planner"
	"muhurat-planner/pkg/response"
	"muhurat-planner/pkg/suntimes"
	"muhurat-planner/pkg/tzdate"
)

// respondError translates domain/use-case errors into HTTP responses.
// Validation failures map to 400, missing sun data to 422, the rest to 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, suntimes.ErrUnavailable):
		response.UnprocessableEntity(c, err, nil)
	case errors.Is(err, planner.ErrInvalidGoal),
		errors.Is(err, planner.ErrInvalidWindow),
		errors.Is(err, planner.ErrInvalidDate),
		errors.Is(err, planner.ErrCoordinatesRequired),
		errors.Is(err, planner.ErrCustomRangeIncomplete),
		errors.Is(err, planner.ErrCustomRangeInvalid),
		errors.Is(err, planner.ErrManualTimesInvalid),
		errors.Is(err, tzdate.ErrInvalidRange):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
