package http

import (
	"github.com/gin-gonic/gin"

	"muhurat-planner/pkg/response"
)

// Day godoc
// @Summary     Choghadiya segments for a calendar date
// @Description Returns the 16 day and night segments for the given coordinates and date, with the current segment and the next auspicious one.
// @Tags        Muhurat
// @Accept      json
// @Produce     json
// @Param       lat  query number true  "Latitude"
// @Param       lon  query number true  "Longitude"
// @Param       date query string false "Date (YYYY-MM-DD, defaults to today in tz)"
// @Param       tz   query string false "IANA timezone (defaults to server setting)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Sun times unavailable for location/date"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/muhurat/day [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Day(ctx, req.toInput(h.defaultTimezone))
	if err != nil {
		h.l.Errorf(ctx, "uc.Day: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDayResp(output))
}

// ManualDay godoc
// @Summary     Choghadiya segments from caller-supplied sun times
// @Description Returns the 16 segments computed from explicit sunrise, sunset and next-sunrise wall clocks. Useful when no sun-times provider covers the location.
// @Tags        Muhurat
// @Accept      json
// @Produce     json
// @Param       date         query string true  "Date (YYYY-MM-DD)"
// @Param       sunrise      query string true  "Sunrise wall clock (HH:mm)"
// @Param       sunset       query string true  "Sunset wall clock (HH:mm)"
// @Param       next_sunrise query string true  "Next-day sunrise wall clock (HH:mm)"
// @Param       tz           query string false "IANA timezone (defaults to server setting)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/muhurat/day/manual [GET]
func (h *handler) ManualDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processManualDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ManualDay(ctx, req.toInput(h.defaultTimezone))
	if err != nil {
		h.l.Errorf(ctx, "uc.ManualDay: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDayResp(output))
}

// Suggest godoc
// @Summary     Rank auspicious slots for a goal
// @Description Resolves the requested planning window, computes segments across it and returns the top-ranked slots for the goal.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Planning request"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Sun times unavailable for location/date"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput(h.defaultTimezone))
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSuggestResp(output))
}
