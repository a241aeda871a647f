package http

import (
	"github.com/gin-gonic/gin"
)

// processDayReq binds and validates the day query parameters.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processManualDayReq binds and validates the manual day query parameters.
func (h *handler) processManualDayReq(c *gin.Context) (manualDayReq, error) {
	var req manualDayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSuggestReq binds and validates the suggest request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
