package http

import (
	"github.com/gin-gonic/gin"

	"muhurat-planner/internal/planner"
	"muhurat-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Day(c *gin.Context)
	ManualDay(c *gin.Context)
	Suggest(c *gin.Context)
}

type handler struct {
	l               log.Logger
	uc              planner.UseCase
	defaultTimezone string
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase, defaultTimezone string) *handler {
	return &handler{
		l:               l,
		uc:              uc,
		defaultTimezone: defaultTimezone,
	}
}
