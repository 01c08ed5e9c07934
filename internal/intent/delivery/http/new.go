package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/pkg/log"
)

// Handler is the public interface for the intent HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Voice(c *gin.Context)
	Confirm(c *gin.Context)
	Cancel(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates a new HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
