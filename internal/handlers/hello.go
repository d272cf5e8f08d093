package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hello-api-go/internal/clock"
	"hello-api-go/internal/constants"
	"hello-api-go/internal/errors"
	"hello-api-go/internal/models"
	"hello-api-go/internal/util"
)

// ManagerRunner is the manager-layer operation behind the hello endpoint
type ManagerRunner interface {
	Run(ctx context.Context) error
}

// GreetingRecorder is notified after each greeting is written
type GreetingRecorder interface {
	GreetingServed()
}

type HelloHandler struct {
	manager  ManagerRunner
	clock    clock.Clock
	recorder GreetingRecorder
	logger   *zap.Logger
}

// NewHelloHandler creates a HelloHandler. recorder may be nil.
func NewHelloHandler(manager ManagerRunner, clk clock.Clock, recorder GreetingRecorder, logger *zap.Logger) *HelloHandler {
	return &HelloHandler{
		manager:  manager,
		clock:    clk,
		recorder: recorder,
		logger:   logger,
	}
}

// Hello handles GET /api/hello.json
func (h *HelloHandler) Hello(c *gin.Context) {
	util.Mark(h.logger, "hello")

	if err := h.manager.Run(c.Request.Context()); err != nil {
		_ = c.Error(errors.NewInternalError(err))
		return
	}

	h.logger.Info(fmt.Sprintf("%s Hello controller invoked", constants.APIName()))

	greeting := models.NewGreeting(constants.HelloMessage, h.clock.NowMillis())
	body, err := util.Serialize(greeting.ToResponse())
	if err != nil {
		_ = c.Error(errors.NewInternalError(err))
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(body))
	if h.recorder != nil {
		h.recorder.GreetingServed()
	}
}
