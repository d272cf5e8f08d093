package integration

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hello-api-go/internal/constants"
)

// ElementClient stands in for a call to an external system. Nothing leaves the process.
type ElementClient struct {
	logger *zap.Logger
}

func NewElementClient(logger *zap.Logger) *ElementClient {
	return &ElementClient{logger: logger}
}

func (c *ElementClient) Call(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("element client: %w", err)
	}
	c.logger.Debug(fmt.Sprintf("%s Element integration called", constants.APIName()))
	return nil
}
