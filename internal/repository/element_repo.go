package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hello-api-go/internal/constants"
)

// ElementRepository is the data-access placeholder for element models.
// It holds no connection and performs no I/O.
type ElementRepository struct {
	logger *zap.Logger
}

// NewElementRepository creates a new ElementRepository
func NewElementRepository(logger *zap.Logger) *ElementRepository {
	return &ElementRepository{logger: logger}
}

// Touch marks the point where the element would be read or written
func (r *ElementRepository) Touch(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("element repository: %w", err)
	}
	r.logger.Debug(fmt.Sprintf("%s Element repository touched", constants.APIName()))
	return nil
}
