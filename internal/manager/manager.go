package manager

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hello-api-go/internal/constants"
)

// CoreRunner is the core-service operation the manager delegates to
type CoreRunner interface {
	Run(ctx context.Context) error
}

// Manager sits between the HTTP layer and the core service
type Manager struct {
	core   CoreRunner
	logger *zap.Logger
}

func NewManager(core CoreRunner, logger *zap.Logger) *Manager {
	return &Manager{
		core:   core,
		logger: logger,
	}
}

func (m *Manager) Run(ctx context.Context) error {
	if err := m.core.Run(ctx); err != nil {
		return fmt.Errorf("core service failed: %w", err)
	}
	m.logger.Info(fmt.Sprintf("%s Manager completed", constants.APIName()))
	return nil
}
