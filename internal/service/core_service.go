package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hello-api-go/internal/constants"
	"hello-api-go/internal/models"
)

// ElementStore is the persistence collaborator of CoreService
type ElementStore interface {
	Touch(ctx context.Context) error
}

// ElementGateway is the integration collaborator of CoreService
type ElementGateway interface {
	Call(ctx context.Context) error
}

type CoreService struct {
	store   ElementStore
	gateway ElementGateway
	logger  *zap.Logger
}

func NewCoreService(store ElementStore, gateway ElementGateway, logger *zap.Logger) *CoreService {
	return &CoreService{
		store:   store,
		gateway: gateway,
		logger:  logger,
	}
}

// Run touches the store, then calls the gateway, then builds and logs an
// element. The store always completes before the gateway is called.
func (s *CoreService) Run(ctx context.Context) error {
	if err := s.store.Touch(ctx); err != nil {
		return fmt.Errorf("failed to touch element store: %w", err)
	}

	if err := s.gateway.Call(ctx); err != nil {
		return fmt.Errorf("failed to call element gateway: %w", err)
	}

	element := models.NewElement(constants.ElementValue)
	s.logger.Info(fmt.Sprintf("%s Core service completed", constants.APIName()),
		zap.Stringer("element", element),
	)
	return nil
}
