package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zapcore"

	"hello-api-go/internal/testutil"
)

type mockCore struct {
	mock.Mock
}

func (m *mockCore) Run(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestRunDelegatesToCore(t *testing.T) {
	core := new(mockCore)
	core.On("Run", mock.Anything).Return(nil).Once()
	logger, logCapture := testutil.NewCapturingLogger(zapcore.InfoLevel)

	err := NewManager(core, logger).Run(context.Background())

	assert.NoError(t, err)
	core.AssertExpectations(t)
	assert.True(t, logCapture.Contains("[hello-api-go] Manager completed"))
}

func TestRunPropagatesCoreError(t *testing.T) {
	coreErr := errors.New("core exploded")
	core := new(mockCore)
	core.On("Run", mock.Anything).Return(coreErr)
	logger, logCapture := testutil.NewCapturingLogger(zapcore.InfoLevel)

	err := NewManager(core, logger).Run(context.Background())

	assert.ErrorIs(t, err, coreErr)
	assert.False(t, logCapture.Contains("Manager completed"))
}
