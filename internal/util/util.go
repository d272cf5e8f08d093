package util

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"hello-api-go/internal/constants"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Serialize renders value as a JSON string. Map keys are sorted.
func Serialize(value interface{}) (string, error) {
	out, err := json.MarshalToString(value)
	if err != nil {
		return "", fmt.Errorf("failed to serialize %T: %w", value, err)
	}
	return out, nil
}

// Mark writes a log marker for the named caller
func Mark(logger *zap.Logger, caller string) {
	logger.Info(fmt.Sprintf("%s Utility invoked", constants.APIName()), zap.String("caller", caller))
}
