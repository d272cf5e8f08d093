package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hello-api-go/internal/testutil"
)

func TestSerializeNestedMapSortsKeys(t *testing.T) {
	value := map[string]interface{}{
		"data": map[string]string{
			"timestamp": "1717000000123",
			"message":   "Hello World~",
		},
	}

	out, err := Serialize(value)

	require.NoError(t, err)
	assert.Equal(t, `{"data":{"message":"Hello World~","timestamp":"1717000000123"}}`, out)
}

func TestSerializeUnsupportedValue(t *testing.T) {
	_, err := Serialize(make(chan int))

	assert.Error(t, err)
}

func TestMarkLogsCaller(t *testing.T) {
	logCapture := testutil.NewLogCapture(zapcore.InfoLevel)

	Mark(zap.New(logCapture), "hello")

	assert.True(t, logCapture.Contains("Utility invoked"))
	assert.True(t, logCapture.Contains("caller=hello"))
}
