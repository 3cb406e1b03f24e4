package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyanite-io/edseal/pkg/log"
)

func TestNoopLogger(t *testing.T) {
	logger := log.NewNoopLogger()

	// All operations are safe no-ops.
	logger.Debug("msg")
	logger.Info("msg", "k", "v")
	logger.Warn("msg")
	logger.Error("msg")

	assert.Equal(t, "noop", logger.Name())
	assert.Empty(t, logger.GetAllKV())
	assert.Equal(t, logger, logger.WithKV("k", "v"))
	assert.Equal(t, logger, logger.WithName("sub"))
	assert.Equal(t, logger, logger.AddCallerSkip(1))
}
