package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-io/edseal/pkg/log"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("EDSEAL_PRIVATE_KEY", "0xabcd")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_LEVEL", "debug")

		conf, err := LoadConfig(log.NewNoopLogger())
		require.NoError(t, err)
		assert.Equal(t, "0xabcd", conf.PrivateKeyHex)
		assert.Equal(t, "json", conf.Log.Format)
		assert.Equal(t, log.LevelDebug, conf.Log.Level)
	})

	t.Run("applies defaults", func(t *testing.T) {
		conf, err := LoadConfig(log.NewNoopLogger())
		require.NoError(t, err)
		assert.Equal(t, "console", conf.Log.Format)
		assert.Equal(t, log.LevelInfo, conf.Log.Level)
		assert.Equal(t, "stderr", conf.Log.Output)
	})
}
