package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults when no environment is set", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("APP_LOG_LEVEL", "")
		t.Setenv("GRAPH_DAMPING", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, Development, cfg.App.Env)
		assert.Equal(t, "debug", cfg.App.LogLevel)
		assert.Equal(t, 5, cfg.Summary.DefaultSentences)
		assert.InDelta(t, 0.85, cfg.Graph.Damping, 1e-12)
		assert.Equal(t, 100, cfg.Graph.MaxIterations)
		assert.Equal(t, "facebook/bart-large-cnn", cfg.Abstractive.BartModel)
		assert.Equal(t, "t5-small", cfg.Abstractive.T5Model)
		require.NoError(t, cfg.Validate())
	})

	t.Run("Should read overrides from the environment", func(t *testing.T) {
		t.Setenv("APP_ENV", "PRODUCTION")
		t.Setenv("APP_LOG_LEVEL", "")
		t.Setenv("SUMMARY_DEFAULT_SENTENCES", "3")
		t.Setenv("GRAPH_DAMPING", "0.5")
		t.Setenv("ABSTRACTIVE_TOKEN", "secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, Production, cfg.App.Env)
		assert.Equal(t, "info", cfg.App.LogLevel)
		assert.True(t, cfg.App.LogJSON)
		assert.Equal(t, 3, cfg.Summary.DefaultSentences)
		assert.InDelta(t, 0.5, cfg.Graph.Damping, 1e-12)
		assert.True(t, cfg.AbstractiveEnabled())
	})

	t.Run("Should ignore malformed numbers", func(t *testing.T) {
		t.Setenv("GRAPH_MAX_ITERATIONS", "many")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Graph.MaxIterations)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Summary:     SummaryConfig{DefaultSentences: 5, MaxSentences: 10, MaxInputBytes: 1024},
			Graph:       GraphConfig{Damping: 0.85, MaxIterations: 100, Tolerance: 1e-4},
			Abstractive: AbstractiveConfig{MaxLength: 150, MinLength: 50},
		}
	}

	t.Run("Should accept a consistent configuration", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Should reject damping outside the open unit interval", func(t *testing.T) {
		cfg := valid()
		cfg.Graph.Damping = 1
		assert.ErrorContains(t, cfg.Validate(), "GRAPH_DAMPING")
	})

	t.Run("Should reject a minimum length above the maximum", func(t *testing.T) {
		cfg := valid()
		cfg.Abstractive.MinLength = 200
		assert.ErrorContains(t, cfg.Validate(), "ABSTRACTIVE_MIN_LENGTH")
	})

	t.Run("Should reject a zero sentence default", func(t *testing.T) {
		cfg := valid()
		cfg.Summary.DefaultSentences = 0
		assert.ErrorContains(t, cfg.Validate(), "SUMMARY_DEFAULT_SENTENCES")
	})
}
