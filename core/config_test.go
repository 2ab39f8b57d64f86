package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "")
		conf := NewConfig()
		assert.Equal(t, "DEV", conf.Env)
		assert.False(t, conf.Debug)
		assert.False(t, conf.TestMode)
		assert.Equal(t, "Portfolio Document Manager", conf.AppName)
		assert.Equal(t, "v1.0.5", conf.Build)
		assert.Equal(t, "portfolio_data.json", conf.DataFile)
		assert.Equal(t, ".", conf.OutputDir)
		assert.Equal(t, 30*time.Second, conf.PDF.Timeout)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("TEST_DATAFILE", "other.json")
		t.Setenv("TEST_PDF_TIMEOUT", "5s")
		t.Setenv("TEST_PDF_CHROMEPATH", "/usr/bin/chromium")
		conf := NewConfig()
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
		assert.Equal(t, "other.json", conf.DataFile)
		assert.Equal(t, 5*time.Second, conf.PDF.Timeout)
		assert.Equal(t, "/usr/bin/chromium", conf.PDF.ChromePath)
	})
}
