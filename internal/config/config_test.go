package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "my-app", cfg.DefaultName)
	assert.Empty(t, cfg.TemplateRoot)
}

func TestLoad_NilViper(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "my-app", cfg.DefaultName)
}

func TestLoad_OverridesWin(t *testing.T) {
	v := viper.New()
	v.Set("log-level", "debug")
	v.Set("template-root", "/opt/appforge/templates")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/opt/appforge/templates", cfg.TemplateRoot)
	assert.Equal(t, "my-app", cfg.DefaultName, "untouched keys keep defaults")
}
