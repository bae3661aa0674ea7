package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnvFrom(t *testing.T) {
	t.Parallel()
	s := validSpec()
	err := s.ApplyEnvFrom(lookupFrom(map[string]string{
		EnvStage:       "22",
		EnvEnvironment: "Staging",
		EnvSuffix:      "ZZ9",
	}))
	require.NoError(t, err)

	assert.Equal(t, 22, s.Stage)
	assert.Equal(t, sizing.TierStaging, s.Environment)
	assert.Equal(t, "zz9", s.Suffix)
}

func TestApplyEnvFrom_IgnoresEmpty(t *testing.T) {
	t.Parallel()
	s := validSpec()
	require.NoError(t, s.ApplyEnvFrom(lookupFrom(map[string]string{EnvStage: " ", EnvSuffix: ""})))
	assert.Equal(t, 17, s.Stage)
	assert.Equal(t, "ab01", s.Suffix)
}

func TestApplyEnvFrom_Invalid(t *testing.T) {
	t.Parallel()
	s := validSpec()
	err := s.ApplyEnvFrom(lookupFrom(map[string]string{EnvStage: "five", EnvEnvironment: "qa"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvStage)
	assert.Contains(t, err.Error(), EnvEnvironment)
	assert.Equal(t, 17, s.Stage, "invalid values leave the spec untouched")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvStage, "3")
	s := validSpec()
	require.NoError(t, s.ApplyEnv())
	assert.Equal(t, 3, s.Stage)
}
