package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		t.Setenv("GH_TOKEN", "  env-token\n")

		assert.Equal(t, "env-token", Token())
		assert.True(t, HasToken())
	})

	t.Run("config key wins", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		t.Setenv("GH_TOKEN", "env-token")
		viper.Set(TokenKey, "config-token")

		assert.Equal(t, "config-token", Token())
	})

	t.Run("absent", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		t.Setenv("GH_TOKEN", "")

		assert.Empty(t, Token())
		assert.False(t, HasToken())
	})
}

func TestGetStringFallsBackToEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("VODMAP_TEST_KEY", "from-env")

	assert.Equal(t, "from-env", GetString("VODMAP_TEST_KEY"))

	viper.Set("VODMAP_TEST_KEY", "from-viper")
	assert.Equal(t, "from-viper", GetString("VODMAP_TEST_KEY"))
}
