// Package config resolves settings that may come from viper or straight
// from the process environment.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/vodmap/pkg/constants"
)

// TokenKey is the config key holding the code search token.
const TokenKey = "github_token"

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Token returns the code search token, or "" when none is configured.
// The github_token config key wins over the GH_TOKEN environment variable.
// Surrounding whitespace, a common artifact of pasted .env values, is dropped.
func Token() string {
	if token := strings.TrimSpace(viper.GetString(TokenKey)); token != "" {
		return token
	}
	return strings.TrimSpace(GetString(constants.EnvToken))
}

// HasToken reports whether a code search token is configured.
func HasToken() bool {
	return Token() != ""
}
