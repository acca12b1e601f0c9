// Package config stores configuration passed to the commands.
package config

import "github.com/spf13/viper"

// EnvPrefix prefixes environment variables read by the cli.
const EnvPrefix = "MONGO_EXPLORER"

type (
	// AppConfig stores configuration shared by all commands.
	AppConfig struct {
		// AccountsFile stores path to the registered accounts file.
		AccountsFile string `mapstructure:"accounts-file"`
		// Verbose is true if debug logs shall be printed.
		Verbose bool `mapstructure:"verbose"`
	}
)

// ParseConfig parses configuration.
func ParseConfig() (*AppConfig, error) {
	c := &AppConfig{}
	err := viper.Unmarshal(c)
	return c, err
}
