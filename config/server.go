package config

import "github.com/spf13/viper"

// ServerConfiguration holds the process-level settings used by the logger
type ServerConfiguration struct {
	Environment string
	SentryDSN   string
	LogLevel    string
	LogFile     string
}

// ServerConfig returns the process-level configuration
func ServerConfig() *ServerConfiguration {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	return &ServerConfiguration{
		Environment: viper.GetString("ENVIRONMENT"),
		SentryDSN:   viper.GetString("SENTRY_DSN"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		LogFile:     viper.GetString("LOG_FILE"),
	}
}
