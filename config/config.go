package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// SetupConfig loads the .env file (or ENV_FILE_PATH) and binds the process environment.
// A missing file is not fatal: hosts that configure through the environment alone still work.
// Sections are read afterwards through ServerConfig and NucleusConfig.
func SetupConfig() error {
	viper.AddConfigPath("../../..")
	viper.AddConfigPath("../..")
	viper.AddConfigPath("..")
	viper.AddConfigPath(".")

	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath == "" {
		envFilePath = ".env"
	}

	viper.SetConfigName(envFilePath)
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	return nil
}
