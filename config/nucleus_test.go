package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment(t *testing.T) {
	t.Run("base URLs", func(t *testing.T) {
		assert.Equal(t, "https://sandbox.usenucleus.io", Sandbox.BaseURL())
		assert.Equal(t, "https://api.usenucleus.io", Production.BaseURL())
	})

	t.Run("unmarshal text", func(t *testing.T) {
		tests := []struct {
			in      string
			want    Environment
			wantErr bool
		}{
			{in: "sandbox", want: Sandbox},
			{in: " PRODUCTION ", want: Production},
			{in: "prod", want: Production},
			{in: "", want: Sandbox},
			{in: "staging", wantErr: true},
		}
		for _, tt := range tests {
			var env Environment
			err := env.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err, tt.in)
				continue
			}
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, env, tt.in)
		}
	})
}

func TestNucleusConfiguration(t *testing.T) {
	t.Run("override wins over environment", func(t *testing.T) {
		conf := NucleusConfiguration{Environment: Production, BaseURL: "http://localhost:8080/"}
		assert.Equal(t, "http://localhost:8080", conf.ResolvedBaseURL())

		conf.BaseURL = ""
		assert.Equal(t, ProductionBaseURL, conf.ResolvedBaseURL())
	})

	t.Run("validate", func(t *testing.T) {
		valid := NucleusConfiguration{APIKey: "key", Environment: Sandbox, Timeout: time.Second}
		assert.NoError(t, valid.Validate())

		noKey := valid
		noKey.APIKey = ""
		assert.Error(t, noKey.Validate())

		noTimeout := valid
		noTimeout.Timeout = 0
		assert.Error(t, noTimeout.Validate())
	})

	t.Run("read from viper", func(t *testing.T) {
		viper.Set("NUCLEUS_API_KEY", "test-key")
		viper.Set("NUCLEUS_ENVIRONMENT", "production")
		viper.Set("NUCLEUS_TIMEOUT", 5)
		defer viper.Reset()

		conf, err := NucleusConfig()
		require.NoError(t, err)
		assert.Equal(t, "test-key", conf.APIKey)
		assert.Equal(t, Production, conf.Environment)
		assert.Equal(t, 5*time.Second, conf.Timeout)
		assert.Equal(t, ProductionBaseURL, conf.ResolvedBaseURL())
	})

	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()

		conf, err := NucleusConfig()
		require.NoError(t, err)
		assert.Equal(t, Sandbox, conf.Environment)
		assert.Equal(t, DefaultTimeout, conf.Timeout)
	})

	t.Run("bad environment", func(t *testing.T) {
		viper.Set("NUCLEUS_ENVIRONMENT", "moon")
		defer viper.Reset()

		_, err := NucleusConfig()
		assert.Error(t, err)
	})
}
