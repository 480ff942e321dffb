package configs

import (
	_ "embed"

	"github.com/spf13/viper"
)

// ApplicationYAML is the default properties file, used when PROPERTIES_FILE_PATH is not set.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the default message bundle, used when MESSAGES_FILE_PATH is not set.
//
//go:embed messages.yml
var MessagesYAML []byte

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", "weather-dashboard"),
		ContextPath:     getStringOrDefault(env, "CONTEXT_PATH", "/weather-dashboard"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
