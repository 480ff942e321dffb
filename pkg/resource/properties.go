package resource

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"weather-dashboard/configs"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// init loads application properties from YAML
func init() {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		Init(value)
		return
	}
	if err := Load(configs.ApplicationYAML); err != nil {
		log.Fatalf("Fail to read embedded properties: %v", err)
	}
}

// Init loads the properties file at filepath, exiting the process when it cannot be read.
func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	if err := Load(content); err != nil {
		log.Fatalf("Error to load %s: %v", filepath, err)
	}
}

// Load replaces the current properties with the given YAML document.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}
	properties = next
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		case nil:
			result[fullKey] = ""
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable resolves a ${NAME:default} placeholder; any other value is returned as is
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

// GetStringSlice also accepts a comma separated string, the only list form an env placeholder can carry
func GetStringSlice(key string) []string {
	value, ok := properties.Get(key).(string)
	if !ok {
		return properties.GetStringSlice(key)
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
