package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Shivam7262/Writely/internal/flagx"
	"github.com/Shivam7262/Writely/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "24h" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c or -config command-line flags;
// when neither is set no file is loaded. Unreadable or invalid files panic:
// a half-applied config is worse than a crash at startup.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
}
