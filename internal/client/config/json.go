package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Shivam7262/Writely/internal/flagx"
	"github.com/Shivam7262/Writely/internal/timex"
)

// JsonConfig is the DTO for reading JSON client configuration files.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	TokenFile      string         `json:"token_file"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the file named by -c/-config.
// When the flag is absent no file is loaded; unreadable files panic.
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

	config.ServerBaseURL = c.ServerBaseURL
	config.TokenFile = c.TokenFile
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
