package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/leoAraujo20/lu-estilo-api/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. The token validity is given in minutes, matching the environment
// variable. After unmarshalling, its fields are copied into the runtime
// Config struct.
type JsonConfig struct {
	EndpointAddrHTTP         string `json:"endpoint_addr_http"`
	DatabaseDSN              string `json:"database_dsn"`
	SecretKey                string `json:"secret_key"`
	SigningAlgorithm         string `json:"algorithm"`
	AccessTokenExpireMinutes int    `json:"access_token_expire_minutes"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. Zero-valued fields in
// the file leave the current value untouched. An unreadable or invalid file
// panics: a config file that was explicitly pointed at must parse.
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

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SigningAlgorithm != "" {
		config.SigningAlgorithm = c.SigningAlgorithm
	}
	if c.AccessTokenExpireMinutes > 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenExpireMinutes) * time.Minute
	}
}
