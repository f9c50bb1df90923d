package config

import (
	"encoding/json"
	"os"

	"github.com/eats-health/eats/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	UsersFile string `json:"users_file"`
	DataDir   string `json:"data_dir"`
	BMIFile   string `json:"bmi_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); with neither flag set, nothing is loaded. Read or
// unmarshal errors panic, matching the flag stage. Fields absent from the
// file leave the current values in place, so a partial overlay is fine.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UsersFile != "" {
		cfg.UsersFile = jc.UsersFile
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.BMIFile != "" {
		cfg.BMIFile = jc.BMIFile
	}
}
