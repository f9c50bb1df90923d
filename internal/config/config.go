package config

// Config holds runtime settings for the EatS CLI.
//
// Fields:
//   - UsersFile: path of the JSON credential store.
//   - DataDir: directory holding the food and sleep log files.
//   - BMIFile: path of the BMI history CSV.
type Config struct {
	UsersFile string
	DataDir   string
	BMIFile   string
}

// LoadDefaults populates c with the stock file locations.
func (c *Config) LoadDefaults() {
	c.UsersFile = "users.json"
	c.DataDir = "Stored Data"
	c.BMIFile = "bmi_data.csv"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
