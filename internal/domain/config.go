package domain

// Config represents the recsort configuration loaded from recsort.yaml.
type Config struct {
	Defaults DefaultsConfig
	Reports  ReportsConfig
	Logging  LoggingConfig
}

// DefaultsConfig holds values used when the matching CLI flag is not given.
type DefaultsConfig struct {
	Input  string
	Output string
	Count  int
	Mode   string
	Exact  bool
}

type ReportsConfig struct {
	Enabled bool
	Dir     string
}

type LoggingConfig struct {
	Enabled bool
}

// DefaultConfig provides sane defaults if recsort.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Input:  "input.txt",
			Output: "output.txt",
			Count:  20,
			Mode:   ModeName,
		},
		Reports: ReportsConfig{
			Dir: "runs",
		},
	}
}
