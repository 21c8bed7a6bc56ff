package config

// YAMLConfig mirrors recsort.yaml. Pointer fields distinguish "unset" from zero values.
type YAMLConfig struct {
	Recsort YAMLRecsort `yaml:"recsort"`
}

type YAMLRecsort struct {
	Defaults YAMLDefaults `yaml:"defaults"`
	Reports  YAMLReports  `yaml:"reports"`
	Logging  YAMLLogging  `yaml:"logging"`
}

type YAMLDefaults struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Count  *int   `yaml:"count"`
	Mode   string `yaml:"mode"`
	Exact  *bool  `yaml:"exact"`
}

type YAMLReports struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

type YAMLLogging struct {
	Enabled *bool `yaml:"enabled"`
}
