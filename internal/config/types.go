package config

// Config represents the project configuration (pyvengers.yaml)
type Config struct {
	Name    string        `yaml:"name" json:"name"`
	Data    DataConfig    `yaml:"data" json:"data"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// DataConfig locates the backing file
type DataConfig struct {
	File string `yaml:"file" json:"file"` // JSON file holding the collection
}

// LoggingConfig configures logging
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`                   // debug, info, warn, error
	Format string `yaml:"format" json:"format"`                 // text, json
	File   string `yaml:"file,omitempty" json:"file,omitempty"` // optional log file, in addition to stderr
}

// Defaults
const (
	FileName        = "pyvengers.yaml"
	DefaultName     = "pyvengers"
	DefaultDataFile = "pyvengers.json"
)
