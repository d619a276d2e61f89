package config

// Configfile represents the structure of the slnver.yaml configuration file.
// Pointer fields distinguish absent keys from zero values.
type Configfile struct {
	Restore *RestoreDTO `yaml:"restore"`
	Log     *LogDTO     `yaml:"log"`
}

// RestoreDTO represents the restore section of the configuration.
type RestoreDTO struct {
	Enabled *bool    `yaml:"enabled"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Timeout string   `yaml:"timeout"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	Format string `yaml:"format"`
}
