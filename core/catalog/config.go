package catalog

// Config selects the catalogue source.
type Config struct {
	// Path is a catalogue file replacing the embedded one. Empty uses the embedded catalogue.
	Path string `mapstructure:"path" default:""`
}

// Open loads the configured catalogue.
func (c Config) Open() (*Registry, error) {
	if c.Path == "" {
		return Default()
	}
	return Load(c.Path)
}
