package catalog

// Priorities accepted in descriptor metadata.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Metadata is the user-story record attached to a descriptor.
type Metadata struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Category string   `yaml:"category" json:"category"`
	Priority string   `yaml:"priority" json:"priority"`
	UserType string   `yaml:"userType" json:"userType"`
	Platform string   `yaml:"platform" json:"platform"`
	As       string   `yaml:"as" json:"as"`
	Want     string   `yaml:"want" json:"want"`
	SoThat   string   `yaml:"soThat" json:"soThat"`
	Criteria []string `yaml:"criteria,omitempty" json:"criteria"`
	Effort   string   `yaml:"effort" json:"effort"`
}

// Descriptor describes one feature and points at the source file of its module.
type Descriptor struct {
	ID       string   `yaml:"id" json:"id"`
	File     string   `yaml:"file" json:"file"`
	Metadata Metadata `yaml:"metadata" json:"metadata"`
}

// Category is a named, ordered group of descriptors.
type Category struct {
	Name     string       `yaml:"name" json:"name"`
	Features []Descriptor `yaml:"features" json:"features"`
}

// document is the on-disk layout of a catalogue.
type document struct {
	Categories []Category `yaml:"categories"`
}

// Filter selects descriptors. Empty fields match everything.
type Filter struct {
	Category string
	Priority string
	Platform string
	UserType string
	// Query is matched case-insensitively against title, want and soThat.
	Query string
}

// Stats summarises the catalogue.
type Stats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
	ByPriority map[string]int `json:"by_priority"`
	ByEffort   map[string]int `json:"by_effort"`
}
