package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Registry is the read-only feature catalogue.
type Registry struct {
	categories []Category
	index      map[string]Descriptor
	dupes      []string
}

// Default returns the catalogue embedded in the binary.
func Default() (*Registry, error) {
	return Parse(embedded)
}

// Load reads a catalogue document from disk.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalogue document.
// Missing metadata ids and categories are filled from the descriptor and its category.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}

	r := &Registry{
		categories: make([]Category, 0, len(doc.Categories)),
		index:      make(map[string]Descriptor),
	}

	seen := make(map[string]int)
	for _, cat := range doc.Categories {
		features := make([]Descriptor, 0, len(cat.Features))
		for _, d := range cat.Features {
			if d.Metadata.ID == "" {
				d.Metadata.ID = d.ID
			}
			if d.Metadata.Category == "" {
				d.Metadata.Category = cat.Name
			}
			features = append(features, d)

			// Empty ids are reported by Validate and never indexed.
			key := strings.ToUpper(d.ID)
			if key == "" {
				continue
			}
			seen[key]++
			if seen[key] == 1 {
				r.index[key] = d
			} else if seen[key] == 2 {
				r.dupes = append(r.dupes, d.ID)
			}
		}
		r.categories = append(r.categories, Category{Name: cat.Name, Features: features})
	}

	sort.Strings(r.dupes)
	return r, nil
}

// Len returns the number of descriptors, duplicates included.
func (r *Registry) Len() int {
	n := 0
	for _, c := range r.categories {
		n += len(c.Features)
	}
	return n
}

// Flatten returns every descriptor in category order, then declaration order.
func (r *Registry) Flatten() []Descriptor {
	out := make([]Descriptor, 0, r.Len())
	for _, c := range r.categories {
		out = append(out, c.Features...)
	}
	return out
}

// Categories returns the category names in catalogue order.
func (r *Registry) Categories() []string {
	names := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		names = append(names, c.Name)
	}
	return names
}

// Groups returns a copy of the categories with their descriptors.
func (r *Registry) Groups() []Category {
	out := make([]Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, Category{Name: c.Name, Features: append([]Descriptor(nil), c.Features...)})
	}
	return out
}

// Category returns the descriptors of a category.
func (r *Registry) Category(name string) ([]Descriptor, bool) {
	for _, c := range r.categories {
		if c.Name == name {
			return append([]Descriptor(nil), c.Features...), true
		}
	}
	return nil, false
}

// Lookup finds a descriptor by id, ignoring case.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	d, ok := r.index[strings.ToUpper(strings.TrimSpace(id))]
	return d, ok
}

// Duplicates lists ids declared more than once.
func (r *Registry) Duplicates() []string {
	return append([]string(nil), r.dupes...)
}

// Filter returns the descriptors matching every non-empty field of f.
func (r *Registry) Filter(f Filter) []Descriptor {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []Descriptor
	for _, d := range r.Flatten() {
		m := d.Metadata
		if f.Category != "" && !strings.EqualFold(m.Category, f.Category) {
			continue
		}
		if f.Priority != "" && !strings.EqualFold(m.Priority, f.Priority) {
			continue
		}
		if f.Platform != "" && !strings.EqualFold(m.Platform, f.Platform) {
			continue
		}
		if f.UserType != "" && !strings.EqualFold(m.UserType, f.UserType) {
			continue
		}
		if query != "" && !matchesQuery(m, query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesQuery(m Metadata, query string) bool {
	for _, field := range []string{m.Title, m.Want, m.SoThat} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Stats counts descriptors per category, priority and effort.
func (r *Registry) Stats() Stats {
	s := Stats{
		ByCategory: make(map[string]int),
		ByPriority: make(map[string]int),
		ByEffort:   make(map[string]int),
	}
	for _, d := range r.Flatten() {
		s.Total++
		s.ByCategory[d.Metadata.Category]++
		s.ByPriority[d.Metadata.Priority]++
		s.ByEffort[d.Metadata.Effort]++
	}
	return s
}

// EncodeYAML encodes the registry back into a catalogue document.
func (r *Registry) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(document{Categories: r.Groups()})
}
