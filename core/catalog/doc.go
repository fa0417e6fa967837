// Package catalog holds the feature catalogue: the static registry of user-story
// feature descriptors grouped by category.
//
// The catalogue is a YAML document embedded in the binary (catalog.yaml). It can be
// replaced at start-up by pointing the catalog.path setting at another file.
//
// # Data Model
//
//   - Descriptor: one feature (id, source file of its module, metadata).
//   - Metadata: title, category, priority, user type, platform, the user story
//     (as / want / so that), acceptance criteria and effort.
//   - Registry: ordered categories of descriptors, indexed by id. Read-only once parsed.
//
// # Usage
//
//	reg, err := catalog.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.Validate(); err != nil {
//	    log.Printf("catalogue problems: %v", err)
//	}
//	for _, d := range reg.Flatten() {
//	    fmt.Println(d.ID, d.Metadata.Title)
//	}
package catalog
