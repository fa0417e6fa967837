package checks

import (
	"sort"
	"strings"

	"feature-catalog/core/catalog"
	"feature-catalog/core/loader"
)

// CoverageResult is the presence of one id in the catalogue and the module table.
type CoverageResult struct {
	ID                string `json:"id"`
	DescriptorPresent bool   `json:"descriptor_present"`
	ModulePresent     bool   `json:"module_present"`
}

// CatalogReport is the result of the catalogue check.
type CatalogReport struct {
	Status   string   `json:"status"` // "ok", "error"
	Features int      `json:"features"`
	Modules  int      `json:"modules"`
	Problems []string `json:"problems"`
	// Unregistered lists descriptors that have no module.
	Unregistered []string `json:"unregistered"`
	// Orphaned lists modules that no descriptor references.
	Orphaned []string `json:"orphaned"`
}

// CheckCatalog validates the registry and reconciles it against the module table.
func CheckCatalog(reg *catalog.Registry, table *loader.Table) *CatalogReport {
	report := &CatalogReport{
		Status:       "ok",
		Features:     reg.Len(),
		Modules:      table.Len(),
		Problems:     []string{},
		Unregistered: []string{},
		Orphaned:     []string{},
	}

	if err := reg.Validate(); err != nil {
		for _, e := range unwrapAll(err) {
			report.Problems = append(report.Problems, e.Error())
		}
	}

	for _, res := range Coverage(reg, table) {
		switch {
		case res.DescriptorPresent && !res.ModulePresent:
			report.Unregistered = append(report.Unregistered, res.ID)
		case res.ModulePresent && !res.DescriptorPresent:
			report.Orphaned = append(report.Orphaned, res.ID)
		}
	}

	if len(report.Problems) > 0 || len(report.Unregistered) > 0 || len(report.Orphaned) > 0 {
		report.Status = "error"
	}
	return report
}

// Coverage returns one result per id found in either the registry or the table, sorted by id.
func Coverage(reg *catalog.Registry, table *loader.Table) []CoverageResult {
	descriptors := make(map[string]struct{})
	for _, d := range reg.Flatten() {
		descriptors[d.ID] = struct{}{}
	}
	modules := make(map[string]struct{})
	for _, id := range table.IDs() {
		modules[id] = struct{}{}
	}

	union := make(map[string]struct{}, len(descriptors))
	for id := range descriptors {
		union[id] = struct{}{}
	}
	for id := range modules {
		union[id] = struct{}{}
	}

	results := make([]CoverageResult, 0, len(union))
	for id := range union {
		_, dPresent := descriptors[id]
		_, mPresent := modules[id]
		results = append(results, CoverageResult{ID: id, DescriptorPresent: dPresent, ModulePresent: mPresent})
	}
	sort.Slice(results, func(i, j int) bool {
		return strings.Compare(results[i].ID, results[j].ID) < 0
	})
	return results
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
