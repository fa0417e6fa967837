package catalog

import (
	"errors"
	"fmt"
	"regexp"
)

var idPattern = regexp.MustCompile(`^US-\d{4}$`)

var validPriorities = map[string]bool{
	PriorityCritical: true,
	PriorityHigh:     true,
	PriorityMedium:   true,
	PriorityLow:      true,
}

// ErrDuplicateID is wrapped by Validate for every id declared more than once.
var ErrDuplicateID = errors.New("duplicate feature id")

// Validate checks every descriptor and returns all problems joined, or nil.
func (r *Registry) Validate() error {
	var errs []error

	for _, id := range r.dupes {
		errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, id))
	}

	for _, c := range r.categories {
		if c.Name == "" {
			errs = append(errs, errors.New("category with empty name"))
		}
		for i, d := range c.Features {
			errs = append(errs, validateDescriptor(c.Name, i, d)...)
		}
	}

	return errors.Join(errs...)
}

func validateDescriptor(category string, pos int, d Descriptor) []error {
	var errs []error
	ref := d.ID
	if ref == "" {
		ref = fmt.Sprintf("%s[%d]", category, pos)
		errs = append(errs, fmt.Errorf("%s: empty id", ref))
	} else if !idPattern.MatchString(d.ID) {
		errs = append(errs, fmt.Errorf("%s: malformed id", ref))
	}

	if d.File == "" {
		errs = append(errs, fmt.Errorf("%s: empty file", ref))
	}
	if d.Metadata.Title == "" {
		errs = append(errs, fmt.Errorf("%s: empty title", ref))
	}
	if d.Metadata.ID != d.ID {
		errs = append(errs, fmt.Errorf("%s: metadata id %q does not match", ref, d.Metadata.ID))
	}
	if d.Metadata.Category != category {
		errs = append(errs, fmt.Errorf("%s: metadata category %q does not match %q", ref, d.Metadata.Category, category))
	}
	if !validPriorities[d.Metadata.Priority] {
		errs = append(errs, fmt.Errorf("%s: unknown priority %q", ref, d.Metadata.Priority))
	}
	return errs
}
