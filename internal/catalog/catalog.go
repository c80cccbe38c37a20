package catalog

import (
	"strings"

	"github.com/pkg/errors"
)

// Catalog is a versioned, read-only set of lot entries.
// It is built once and shared; none of its methods mutate it.
type Catalog struct {
	version string
	entries []Entry
	index   map[LotType]int
}

// New validates the entries and builds a Catalog from them.
func New(version string, entries []Entry) (*Catalog, error) {
	if strings.TrimSpace(version) == "" {
		return nil, errors.New("catalog version is required")
	}

	c := &Catalog{
		version: version,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[LotType]int, len(entries)),
	}

	for i, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, errors.Wrapf(err, "invalid lot at position %d", i)
		}
		if _, found := c.index[e.Type]; found {
			return nil, errors.Errorf("duplicate lot type %q", e.Type)
		}
		c.index[e.Type] = len(c.entries)
		c.entries = append(c.entries, e.clone())
	}

	for _, e := range c.entries {
		for _, dep := range e.Dependencies {
			if dep == e.Type {
				return nil, errors.Errorf("lot %q depends on itself", e.Type)
			}
			if _, found := c.index[dep]; !found {
				return nil, errors.Errorf("lot %q depends on unknown lot %q", e.Type, dep)
			}
		}
	}

	return c, nil
}

func validateEntry(e Entry) error {
	if e.Type == "" {
		return errors.New("lot type is required")
	}
	if !e.Category.IsValid() {
		return errors.Errorf("lot %q has unknown category %q", e.Type, e.Category)
	}
	if !e.BasePrice.Unit.IsValid() {
		return errors.Errorf("lot %q has unknown price unit %q", e.Type, e.BasePrice.Unit)
	}
	if e.BasePrice.Min < 0 || e.BasePrice.Max < e.BasePrice.Min {
		return errors.Errorf("lot %q has an invalid price range [%v, %v]", e.Type, e.BasePrice.Min, e.BasePrice.Max)
	}
	if e.TypicalDurationDays < 0 {
		return errors.Errorf("lot %q has a negative typical duration", e.Type)
	}
	return nil
}

func (c *Catalog) Version() string {
	return c.version
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns a copy of the entry registered for t.
func (c *Catalog) Lookup(t LotType) (Entry, bool) {
	i, ok := c.index[t]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

func (c *Catalog) Has(t LotType) bool {
	_, ok := c.index[t]
	return ok
}

// Entries returns all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	return c.collect(func(Entry) bool { return true })
}

func (c *Catalog) ByCategory(category Category) []Entry {
	return c.collect(func(e Entry) bool { return e.Category == category })
}

// RGEEligible returns the entries eligible to energy renovation grants.
func (c *Catalog) RGEEligible() []Entry {
	return c.collect(func(e Entry) bool { return e.RGEEligible })
}

// Criteria narrows a catalog listing. Zero values are ignored.
type Criteria struct {
	Category    Category
	RGEEligible *bool
	// MaxBudget keeps entries whose minimum base price does not exceed it.
	MaxBudget *float64
	// MaxDuration keeps entries whose typical duration does not exceed it.
	// Entries without a typical duration are always kept.
	MaxDuration *int
	SearchTerm  string
}

// Filter returns the entries matching every criterion.
func (c *Catalog) Filter(criteria Criteria) []Entry {
	term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))
	return c.collect(func(e Entry) bool {
		if criteria.Category != "" && e.Category != criteria.Category {
			return false
		}
		if criteria.RGEEligible != nil && e.RGEEligible != *criteria.RGEEligible {
			return false
		}
		if criteria.MaxBudget != nil && e.BasePrice.Min > *criteria.MaxBudget {
			return false
		}
		if criteria.MaxDuration != nil && e.TypicalDurationDays > 0 && e.TypicalDurationDays > *criteria.MaxDuration {
			return false
		}
		if term != "" {
			return strings.Contains(strings.ToLower(e.Name), term) ||
				strings.Contains(strings.ToLower(e.Description), term) ||
				strings.Contains(strings.ToLower(string(e.Type)), term)
		}
		return true
	})
}

func (c *Catalog) collect(keep func(Entry) bool) []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if keep(e) {
			out = append(out, e.clone())
		}
	}
	return out
}
