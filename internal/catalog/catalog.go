// Package catalog holds the project catalog: its records, the category
// enumeration that keys grouping and iconography, and the search, filter
// and lookup operations the catalog section is built from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var ErrNotFound = errors.New("project not found")

// Catalog is a read-only, ordered collection of projects.
type Catalog struct {
	projects []Project
	byID     map[string]int
}

// Default returns the catalog authored in this package.
func Default() *Catalog {
	return New(projects)
}

// New copies the given projects into a catalog. Call Validate before serving it.
func New(items []Project) *Catalog {
	c := &Catalog{
		projects: append([]Project(nil), items...),
		byID:     make(map[string]int, len(items)),
	}
	for i, p := range c.projects {
		if _, dup := c.byID[p.ID]; !dup {
			c.byID[p.ID] = i
		}
	}
	return c
}

// All returns every project in source order.
func (c *Catalog) All() []Project {
	return append([]Project(nil), c.projects...)
}

func (c *Catalog) Len() int { return len(c.projects) }

// Filter returns, in source order, the projects whose name or description
// contains query (case-insensitive) and whose category matches. CategoryAll
// matches every category and an empty query matches every project. The query
// is matched as typed, surrounding spaces included.
func (c *Catalog) Filter(query string, category Category) []Project {
	q := strings.ToLower(query)
	return lo.Filter(c.projects, func(p Project, _ int) bool {
		return matchesSearch(p, q) && (category == CategoryAll || p.Category == category)
	})
}

func matchesSearch(p Project, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), lowered) ||
		strings.Contains(strings.ToLower(p.Description), lowered)
}

// Group is one category section of the "all" view.
type Group struct {
	Category Category
	Projects []Project
}

func (g Group) Label() string { return g.Category.Label() }
func (g Group) Icon() string  { return g.Category.Icon() }
func (g Group) Count() int    { return len(g.Projects) }

// Groups splits projects by category in display order, dropping empty groups.
func Groups(items []Project) []Group {
	byCategory := lo.GroupBy(items, func(p Project) Category { return p.Category })
	groups := make([]Group, 0, len(byCategory))
	for _, cat := range Categories {
		if ps := byCategory[cat]; len(ps) > 0 {
			groups = append(groups, Group{Category: cat, Projects: ps})
		}
	}
	return groups
}

// Find returns the project with the given id.
func (c *Catalog) Find(id string) (Project, error) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.projects[i], nil
}

// Validate checks every record: non-empty unique id, a name, a description
// and a category from the fixed set.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]struct{}, len(c.projects))
	for i, p := range c.projects {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("project %d: empty id", i))
		} else if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("project %q: duplicate id", p.ID))
		}
		seen[p.ID] = struct{}{}

		if p.Name == "" || p.Description == "" {
			errs = append(errs, fmt.Errorf("project %q: name and description are required", p.ID))
		}
		if !p.Category.Valid() {
			errs = append(errs, fmt.Errorf("project %q: %w: %q", p.ID, ErrUnknownCategory, p.Category))
		}
	}
	return errors.Join(errs...)
}
