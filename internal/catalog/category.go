package catalog

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryResearch     Category = "research"
	CategoryQuantitative Category = "quantitative"
	CategorySimulations  Category = "simulations"
	CategoryQuantum      Category = "quantum"
	CategorySystem       Category = "system"

	// CategoryAll is a filter value only. No project carries it.
	CategoryAll Category = "all"
)

var ErrUnknownCategory = errors.New("unknown category")

// Categories lists the project categories in display order.
var Categories = []Category{
	CategoryResearch,
	CategoryQuantitative,
	CategorySimulations,
	CategoryQuantum,
	CategorySystem,
}

type categoryMeta struct {
	label    string
	tabLabel string
	icon     string
}

var categoryInfo = map[Category]categoryMeta{
	CategoryResearch:     {label: "Research and Publication", tabLabel: "Research", icon: "book-open"},
	CategoryQuantitative: {label: "Quantitative Software", tabLabel: "Quantitative", icon: "line-chart"},
	CategorySimulations:  {label: "Simulations", tabLabel: "Simulations", icon: "waves"},
	CategoryQuantum:      {label: "Quantum Tools", tabLabel: "Quantum", icon: "cpu"},
	CategorySystem:       {label: "System", tabLabel: "System", icon: "server"},
	CategoryAll:          {label: "All Projects", tabLabel: "All Projects", icon: "layers"},
}

// ParseCategory accepts a project category or "all". Empty input means "all".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryAll, nil
	}
	if _, ok := categoryInfo[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c may tag a project.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok && c != CategoryAll
}

func (c Category) Label() string    { return categoryInfo[c].label }
func (c Category) TabLabel() string { return categoryInfo[c].tabLabel }
func (c Category) Icon() string     { return categoryInfo[c].icon }
func (c Category) String() string   { return string(c) }

// Tabs returns the filter tabs: "all" followed by every category.
func Tabs() []Category {
	return append([]Category{CategoryAll}, Categories...)
}
