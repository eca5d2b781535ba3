// Package content is the static copy of the site: navigation, hero, about,
// experience, skills, contact links and the media the splash screen preloads.
package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

type NavItem struct {
	Label  string
	Anchor string
}

type Button struct {
	Label  string
	Target string
}

type Hero struct {
	Name       string
	Quote      string
	Buttons    []Button
	Background string
}

type Card struct {
	Title string
	Body  string
	Icon  string
}

type About struct {
	Paragraphs []string
	Cards      []Card
	Photo      string
	PhotoHover string
}

type Experience struct {
	Period      string
	Title       string
	Company     string
	Description string
	Tags        []string
	Icon        string
}

type Skill struct {
	Name  string
	Level int
}

type SkillCategory struct {
	Name   string
	Icon   string
	Skills []Skill
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns the category name into a stable tab id: lowercase, with every run
// of non-alphanumerics collapsed to a single dash.
func (s SkillCategory) Slug() string {
	return slugInvalid.ReplaceAllString(strings.ToLower(s.Name), "-")
}

type Skills []SkillCategory

// Find returns the category for a tab slug, or the first category when the
// slug is unknown.
func (s Skills) Find(slug string) SkillCategory {
	for _, c := range s {
		if c.Slug() == slug {
			return c
		}
	}
	if len(s) == 0 {
		return SkillCategory{}
	}
	return s[0]
}

type Social struct {
	Name     string
	URL      string
	Icon     string
	External bool
}

type Media struct {
	Audio    string
	Video    string
	Loading  string
	Preload  []string
	Fallback string
}

type Profile struct {
	Title       string
	Description string
	Nav         []NavItem
	Hero        Hero
	About       About
	Experience  []Experience
	Skills      Skills
	Socials     []Social
	Email       string
	Contact     string
	Media       Media
}

// Copyright is the footer line for the given time.
func (p Profile) Copyright(now time.Time) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), p.Title)
}

// Validate checks skill levels are within 0..100 and tab slugs are unique.
func (p Profile) Validate() error {
	var errs []error
	seen := map[string]bool{}
	for _, c := range p.Skills {
		slug := c.Slug()
		if seen[slug] {
			errs = append(errs, fmt.Errorf("skill category %q: duplicate slug %q", c.Name, slug))
		}
		seen[slug] = true
		for _, s := range c.Skills {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Errorf("skill %q: level %d out of range", s.Name, s.Level))
			}
		}
	}
	if len(p.Nav) == 0 {
		errs = append(errs, errors.New("navigation is empty"))
	}
	return errors.Join(errs...)
}
