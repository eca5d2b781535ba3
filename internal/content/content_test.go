package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfileIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Len(t, p.Nav, 5)
	assert.Len(t, p.Experience, 3)
	assert.Len(t, p.Skills, 6)
	assert.Len(t, p.About.Paragraphs, 4)
	assert.Len(t, p.About.Cards, 4)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Backend & Systems":      "backend-systems",
		"CI/CD & Automation":     "ci-cd-automation",
		"AI/ML Engineering":      "ai-ml-engineering",
		"Full-Stack Development": "full-stack-development",
		"Simulations":            "simulations",
	}
	for name, want := range tests {
		assert.Equal(t, want, SkillCategory{Name: name}.Slug(), name)
	}
}

func TestSkillsFind(t *testing.T) {
	skills := Default().Skills

	assert.Equal(t, "Simulations", skills.Find("simulations").Name)
	assert.Equal(t, "Backend & Systems", skills.Find("unknown").Name, "unknown slug falls back to first tab")
	assert.Empty(t, Skills{}.Find("any").Name)
}

func TestValidate(t *testing.T) {
	p := Profile{
		Nav: []NavItem{{Label: "About", Anchor: "about"}},
		Skills: Skills{
			{Name: "A B", Skills: []Skill{{"x", 101}}},
			{Name: "a-b", Skills: []Skill{{"y", -1}}},
		},
	}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slug")
	assert.Contains(t, err.Error(), `skill "x": level 101 out of range`)
	assert.Contains(t, err.Error(), `skill "y": level -1 out of range`)

	assert.Error(t, Profile{}.Validate(), "empty navigation")
}

func TestCopyright(t *testing.T) {
	p := Default()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "© 2026 HAKIKAT SINGH. All rights reserved.", p.Copyright(now))
}

func TestPreloadIncludesLoadingImage(t *testing.T) {
	m := Default().Media
	assert.Contains(t, m.Preload, m.Loading)
}
