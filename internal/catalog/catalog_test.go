package catalog

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 17, c.Len())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"", CategoryAll, false},
		{"all", CategoryAll, false},
		{" Quantum ", CategoryQuantum, false},
		{"research", CategoryResearch, false},
		{"trading", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownCategory, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCategoryAllIsNotATag(t *testing.T) {
	assert.False(t, CategoryAll.Valid())
	for _, c := range Categories {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.Label())
		assert.NotEmpty(t, c.Icon())
	}
	assert.Equal(t, CategoryAll, Tabs()[0])
	assert.Len(t, Tabs(), len(Categories)+1)
}

func TestFilterSearchIsCaseInsensitiveOnNameAndDescription(t *testing.T) {
	c := Default()

	got := c.Filter("QUANTUM", CategoryAll)
	require.NotEmpty(t, got)
	for _, p := range got {
		hit := strings.Contains(strings.ToLower(p.Name), "quantum") ||
			strings.Contains(strings.ToLower(p.Description), "quantum")
		assert.True(t, hit, p.ID)
	}

	// "Yahoo Finance" only appears in Quickscope's description.
	got = c.Filter("yahoo finance", CategoryAll)
	require.Len(t, got, 1)
	assert.Equal(t, "quickscope", got[0].ID)

	// Technologies and long descriptions are not searched.
	assert.Empty(t, c.Filter("Houdini extension for", CategoryAll))
	assert.Empty(t, c.Filter("OpenVDB to achieve", CategoryAll))
}

func TestFilterMatchesQueryAsTyped(t *testing.T) {
	c := Default()

	assert.Empty(t, c.Filter("   ", CategoryAll), "no record contains three spaces")
	assert.Len(t, c.Filter(" ", CategoryAll), c.Len(), "every description contains a space")

	for _, p := range c.Filter(" lean", CategoryAll) {
		hit := strings.Contains(strings.ToLower(p.Name), " lean") ||
			strings.Contains(strings.ToLower(p.Description), " lean")
		assert.True(t, hit, p.ID)
	}
	assert.Empty(t, c.Filter("quickscope  ", CategoryAll), "trailing spaces are part of the query")
}

func TestFilterByCategory(t *testing.T) {
	c := Default()

	assert.Len(t, c.Filter("", CategoryAll), c.Len())
	for _, cat := range Categories {
		for _, p := range c.Filter("", cat) {
			assert.Equal(t, cat, p.Category)
		}
	}
	assert.Len(t, c.Filter("", CategoryResearch), 3)
	assert.Len(t, c.Filter("", CategoryQuantitative), 5)
	assert.Len(t, c.Filter("", CategorySystem), 4)
}

func TestFilterCombinesSearchAndCategory(t *testing.T) {
	c := Default()

	got := c.Filter("hybrid", CategoryQuantum)
	require.Len(t, got, 1)
	assert.Equal(t, "elysiumq", got[0].ID)

	assert.Empty(t, c.Filter("no such project", CategoryAll))
}

func TestFilterPreservesSourceOrder(t *testing.T) {
	c := Default()
	all := c.All()
	got := c.Filter("a", CategoryAll)

	idx := 0
	for _, p := range got {
		for idx < len(all) && all[idx].ID != p.ID {
			idx++
		}
		require.Less(t, idx, len(all), "filter reordered %s", p.ID)
	}
}

func TestGroups(t *testing.T) {
	c := Default()

	groups := Groups(c.Filter("", CategoryAll))
	require.Len(t, groups, len(Categories))
	for i, g := range groups {
		assert.Equal(t, Categories[i], g.Category)
		assert.Equal(t, len(g.Projects), g.Count())
	}

	groups = Groups(c.Filter("github actions", CategoryAll))
	require.Len(t, groups, 1)
	assert.Equal(t, CategorySystem, groups[0].Category)
	assert.Equal(t, "System", groups[0].Label())

	assert.Empty(t, Groups(nil))
}

func TestFind(t *testing.T) {
	c := Default()

	p, err := c.Find("sherlock")
	require.NoError(t, err)
	assert.True(t, p.Restricted)
	assert.Len(t, p.Stats.Metrics(), 8)

	_, err = c.Find("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := New([]Project{
		{ID: "a", Name: "A", Description: "a", Category: CategorySystem},
		{ID: "a", Name: "A2", Description: "a", Category: CategorySystem},
		{ID: "b", Name: "B", Description: "b", Category: "trading"},
		{ID: "", Name: "", Description: "", Category: CategoryAll},
	})

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	msg := err.Error()
	assert.Contains(t, msg, "duplicate id")
	assert.Contains(t, msg, "empty id")
	assert.Contains(t, msg, "name and description are required")
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "changed"

	p, err := c.Find(all[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", p.Name)
}

func TestLinks(t *testing.T) {
	paper := Project{PaperTitle: "Paper", SourceURL: "https://rg.example/x", SourceDomain: "ResearchGate"}
	links := paper.Links()
	require.Len(t, links, 1)
	assert.Equal(t, LinkPaper, links[0].Kind)
	assert.Equal(t, "View on ResearchGate", links[0].Text)

	noURL := Project{PaperTitle: "Paper"}
	assert.Equal(t, "#", noURL.Links()[0].URL)

	gh := Project{SourceURL: "https://github.com/x/y", SourceDomain: "GitHub"}
	require.Len(t, gh.Links(), 1)
	assert.Equal(t, LinkGitHub, gh.Links()[0].Kind)

	other := Project{SourceURL: "https://example.com", SourceDomain: "Example"}
	assert.Equal(t, LinkSource, other.Links()[0].Kind)

	restricted := Project{SourceURL: "https://github.com/x/y", SourceDomain: "GitHub", Restricted: true}
	assert.Empty(t, restricted.Links())
	assert.Empty(t, Project{}.Links())
}

func TestBodyAndHeroImageFallbacks(t *testing.T) {
	p := Project{Description: "short", Image: "/images/a.jpeg"}
	assert.Equal(t, "short", p.Body())
	assert.Equal(t, "/images/a.jpeg", p.HeroImage())

	p.LongDescription = "long"
	p.DetailImage = "/images/b.jpeg"
	assert.Equal(t, "long", p.Body())
	assert.Equal(t, "/images/b.jpeg", p.HeroImage())
}

func TestMetricsSkipsEmpty(t *testing.T) {
	var nilStats *PerformanceStats
	assert.Nil(t, nilStats.Metrics())
	assert.Nil(t, nilStats.CardMetrics())

	s := &PerformanceStats{SharpeRatio: "1.0", Beta: "0.2"}
	assert.Equal(t, []Metric{{"Sharpe Ratio", "1.0"}, {"Beta", "0.2"}}, s.Metrics())
}

func TestShuffleIsAPermutation(t *testing.T) {
	items := FeaturedProjects()
	rng := rand.New(rand.NewPCG(1, 2))

	got := Shuffle(items, rng)
	require.Len(t, got, len(items))
	assert.ElementsMatch(t, items, got)
	assert.Equal(t, FeaturedProjects(), items, "input must not be modified")

	// Same seed, same order.
	again := Shuffle(items, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, got, again)

	assert.Empty(t, Shuffle([]Featured{}, rng))
}

func TestShuffleReachesEveryPosition(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		out := Shuffle([]int{0, 1, 2}, rng)
		seen[out[0]] = true
	}
	assert.Len(t, seen, 3)
}

func TestFeatured(t *testing.T) {
	f, ok := FindFeatured("trading-bot")
	require.True(t, ok)
	assert.Equal(t, FeaturedTrading, f.Kind)
	assert.Equal(t, "line-chart", f.Kind.Icon())
	assert.Equal(t, "An RL-based trading bot achieving 12% MoM returns in volatile markets through adaptive "+
		"learning and risk management.", f.Summary())

	_, ok = FindFeatured("nope")
	assert.False(t, ok)

	assert.Equal(t, "no period", Featured{Description: "no period"}.Summary())
}
