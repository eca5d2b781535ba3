package catalog

// Project is one entry in the project catalog.
type Project struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	LongDescription string            `json:"long_description,omitempty"`
	Category        Category          `json:"category"`
	Source          string            `json:"source"`
	SourceURL       string            `json:"source_url,omitempty"`
	SourceDomain    string            `json:"source_domain,omitempty"`
	PaperTitle      string            `json:"paper_title,omitempty"`
	Image           string            `json:"image"`
	DetailImage     string            `json:"detail_image,omitempty"`
	Technologies    []string          `json:"technologies,omitempty"`
	Restricted      bool              `json:"restricted,omitempty"`
	Stats           *PerformanceStats `json:"performance_stats,omitempty"`
}

// PerformanceStats are display strings, already formatted.
type PerformanceStats struct {
	SharpeRatio       string `json:"sharpe_ratio,omitempty"`
	WinRate           string `json:"win_rate,omitempty"`
	AnnualReturn      string `json:"annual_return,omitempty"`
	MaxDrawdown       string `json:"max_drawdown,omitempty"`
	SortinoRatio      string `json:"sortino_ratio,omitempty"`
	AlphaGeneration   string `json:"alpha_generation,omitempty"`
	Beta              string `json:"beta,omitempty"`
	RiskAdjustedScore string `json:"risk_adjusted_score,omitempty"`
}

type Metric struct {
	Label string
	Value string
}

// Metrics returns the non-empty stats in display order.
func (s *PerformanceStats) Metrics() []Metric {
	if s == nil {
		return nil
	}
	all := []Metric{
		{"Sharpe Ratio", s.SharpeRatio},
		{"Win Rate", s.WinRate},
		{"Annual Return", s.AnnualReturn},
		{"Max Drawdown", s.MaxDrawdown},
		{"Sortino Ratio", s.SortinoRatio},
		{"Alpha Generation", s.AlphaGeneration},
		{"Beta", s.Beta},
		{"Risk-Adjusted Score", s.RiskAdjustedScore},
	}
	out := all[:0]
	for _, m := range all {
		if m.Value != "" {
			out = append(out, m)
		}
	}
	return out
}

// Body is the detail-modal text: the long description when there is one.
func (p Project) Body() string {
	if p.LongDescription != "" {
		return p.LongDescription
	}
	return p.Description
}

// HeroImage is the detail-modal image, falling back to the card image.
func (p Project) HeroImage() string {
	if p.DetailImage != "" {
		return p.DetailImage
	}
	return p.Image
}

type LinkKind string

const (
	LinkPaper  LinkKind = "paper"
	LinkGitHub LinkKind = "github"
	LinkSource LinkKind = "source"
)

type Link struct {
	Kind  LinkKind
	Title string
	Text  string
	URL   string
}

// Links applies the detail-modal link rules. A paper title always yields a
// paper link. Otherwise restricted projects expose nothing and the rest link
// to GitHub or to their generic source.
func (p Project) Links() []Link {
	if p.PaperTitle != "" {
		url := p.SourceURL
		if url == "" {
			url = "#"
		}
		return []Link{{Kind: LinkPaper, Title: p.PaperTitle, Text: "View on " + p.SourceDomain, URL: url}}
	}
	if p.Restricted || p.SourceURL == "" {
		return nil
	}
	if p.SourceDomain == "GitHub" {
		return []Link{{Kind: LinkGitHub, Text: "View on GitHub", URL: p.SourceURL}}
	}
	return []Link{{Kind: LinkSource, Text: "View Source", URL: p.SourceURL}}
}

// CardMetrics is the short stats strip shown on catalog cards.
func (s *PerformanceStats) CardMetrics() []Metric {
	if s == nil {
		return nil
	}
	return []Metric{
		{"Sharpe", s.SharpeRatio},
		{"Win Rate", s.WinRate},
		{"CAGR", s.AnnualReturn},
		{"Max DD", s.MaxDrawdown},
	}
}
