package catalog

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// FeaturedKind groups the featured ("master quests") cards.
type FeaturedKind string

const (
	FeaturedResearch FeaturedKind = "research"
	FeaturedTrading  FeaturedKind = "trading"
	FeaturedQuantum  FeaturedKind = "quantum"
)

func (k FeaturedKind) Icon() string {
	switch k {
	case FeaturedResearch:
		return "book-open"
	case FeaturedTrading:
		return "line-chart"
	default:
		return "cpu"
	}
}

type Featured struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Technologies []string     `json:"technologies"`
	Type         string       `json:"type,omitempty"`
	Date         string       `json:"date,omitempty"`
	Kind         FeaturedKind `json:"category"`
	Image        string       `json:"image"`
}

// Summary is the collapsed-card text: the first sentence of the description.
func (f Featured) Summary() string {
	for i := 0; i+1 < len(f.Description); i++ {
		if f.Description[i] == '.' && f.Description[i+1] == ' ' {
			return f.Description[:i+1]
		}
	}
	return f.Description
}

var featured = []Featured{
	{
		ID:    "hybrid-algorithms",
		Title: "Hybrid Classical-Quantum Algorithms for Financial Linear Systems",
		Description: "Combined CUDA-accelerated preconditioning with quantum HHL, solving sparse systems 50% faster " +
			"than classical methods. This research explored the intersection of high-performance computing and " +
			"quantum algorithms to address computational bottlenecks in financial modeling. The hybrid approach " +
			"leverages classical preprocessing to improve the condition number of matrices before applying quantum " +
			"algorithms, resulting in significant performance improvements for large-scale financial simulations.",
		Technologies: []string{"Quantum HHL", "CUDA", "Linear Algebra", "Financial Modeling"},
		Type:         "Thesis",
		Date:         "October 2024",
		Kind:         FeaturedResearch,
		Image:        "/images/quantum-computing-blue-circuits.png",
	},
	{
		ID:    "quantum-monte-carlo",
		Title: "Quantum Monte Carlo for Portfolio Optimization",
		Description: "Applied quantum algorithms to high-dimensional risk modeling, outperforming classical " +
			"benchmarks in portfolio optimization scenarios. This project implemented quantum-enhanced Monte Carlo " +
			"methods to simulate market behavior and optimize investment portfolios under various risk " +
			"constraints. The quantum approach demonstrated superior performance in handling the curse of " +
			"dimensionality that typically plagues classical Monte Carlo simulations, enabling more accurate risk " +
			"assessments for complex financial instruments.",
		Technologies: []string{"Quantum Monte Carlo", "Portfolio Theory", "Risk Modeling", "Qiskit"},
		Type:         "Thesis",
		Date:         "August 2024",
		Kind:         FeaturedResearch,
		Image:        "/images/quantum-monte-carlo.png",
	},
	{
		ID:    "dynamic-caching",
		Title: "Dynamic Caching for Adaptive Databases",
		Description: "Reduced query latency by 35% through workload-driven algorithm switching in high-frequency " +
			"trading database systems. This research developed an adaptive caching system that dynamically selects " +
			"optimal caching algorithms based on real-time workload patterns. The system continuously monitors " +
			"query patterns and performance metrics, automatically switching between different caching strategies " +
			"to maximize hit rates and minimize latency for time-sensitive financial applications.",
		Technologies: []string{"Database Optimization", "Caching Algorithms", "Performance Tuning", "Redis"},
		Type:         "Thesis",
		Date:         "November 2023",
		Kind:         FeaturedResearch,
		Image:        "/images/database-caching-system.png",
	},
	{
		ID:    "trading-bot",
		Title: "Trading Bot System",
		Description: "An RL-based trading bot achieving 12% MoM returns in volatile markets through adaptive " +
			"learning and risk management. This system employs deep reinforcement learning to develop trading " +
			"strategies that adapt to changing market conditions. The bot incorporates multiple data sources, " +
			"including price action, volume, and sentiment analysis, to make informed trading decisions. A " +
			"sophisticated risk management module ensures position sizing is optimized to balance potential " +
			"returns against market volatility.",
		Technologies: []string{"Reinforcement Learning", "Python", "TensorFlow", "Zerodha API"},
		Kind:         FeaturedTrading,
		Image:        "/images/trading-bot-ai.png",
	},
	{
		ID:    "sentiment-analysis",
		Title: "Sentiment Analysis for Trading",
		Description: "NLP-powered sentiment analysis system for trading strategies, integrating with QuantConnect " +
			"for backtesting and validation. This project developed a sophisticated natural language processing " +
			"pipeline to analyze financial news, social media, and earnings calls in real-time. The system " +
			"extracts sentiment signals and correlates them with market movements to generate actionable trading " +
			"insights. Integration with QuantConnect allows for comprehensive backtesting of sentiment-driven " +
			"strategies across various market conditions.",
		Technologies: []string{"NLP", "Sentiment Analysis", "QuantConnect", "PyTorch"},
		Kind:         FeaturedTrading,
		Image:        "/images/sentiment-analysis-visualization.png",
	},
	{
		ID:    "quantum-circuit",
		Title: "Quantum Circuit Optimizer",
		Description: "Contributed to IBM's Qiskit by refining quantum circuit optimizations specifically for " +
			"financial applications. This project developed specialized circuit optimization techniques that " +
			"reduce gate count and circuit depth for quantum algorithms used in financial calculations. The " +
			"optimizations target the specific patterns of quantum operations common in financial applications " +
			"such as option pricing and risk assessment. These improvements enable more complex financial models " +
			"to run on current NISQ-era quantum hardware with higher fidelity.",
		Technologies: []string{"Qiskit", "Quantum Gates", "Circuit Optimization", "Python"},
		Kind:         FeaturedQuantum,
		Image:        "/images/quantum-circuit-optimization.png",
	},
}

// FeaturedProjects returns the featured cards in authored order.
func FeaturedProjects() []Featured {
	return append([]Featured(nil), featured...)
}

// FindFeatured looks up a featured card by id.
func FindFeatured(id string) (Featured, bool) {
	return lo.Find(featured, func(f Featured) bool { return f.ID == id })
}

// Shuffle returns a Fisher-Yates permutation of items drawn from rng.
// The input slice is left untouched.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := append([]T(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
