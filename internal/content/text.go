package content

var (
	SiteTitle       = "HAKIKAT SINGH"
	SiteDescription = "Portfolio showcasing expertise in AI, Quantum Computing, and Development"

	HeroQuote = `"Truth is not what you want it to be; it is what it is, and you must bend to its power or live a lie."`

	AboutMe = []string{
		`I am a passionate developer and researcher specializing in financial engineering, quantitative analysis,
	and AI-driven solutions. With a background in both software development and financial mathematics, I
	bridge the gap between technology and finance.`,

		`My expertise lies in developing sophisticated algorithms for financial modeling, risk assessment, and
	optimization, with a particular interest in applying machine learning techniques to solve complex
	financial problems.`,

		`I'm a big FC Barcelona fan and enjoy following their matches whenever I can. The team's philosophy of
	beautiful, strategic play resonates with my approach to problem-solving in technology.`,

		`I'm dedicated to pushing the boundaries of what's possible at the intersection of technology and
	finance, creating innovative solutions that drive real-world impact in the financial sector.`,
	}

	ContactIntro = `Have a project in mind, a research collaboration, or just want to talk markets and qubits?
	Send a message and I'll get back to you.`
)
