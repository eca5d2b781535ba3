package content

// Default is the profile rendered by the site.
func Default() Profile {
	return Profile{
		Title:       SiteTitle,
		Description: SiteDescription,
		Nav: []NavItem{
			{Label: "About", Anchor: "about"},
			{Label: "Experience", Anchor: "experience"},
			{Label: "Skills", Anchor: "skills"},
			{Label: "Projects", Anchor: "projects"},
			{Label: "Contact", Anchor: "contact"},
		},
		Hero: Hero{
			Name:  SiteTitle,
			Quote: HeroQuote,
			Buttons: []Button{
				{Label: "The Lore", Target: "about"},
				{Label: "Skills", Target: "skills"},
			},
			Background: "/images/hero-bg.jpeg",
		},
		About: About{
			Paragraphs: AboutMe,
			Photo:      "/images/sketchy-animated.jpeg",
			PhotoHover: "/images/hakikat-profile.jpeg",
			Cards: []Card{
				{
					Title: "AI & Machine Learning",
					Body: "Developing sophisticated algorithms for financial modeling, risk assessment, and " +
						"optimization using cutting-edge machine learning techniques.",
					Icon: "brain",
				},
				{
					Title: "Quantum Computing",
					Body: "Researching and implementing quantum algorithms for solving complex computational " +
						"problems in finance and optimization.",
					Icon: "code",
				},
				{
					Title: "Full Stack Development",
					Body: "Building modern, responsive web applications with Next.js, React, and other " +
						"cutting-edge technologies for financial and data-driven solutions.",
					Icon: "database",
				},
				{
					Title: "Quantitative Finance",
					Body: "Applying mathematical models and statistical techniques to analyze financial markets, " +
						"develop trading strategies, and optimize investment portfolios.",
					Icon: "line-chart",
				},
			},
		},
		Experience: []Experience{
			{
				Period:  "2024 - Present",
				Title:   "Lead Developer",
				Company: "IMBUEIT (US Tech Startup)",
				Description: "Built a social crowdfunding platform (LinkedIn meets Kickstarter) using Next.js and " +
					"Supabase. Led a team of 3 interns to automate CI/CD workflows, slashing deployment time by " +
					"40%. Designed a clean UI with TailwindCSS, improving user retention by 15%.",
				Tags: []string{"Next.js", "Supabase", "TailwindCSS", "CI/CD", "Team Leadership"},
				Icon: "briefcase",
			},
			{
				Period:  "2023 - Present",
				Title:   "AI & Quant Researcher",
				Company: "Independent",
				Description: "Designed an RL-based trading bot achieving 12% MoM returns in volatile markets. Built " +
					"a system integrating NLP sentiment analysis with QuantConnect backtesting. Created an NLP " +
					"framework to validate AI models pre-deployment.",
				Tags: []string{"Reinforcement Learning", "NLP", "QuantConnect", "Algorithmic Trading", "Sentiment Analysis"},
				Icon: "code",
			},
			{
				Period:  "2023 - 2024",
				Title:   "Open-Source Contributor",
				Company: "Various Projects",
				Description: "Developed CUDA-enhanced fluid simulations for real-time risk modeling. Contributed to " +
					"IBM's Qiskit, refining quantum circuit optimizations for finance.",
				Tags: []string{"CUDA", "Fluid Simulations", "Qiskit", "Quantum Computing", "Risk Modeling"},
				Icon: "calendar",
			},
		},
		Skills: Skills{
			{Name: "Backend & Systems", Icon: "database", Skills: []Skill{
				{"Python", 90}, {"Node.js", 85}, {"Databases", 80},
			}},
			{Name: "CI/CD & Automation", Icon: "zap", Skills: []Skill{
				{"GitHub Actions", 85}, {"Vercel", 90}, {"Redis", 75},
			}},
			{Name: "AI/ML Engineering", Icon: "cpu", Skills: []Skill{
				{"TensorFlow", 85}, {"PyTorch", 80}, {"NLP", 90}, {"Reinforcement Learning", 85},
			}},
			{Name: "Quantitative Development", Icon: "line-chart", Skills: []Skill{
				{"Algorithmic Trading", 90}, {"Risk Management", 85}, {"Data Ingestion", 80}, {"LEAN Framework", 82},
			}},
			{Name: "Simulations", Icon: "braces", Skills: []Skill{
				{"CUDA", 85}, {"Quantum Monte Carlo", 80}, {"Hybrid HHL Solvers", 75},
			}},
			{Name: "Full-Stack Development", Icon: "code", Skills: []Skill{
				{"React", 90}, {"Next.js", 95}, {"TypeScript", 85}, {"Supabase", 80},
			}},
		},
		Socials: []Social{
			{Name: "GitHub", URL: "https://github.com/hakikat011", Icon: "github", External: true},
			{Name: "LinkedIn", URL: "https://www.linkedin.com/in/hakikat-singh-7a4b64228/", Icon: "linkedin", External: true},
			{Name: "Discord", URL: "https://discord.com/users/skywalker_011", Icon: "message-circle", External: true},
			{Name: "Email", URL: "mailto:hakikatsingh011@gmail.com", Icon: "mail"},
		},
		Email:   "hakikatsingh011@gmail.com",
		Contact: ContactIntro,
		Media: Media{
			Audio:   "/audio/jin.mp3",
			Video:   "/video/hero-loop.mp4",
			Loading: "/images/samurai-loading.png",
			Preload: []string{
				"/images/uwp-background.jpeg",
				"/images/hero-bg.jpeg",
				"/images/samurai-red-sun.png",
				"/images/hakikat-profile.jpeg",
				"/images/samurai-loading.png",
			},
			Fallback: "/static/img/placeholder.svg",
		},
	}
}
