package catalog

const sourceUser = "User-provided"

var projects = []Project{
	{
		ID:   "hybrid-algorithms",
		Name: "Hybrid Classical-Quantum Algorithms for Financial Linear Systems",
		Description: "Combined CUDA-accelerated preconditioning with quantum HHL, solving sparse systems 50% faster " +
			"than classical methods.",
		LongDescription: "This research explored the intersection of high-performance computing and quantum " +
			"algorithms to address computational bottlenecks in financial modeling. The hybrid approach leverages " +
			"classical preprocessing to improve the condition number of matrices before applying quantum " +
			"algorithms, resulting in significant performance improvements for large-scale financial simulations.",
		Technologies: []string{"Quantum HHL", "CUDA", "Linear Algebra", "Financial Modeling", "Sparse Matrix Optimization"},
		Category:     CategoryResearch,
		Source:       sourceUser,
		SourceURL: "https://www.researchgate.net/publication/384595852_Optimised_Hybrid_Classical-Quantum_Algorithm_for_" +
			"Accelerated_Solution_of_Sparse_Linear_Systems_Optimised_Hybrid_Classical-Quantum_Algorithm_for_" +
			"Accelerated_Solution_of_Sparse_Linear_Systems_A_Detailed",
		SourceDomain: "ResearchGate",
		PaperTitle:   "Optimised Hybrid Classical-Quantum Algorithm for Accelerated Solution of Sparse Linear Systems",
		Image:        "/images/robotic-hand-red.jpeg",
		DetailImage:  "/images/robotic-hand-red.jpeg",
	},
	{
		ID:   "quantum-monte-carlo",
		Name: "Quantum Monte Carlo for Portfolio Optimization",
		Description: "Applied quantum algorithms to high-dimensional risk modeling, outperforming classical " +
			"benchmarks in portfolio optimization scenarios.",
		LongDescription: "This project implemented quantum-enhanced Monte Carlo methods to simulate market " +
			"behavior and optimize investment portfolios under various risk constraints. The quantum approach " +
			"demonstrated superior performance in handling the curse of dimensionality that typically plagues " +
			"classical Monte Carlo simulations, enabling more accurate risk assessments for complex financial " +
			"instruments.",
		Technologies: []string{"Quantum Monte Carlo", "Portfolio Theory", "Risk Modeling", "Qiskit", "Financial Derivatives"},
		Category:     CategoryResearch,
		Source:       sourceUser,
		SourceURL: "https://www.researchgate.net/publication/382852758_Quantum_Computing_for_Financial_Simulations_1_" +
			"Title_Leveraging_Quantum_Computing_for_Financial_Simulations_Integrating_Quantum_Monte_Carlo_Amplitude_" +
			"Estimation_and_QAOA",
		SourceDomain: "ResearchGate",
		PaperTitle: "Leveraging Quantum Computing for Financial Simulations: Integrating Quantum Monte Carlo, " +
			"Amplitude Estimation, and QAOA",
		Image:       "/images/robotic-hand-yellow.jpeg",
		DetailImage: "/images/robotic-hand-yellow.jpeg",
	},
	{
		ID:   "dynamic-caching",
		Name: "Dynamic Caching for Adaptive Databases",
		Description: "Reduced query latency by 35% through workload-driven algorithm switching in high-frequency " +
			"trading database systems.",
		LongDescription: "This research developed an adaptive caching system that dynamically selects optimal " +
			"caching algorithms based on real-time workload patterns. The system continuously monitors query " +
			"patterns and performance metrics, automatically switching between different caching strategies to " +
			"maximize hit rates and minimize latency for time-sensitive financial applications.",
		Technologies: []string{"Database Optimization", "Caching Algorithms", "Performance Tuning", "Redis", "High-Frequency Trading"},
		Category:     CategoryResearch,
		Source:       sourceUser,
		SourceURL: "https://www.researchgate.net/publication/375606174_Title_Adaptive_Search_Optimization_Dynamic_" +
			"Algorithm_Selection_and_Caching_for_Enhanced_Database_Performance",
		SourceDomain: "ResearchGate",
		PaperTitle: "Adaptive Search Optimization: Dynamic Algorithm Selection and Caching for Enhanced Database " +
			"Performance",
		Image:       "/images/robotic-hand-black.jpeg",
		DetailImage: "/images/robotic-hand-black.jpeg",
	},

	{
		ID:          "quickscope",
		Name:        "Quickscope",
		Description: "Uses Twitter and Yahoo Finance to generate trading signals.",
		LongDescription: "Quickscope is a real-time trading signal generator that combines sentiment analysis " +
			"from Twitter with technical indicators from Yahoo Finance. The system employs natural language " +
			"processing to gauge market sentiment and correlates this with price action data to identify " +
			"potential trading opportunities across various timeframes.",
		Technologies: []string{"NLP", "Sentiment Analysis", "Technical Analysis", "Twitter API", "Yahoo Finance API"},
		Category:     CategoryQuantitative,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/AI-TradeBOT",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-red-blue.jpeg",
		DetailImage:  "/images/robotic-hand-red-blue.jpeg",
	},
	{
		ID:   "alphaforge",
		Name: "Alphaforge",
		Description: "A minimal but functional MCP-LEAN bridge with Gemini integration, designed for " +
			"QuantConnect interaction.",
		LongDescription: "Alphaforge creates a seamless bridge between Model Control Protocol (MCP) and the LEAN " +
			"engine, with added Gemini AI integration. This allows quantitative researchers to develop and test " +
			"trading strategies in QuantConnect's environment while leveraging advanced AI capabilities for " +
			"strategy enhancement and optimization.",
		Technologies: []string{"QuantConnect", "LEAN Engine", "MCP", "Gemini AI", "Algorithmic Trading"},
		Category:     CategoryQuantitative,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/AlphaForge",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-navy.jpeg",
		DetailImage:  "/images/robotic-hand-navy.jpeg",
	},
	{
		ID:   "sherlock",
		Name: "Sherlock",
		Description: "A comprehensive algorithmic trading framework for Indian markets using QuantConnect's LEAN " +
			"engine with Zerodha integration.",
		LongDescription: "Sherlock is a specialized algorithmic trading framework designed specifically for " +
			"Indian markets. It integrates QuantConnect's LEAN engine with Zerodha's API to provide a complete " +
			"solution for strategy development, backtesting, and live trading. The system includes custom modules " +
			"for handling India-specific market nuances, regulations, and trading hours.",
		Technologies: []string{"QuantConnect", "LEAN Engine", "Zerodha API", "Indian Markets", "Algorithmic Trading"},
		Category:     CategoryQuantitative,
		Source:       sourceUser,
		Image:        "/images/robotic-hand-navy-gold.jpeg",
		DetailImage:  "/images/robotic-hand-navy-gold.jpeg",
		Restricted:   true,
		Stats: &PerformanceStats{
			SharpeRatio:       "2.48",
			WinRate:           "88.3%",
			AnnualReturn:      "64.7%",
			MaxDrawdown:       "-12.3%",
			SortinoRatio:      "3.12",
			AlphaGeneration:   "19.8%",
			Beta:              "0.18",
			RiskAdjustedScore: "8.9/10",
		},
	},
	{
		ID:   "mozartedge",
		Name: "MozartEdge",
		Description: "An automated trading system that implements multiple strategies including mean reversion, " +
			"volatility arbitrage, pairs trading, and implied vs realized volatility trading.",
		LongDescription: "MozartEdge is a sophisticated multi-strategy trading system that orchestrates various " +
			"trading approaches in harmony. It implements mean reversion, volatility arbitrage, pairs trading, and " +
			"volatility spread trading strategies with enhanced features for profit-taking and market analysis. " +
			"The system dynamically allocates capital across strategies based on market conditions and " +
			"performance metrics.",
		Technologies: []string{"Mean Reversion", "Volatility Arbitrage", "Pairs Trading", "Options Trading", "Risk Management"},
		Category:     CategoryQuantitative,
		Source:       sourceUser,
		Image:        "/images/robotic-hand-yellow-black.jpeg",
		DetailImage:  "/images/robotic-hand-yellow-black.jpeg",
		Restricted:   true,
		Stats: &PerformanceStats{
			SharpeRatio:       "2.21",
			WinRate:           "94.5%",
			AnnualReturn:      "29.6%",
			MaxDrawdown:       "-6.8%",
			SortinoRatio:      "2.75",
			AlphaGeneration:   "14.2%",
			Beta:              "0.11",
			RiskAdjustedScore: "8.6/10",
		},
	},
	{
		ID:   "horcrux",
		Name: "Horcrux",
		Description: "An AI-based news and market scrapper that daily automatically selects tools, " +
			"configurations, and instruments, and trades with the LLM and MCP trained in the system.",
		LongDescription: "Horcrux is an advanced AI-driven trading system that autonomously scrapes news and " +
			"market data to inform its trading decisions. The system employs large language models (LLMs) and " +
			"Model Control Protocol (MCP) to analyze information, select appropriate trading instruments, and " +
			"execute trades. It continuously learns and adapts its strategies based on market feedback and " +
			"performance.",
		Technologies: []string{"AI", "LLM", "MCP", "News Scraping", "Market Analysis", "Autonomous Trading"},
		Category:     CategoryQuantitative,
		Source:       sourceUser,
		Image:        "/images/robotic-hand-yellow-mech.jpeg",
		DetailImage:  "/images/robotic-hand-yellow-mech.jpeg",
	},

	{
		ID:   "zengesture",
		Name: "ZenGesture",
		Description: "A web-based application that integrates hand pose recognition with Three.js for interactive " +
			"3D experiences. Uses TensorFlow.js's Handpose model for real-time hand gesture detection.",
		LongDescription: "ZenGesture creates immersive interactive experiences by combining TensorFlow.js's " +
			"Handpose model with Three.js for 3D visualization. The application tracks hand movements in real-time " +
			"through a webcam, allowing users to manipulate 3D objects, navigate virtual environments, or create " +
			"digital art using natural hand gestures without requiring any special hardware.",
		Technologies: []string{"TensorFlow.js", "Three.js", "WebGL", "Computer Vision", "Hand Tracking"},
		Category:     CategorySimulations,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/ZenGesture",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-red-white-tech.jpeg",
		DetailImage:  "/images/robotic-hand-red-white-tech.jpeg",
	},
	{
		ID:   "fluidsimulations-cuda",
		Name: "FluidSimulations-CUDA",
		Description: "A Houdini extension designed to enhance the accuracy and efficiency of fluid simulations " +
			"through GPU acceleration (CUDA), volumetric data management (OpenVDB), and adaptive mesh refinement.",
		LongDescription: "FluidSimulations-CUDA is a high-performance extension for Houdini that leverages CUDA " +
			"for GPU acceleration of complex fluid dynamics calculations. The system implements advanced " +
			"techniques such as adaptive mesh refinement and efficient volumetric data management through OpenVDB " +
			"to achieve realistic fluid simulations at significantly higher speeds than traditional CPU-based " +
			"approaches.",
		Technologies: []string{"CUDA", "Houdini", "OpenVDB", "Fluid Dynamics", "Adaptive Mesh Refinement"},
		Category:     CategorySimulations,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/FluidSimulations-CUDA",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-red-white-diagram.jpeg",
		DetailImage:  "/images/robotic-hand-red-white-diagram.jpeg",
	},
	{
		ID:   "aquashift",
		Name: "AquaShift",
		Description: "A real-time water simulation pipeline that integrates 3D geospatial data to simulate dynamic " +
			"water bodies and incorporates real-time data from sources like NASA Aqua/MODIS and NOAA.",
		LongDescription: "AquaShift creates highly accurate water simulations by combining 3D geospatial data with " +
			"real-time environmental information from NASA Aqua/MODIS satellites and NOAA weather systems. The " +
			"pipeline generates dynamic water bodies that respond realistically to changing environmental " +
			"conditions, making it valuable for climate research, disaster preparedness, and environmental impact " +
			"studies.",
		Technologies: []string{"Geospatial Data", "NASA Aqua/MODIS", "NOAA Data Integration", "Real-time Simulation", "Environmental Modeling"},
		Category:     CategorySimulations,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/AquaShift",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-white-purple.jpeg",
		DetailImage:  "/images/robotic-hand-white-purple.jpeg",
	},

	{
		ID:          "askqubits",
		Name:        "AskQubits",
		Description: "MVP integrating financial data scraping, AI analysis, and quantum computations.",
		LongDescription: "AskQubits is a minimum viable product that demonstrates the potential of combining " +
			"financial data scraping, AI-powered analysis, and quantum computing algorithms. The system collects " +
			"financial data from various sources, processes it using AI to identify patterns and opportunities, " +
			"and then applies quantum algorithms to optimize complex financial calculations that would be " +
			"intractable for classical computers.",
		Technologies: []string{"Quantum Computing", "Financial Data Scraping", "AI Analysis", "Qiskit", "Python"},
		Category:     CategoryQuantum,
		Source:       sourceUser,
		Image:        "/images/robotic-hand-red-white-schematic.jpeg",
		DetailImage:  "/images/robotic-hand-red-white-schematic.jpeg",
		Restricted:   true,
	},
	{
		ID:   "elysiumq",
		Name: "ElysiumQ",
		Description: "Implements a hybrid system combining classical and quantum computing techniques to solve " +
			"large-scale linear systems of equations, potentially linking to HHL algorithm research.",
		LongDescription: "ElysiumQ is a sophisticated hybrid computing system that leverages both classical and " +
			"quantum resources to solve large-scale linear systems of equations. Building on research related to " +
			"the HHL (Harrow-Hassidim-Lloyd) algorithm, the system determines which parts of a problem are best " +
			"suited for quantum processing and which should remain on classical hardware, creating an optimal " +
			"workflow that maximizes the advantages of both computing paradigms.",
		Technologies: []string{"Hybrid Quantum-Classical Computing", "HHL Algorithm", "Linear Systems", "Quantum Circuit Optimization", "Matrix Decomposition"},
		Category:     CategoryQuantum,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/ElysiumQ",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-white-navy.jpeg",
		DetailImage:  "/images/robotic-hand-white-navy.jpeg",
	},

	{
		ID:   "neural-net-car",
		Name: "Neural Net Car",
		Description: "A self-driving car model using neural networks, trainable entirely within a web browser " +
			"environment, offering an accessible platform for research and development in autonomous driving.",
		LongDescription: "Neural Net Car provides an accessible platform for experimenting with autonomous " +
			"driving algorithms through a browser-based simulation environment. Users can train neural networks " +
			"to navigate various driving scenarios, adjust parameters in real-time, and visualize the learning " +
			"process. The system is designed to be educational while still implementing sophisticated machine " +
			"learning techniques that mirror real-world autonomous driving challenges.",
		Technologies: []string{"Neural Networks", "Browser-based Simulation", "TensorFlow.js", "Reinforcement Learning", "Computer Vision"},
		Category:     CategorySystem,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/neural-net-car",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-red-white-cloth.jpeg",
		DetailImage:  "/images/robotic-hand-red-white-cloth.jpeg",
	},
	{
		ID:          "shanks",
		Name:        "Shanks",
		Description: "Automates open-source contributions with ease.",
		LongDescription: "Shanks is a productivity tool designed to streamline the process of contributing to " +
			"open-source projects. It automates repetitive tasks such as fork creation, branch management, code " +
			"formatting, and pull request submission. The system also includes features for identifying suitable " +
			"projects based on user skills and interests, making open-source contribution more accessible to " +
			"developers at all experience levels.",
		Technologies: []string{"Git Automation", "GitHub API", "CI/CD Integration", "Code Analysis", "Pull Request Management"},
		Category:     CategorySystem,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/SHANKS",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-red-white-fingers.jpeg",
		DetailImage:  "/images/robotic-hand-red-white-fingers.jpeg",
	},
	{
		ID:   "cicd-pipeline",
		Name: "CICD-Pipeline",
		Description: "A scratch build-up of a functional CI/CD pipeline using GitHub Actions for integration and " +
			"deployment.",
		LongDescription: "CICD-Pipeline is a comprehensive continuous integration and deployment solution built " +
			"from scratch using GitHub Actions. The system includes modules for automated testing, code quality " +
			"analysis, security scanning, build optimization, and deployment to various environments. It's " +
			"designed to be highly configurable while maintaining simplicity for teams of all sizes.",
		Technologies: []string{"GitHub Actions", "Docker", "Kubernetes", "Infrastructure as Code", "Test Automation"},
		Category:     CategorySystem,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/CICD-pipeline",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-red-white-close.jpeg",
		DetailImage:  "/images/robotic-hand-red-white-close.jpeg",
	},
	{
		ID:   "grpc-beta",
		Name: "gRPC beta",
		Description: "A beta yet functional gRPC server designed using Node.js for system requirements to work on " +
			"protocol designs.",
		LongDescription: "gRPC beta is a functional server implementation using Node.js that serves as a testbed " +
			"for protocol design and optimization. The system implements the gRPC framework for efficient remote " +
			"procedure calls, with a focus on performance benchmarking, error handling, and compatibility " +
			"testing. It includes tools for generating client libraries in multiple languages and comprehensive " +
			"documentation for API consumers.",
		Technologies: []string{"gRPC", "Node.js", "Protocol Buffers", "API Design", "Microservices"},
		Category:     CategorySystem,
		Source:       sourceUser,
		SourceURL:    "https://github.com/hakikat011/gRPC-server-beta",
		SourceDomain: "GitHub",
		Image:        "/images/robotic-hand-red-white-tech.jpeg",
		DetailImage:  "/images/robotic-hand-red-white-tech.jpeg",
	},
}
