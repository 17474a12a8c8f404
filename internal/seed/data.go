package seed

import "github.com/aurelia-studio/site-core/internal/models"

var blogPosts = []models.BlogModel{
	{
		Title:    "The Future of Tokenomics: Beyond Simple Staking",
		Excerpt:  "Exploring how next-generation token models are moving beyond basic staking mechanisms to create more sustainable and engaging economic systems. We analyze ve-tokenomics, real yield models, and dynamic emission schedules that are reshaping DeFi.",
		Category: "Tokenomics",
		Date:     "2026-01-02",
		ReadTime: "8 min read",
		Slug:     "future-of-tokenomics",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "Building Sustainable DeFi Protocols",
		Excerpt:  "A deep dive into the economic principles that separate successful DeFi protocols from those that fail to maintain long-term growth. Examining liquidity bootstrapping, incentive alignment, and treasury management strategies.",
		Category: "DeFi",
		Date:     "2025-12-18",
		ReadTime: "12 min read",
		Slug:     "sustainable-defi",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "Go-to-Market Strategies for Web3 Products",
		Excerpt:  "How to successfully launch a Web3 product in a crowded market: lessons learned from 50+ protocol launches. Covers community building, influencer partnerships, and timing your TGE for maximum impact.",
		Category: "Strategy",
		Date:     "2025-12-05",
		ReadTime: "10 min read",
		Slug:     "gtm-web3",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "The Role of Governance in Protocol Success",
		Excerpt:  "Why governance design matters more than ever, and how to build systems that enable meaningful community participation. From token-weighted voting to quadratic mechanisms and delegation frameworks.",
		Category: "Governance",
		Date:     "2025-11-22",
		ReadTime: "7 min read",
		Slug:     "governance-success",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "Token Vesting Strategies That Work",
		Excerpt:  "Analyzing vesting schedules that align long-term incentives while maintaining market confidence and team retention. Includes case studies from successful L1s, DeFi protocols, and gaming projects.",
		Category: "Tokenomics",
		Date:     "2025-11-10",
		ReadTime: "9 min read",
		Slug:     "token-vesting",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "Building Strategic Partnerships in Web3",
		Excerpt:  "A framework for identifying, approaching, and closing partnerships that create genuine value for all parties. Learn the art of ecosystem alignment and co-marketing in decentralized environments.",
		Category: "Business Development",
		Date:     "2025-10-28",
		ReadTime: "11 min read",
		Slug:     "strategic-partnerships",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "Navigating Bear Markets: A Protocol Survival Guide",
		Excerpt:  "Strategies for maintaining runway, community engagement, and development momentum during market downturns. How the best protocols use bear markets to build competitive advantages.",
		Category: "Strategy",
		Date:     "2025-10-15",
		ReadTime: "14 min read",
		Slug:     "bear-market-survival",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "The Economics of Layer 2 Scaling Solutions",
		Excerpt:  "Breaking down the tokenomics and value capture mechanisms of rollups, validiums, and other L2 architectures. Understanding sequencer revenue, MEV distribution, and sustainable fee models.",
		Category: "Infrastructure",
		Date:     "2025-10-01",
		ReadTime: "16 min read",
		Slug:     "l2-economics",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "Community-First Product Development",
		Excerpt:  "How to leverage your community as a competitive moat while building products that genuinely serve user needs. Implementing feedback loops, governance proposals, and contributor incentives.",
		Category: "Product",
		Date:     "2025-09-18",
		ReadTime: "8 min read",
		Slug:     "community-first-product",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "VC Relations in Web3: A Founder's Playbook",
		Excerpt:  "Navigating the unique dynamics of crypto fundraising, from seed rounds to strategic token sales. Building relationships with the right investors who add value beyond capital.",
		Category: "Fundraising",
		Date:     "2025-09-05",
		ReadTime: "13 min read",
		Slug:     "vc-relations-web3",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "Designing Incentive-Compatible NFT Economies",
		Excerpt:  "Beyond floor prices: creating NFT ecosystems with genuine utility, sustainable royalties, and aligned stakeholder incentives. Lessons from gaming, identity, and membership applications.",
		Category: "NFTs",
		Date:     "2025-08-22",
		ReadTime: "10 min read",
		Slug:     "nft-economies",
		Status:   models.BlogStatusPublished,
	},
	{
		Title:    "Cross-Chain Expansion: When and How to Go Multi-Chain",
		Excerpt:  "The strategic calculus behind deploying on additional chains. Evaluating ecosystem fit, liquidity fragmentation risks, and the operational complexity of multi-chain protocols.",
		Category: "Infrastructure",
		Date:     "2025-08-08",
		ReadTime: "12 min read",
		Slug:     "cross-chain-expansion",
		Status:   models.BlogStatusPublished,
	},
}

var portfolioProjects = []models.PortfolioProjectModel{
	{
		Title:       "DeFi Protocol Launch",
		Category:    "Tokenomics",
		Metric:      "$42M TVL",
		Description: "Designed comprehensive tokenomics for a lending protocol, including incentive mechanisms and governance structure. Achieved $42M TVL within 3 months of launch.",
		Slug:        "defi-protocol",
		Year:        "2024",
	},
	{
		Title:       "NFT Marketplace GTM",
		Category:    "Go-to-Market",
		Metric:      "180K Users",
		Description: "Led go-to-market strategy for a creator-focused NFT marketplace. Developed influencer partnerships and community programs resulting in 180K users in Q1.",
		Slug:        "nft-marketplace",
		Year:        "2024",
	},
	{
		Title:       "L2 Ecosystem Growth",
		Category:    "Business Development",
		Metric:      "+340%",
		Description: "Expanded ecosystem partnerships for a Layer 2 solution, driving 340% growth in developer activity and onboarding 50+ new protocols.",
		Slug:        "l2-ecosystem",
		Year:        "2023",
	},
	{
		Title:       "DAO Governance Design",
		Category:    "Product Strategy",
		Metric:      "95% Pass Rate",
		Description: "Architected governance framework for a major DAO, achieving 95% proposal pass rate and 3x increase in voter participation.",
		Slug:        "dao-governance",
		Year:        "2023",
	},
	{
		Title:       "Token Migration",
		Category:    "Tokenomics",
		Metric:      "99.7% Migration",
		Description: "Managed token migration and economic restructuring for a protocol upgrade, achieving 99.7% successful migration rate.",
		Slug:        "token-migration",
		Year:        "2023",
	},
	{
		Title:       "Cross-Chain Bridge",
		Category:    "Product Strategy",
		Metric:      "$120M Volume",
		Description: "Product strategy and launch for a cross-chain bridge, reaching $120M in monthly volume within 6 months.",
		Slug:        "cross-chain-bridge",
		Year:        "2022",
	},
}

var serviceOfferings = []models.ServiceModel{
	{
		Title:       "Tokenomics Design",
		Description: "Comprehensive token economic models that align incentives, drive adoption, and maximize long-term value.",
		Features: models.StringArray{
			"Token supply and distribution modeling",
			"Incentive mechanism design",
			"Vesting schedule optimization",
			"Staking and rewards architecture",
			"Economic simulation and stress testing",
			"Governance framework design",
		},
		Price: "From $15,000",
		Icon:  "Coins",
	},
	{
		Title:       "Go-to-Market Strategy",
		Description: "Strategic launch planning and execution to maximize adoption and market penetration.",
		Features: models.StringArray{
			"Market positioning and messaging",
			"Launch timeline and milestones",
			"Community building strategy",
			"Influencer and KOL partnerships",
			"Exchange listing strategy",
			"Marketing campaign architecture",
		},
		Price: "From $12,000",
		Icon:  "Rocket",
	},
	{
		Title:       "Product Strategy",
		Description: "End-to-end product vision and roadmap development for protocols and dApps.",
		Features: models.StringArray{
			"Product vision and positioning",
			"Feature prioritization framework",
			"User research and personas",
			"Competitive analysis",
			"Roadmap development",
			"KPI definition and tracking",
		},
		Price: "From $10,000",
		Icon:  "BarChart3",
	},
	{
		Title:       "Business Development",
		Description: "Strategic partnership cultivation and ecosystem growth across the Web3 landscape.",
		Features: models.StringArray{
			"Partnership strategy development",
			"Ecosystem mapping and targeting",
			"Integration facilitation",
			"Strategic alliance negotiation",
			"Cross-protocol collaboration",
			"Investor relations support",
		},
		Price: "From $8,000",
		Icon:  "Users",
	},
}

var valueProps = []models.ValuePropModel{
	{
		Title:       "Data-Driven",
		Description: "Every strategic decision is backed by rigorous analysis and market research.",
		OrderIndex:  1,
	},
	{
		Title:       "Results-Focused",
		Description: "Success is measured by tangible outcomes: TVL, user growth, and sustainable tokenomics.",
		OrderIndex:  2,
	},
	{
		Title:       "Ecosystem Thinking",
		Description: "Building interconnected value across protocols, partners, and communities.",
		OrderIndex:  3,
	},
	{
		Title:       "Long-Term Vision",
		Description: "Designing systems that compound value over years, not just quarters.",
		OrderIndex:  4,
	},
}
