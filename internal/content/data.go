package content

const (
	linkedInURL = "https://www.linkedin.com/in/priyanka-malavade-b34677298/"
	gitHubURL   = "https://github.com/priyanka7411"
)

var (
	AboutIntro = `A results-driven Data Analyst with a passion for transforming complex datasets into strategic business insights.
	I specialize in data visualization, predictive analytics, and crafting clear, data-driven stories that empower business decision-makers.`

	HeroText = `I'm passionate about transforming raw data into meaningful insights that drive impactful business decisions.
	With a keen eye for detail and a love for visualization, I specialize in analyzing complex datasets,
	uncovering trends, and turning numbers into compelling stories.`
)

// Default is the portfolio as published.
var Default = Data{
	Profile: Profile{
		Name:      "Priyanka Malavade",
		Headline:  "Data Analyst | Business Intelligence | Data Storyteller",
		Tagline:   HeroText,
		Intro:     AboutIntro,
		Email:     "priyasmalavade@gmail.com",
		Location:  "Bangalore, India",
		Remote:    "Open to remote opportunities",
		LinkedIn:  linkedInURL,
		GitHub:    gitHubURL,
		Twitter:   "https://twitter.com/",
		Statement: `"I transform numbers into narratives and data into decisions - bridging the gap between raw information and strategic business value."`,
	},

	Glance: []string{
		"5+ Data Projects Completed",
		"3 Professional Certifications",
		"Proficient in Python, SQL, Power BI, and Data Visualization",
	},

	NavCards: []NavCard{
		{Section: "about", Title: "About", Description: "My background & skills", Accent: "#e3f2fd"},
		{Section: "projects", Title: "Projects", Description: "Data analysis work samples", Accent: "#e8f5e9"},
		{Section: "certifications", Title: "Certifications", Description: "My qualifications", Accent: "#fff8e1"},
		{Section: "contact", Title: "Contact", Description: "Let's connect!", Accent: "#f3e5f5"},
	},

	Highlights: []string{
		"1+ Years in Data Analytics & BI",
		"Certified in Power BI, SQL & Data Science",
		"5+ Projects & Predictive Models",
		"Communicates insights clearly to all stakeholders",
	},

	Summary: []string{
		"1+ years of hands-on experience in data analysis and business intelligence",
		"Certified in Power BI, SQL and Data Science from GUVI",
		"Developed 5+ end-to-end data projects including dashboards and predictive models",
		"Strong foundation in statistics, data mining and machine learning concepts",
		"Excellent at communicating insights to both technical and non-technical stakeholders",
	},

	Education: []Education{
		{
			Degree:      "Bachelor of Computer Applications (BCA)",
			Institution: "Oxford College of Computer Applications",
			Period:      "2021–2024",
			Score:       "CGPA: 9.03/10",
			Focus:       "Relevant Coursework: DBMS, Statistics, Data Structures, Business Analytics",
			Accent:      "#f0f7ff",
		},
		{
			Degree:      "Pre-University (PUC)",
			Institution: "MES Chaitanya PU College",
			Score:       "Percentage: 76%",
			Focus:       "Focus: Mathematics & Computer Science",
			Accent:      "#f5f0ff",
		},
	},

	SkillGroups: []SkillGroup{
		{
			Title:  "Data Analysis",
			Items:  []string{"Python (Pandas, NumPy)", "SQL (Advanced)", "R Programming", "Statistics"},
			Accent: "#e3f2fd",
		},
		{
			Title:  "Visualization",
			Items:  []string{"Power BI (Certified)", "Tableau", "Matplotlib/Seaborn", "Plotly"},
			Accent: "#e8f5e9",
		},
		{
			Title:  "Tools & Platforms",
			Items:  []string{"Excel (Advanced)", "Google BigQuery", "Jupyter Notebooks", "Git/GitHub"},
			Accent: "#fff8e1",
		},
	},

	SkillLevels: []SkillLevel{
		{Name: "Python (Pandas, NumPy)", Percent: 85},
		{Name: "Power BI", Percent: 90},
		{Name: "SQL", Percent: 80},
		{Name: "Tableau", Percent: 75},
		{Name: "Excel", Percent: 95},
		{Name: "Statistics", Percent: 85},
	},

	Projects: []Project{
		{
			Title:       "Audible Insights: Book Recommendation Engine",
			Description: "Developed an intelligent recommendation system for audiobooks using machine learning techniques",
			Features: []string{
				"Used clustering algorithms to group similar books",
				"Implemented sentiment analysis on user reviews",
				"Created personalized recommendations based on user preferences",
			},
			TechStack: "Python Pandas Scikit-learn NLTK Streamlit AWS",
			Links: []Link{
				{Label: "Live Demo", URL: "http://51.20.135.71:8501/"},
				{Label: "GitHub Repo", URL: "https://github.com/priyanka7411/audible-book-recommendations"},
			},
			Accent: "#e3f2fd",
		},
		{
			Title:       "DataSpark: Retail Analytics Dashboard",
			Description: "Comprehensive sales analytics dashboard for global electronics retailer",
			Features: []string{
				"Identified top-selling products and underperforming categories",
				"Created time-series forecasts for inventory planning",
				"Developed interactive regional performance maps",
			},
			TechStack: "Power BI SQL Python DAX Azure Data Studio",
			Links: []Link{
				{Label: "View Dashboard", URL: "#"},
				{Label: "GitHub Repo", URL: "https://github.com/priyanka7411/DataSpark-Electronics-Retail-Analytics"},
			},
			Accent: "#e8f5e9",
		},
		{
			Title:       "Emotion Detection: AI Web App",
			Description: "Real-time emotion classification from facial images using deep learning",
			Features: []string{
				"Built CNN model using Keras with TensorFlow backend",
				"Deployed as a web app with Streamlit",
				"Used OpenCV for real-time webcam image capture",
			},
			TechStack: "Python TensorFlow/Keras OpenCV Streamlit",
			Links: []Link{
				{Label: "GitHub Repo", URL: "https://github.com/priyanka7411/Emotion-Detection-App"},
			},
			Accent: "#fff8e1",
		},
		{
			Title:       "E-commerce Sales Analysis",
			Description: "Analyzed Superstore dataset to uncover business trends and opportunities",
			Features: []string{
				"Performed data cleaning and EDA using Pandas & Seaborn",
				"Uncovered sales insights by segment, region, and category",
				"Built clear visuals for storytelling and decision-making",
			},
			TechStack: "Python Pandas Seaborn Matplotlib",
			Links: []Link{
				{Label: "GitHub Repo", URL: "https://github.com/priyanka7411/E-commerce-Sales-Analysis"},
			},
			Accent: "#f3e5f5",
		},
		{
			Title:       "Redbus Data Scraping App",
			Description: "Web app that scrapes live Redbus data and visualizes insights",
			Features: []string{
				"Scraped bus names, routes, prices using BeautifulSoup & requests",
				"Filtered and analyzed pricing trends across cities",
				"Built a simple, interactive Streamlit dashboard",
			},
			TechStack: "Python BeautifulSoup Pandas Streamlit",
			Links: []Link{
				{Label: "GitHub Repo", URL: "https://github.com/priyanka7411/Redbus-Data-Scraping-Streamlit"},
			},
			Accent: "#ede7f6",
		},
	},

	Certifications: []Certification{
		{
			Title:        "Microsoft Power BI Certification",
			Issuer:       "GUVI Geek Networks",
			Date:         "November 2024",
			CredentialID: "3470Pp3b34EgN461dX",
			VerifyURL:    "https://www.guvi.in/verify-certificate?id=3470Pp3b34EgN461dX",
			Skills:       "Data Visualization, DAX, Power Query, Dashboard Creation",
			Accent:       "#e3f2fd",
		},
		{
			Title:        "Oracle SQL Certification",
			Issuer:       "GUVI Geek Networks",
			Date:         "November 2024",
			CredentialID: "VGl3Tw3s79o90W5318",
			VerifyURL:    "https://www.guvi.in/verify-certificate?id=VGl3Tw3s79o90W5318",
			Skills:       "Database Management, Query Optimization, SQL Joins",
			Accent:       "#e8f5e9",
		},
		{
			Title:        "Master Data Science Program",
			Issuer:       "GUVI Geek Networks",
			Date:         "January 2025",
			CredentialID: "27m16KL0e48v560SFY",
			VerifyURL:    "https://www.guvi.in/verify-certificate?id=27m16KL0e48v560SFY",
			Skills:       "Machine Learning, Python, Statistical Analysis",
			Accent:       "#fff8e1",
		},
	},

	Pursuing: []string{"Tableau", "Advanced SQL", "Google Data Analytics"},

	ResumeHighlights: []string{
		"1-page professional format optimized for ATS systems",
		"Includes all contact information and portfolio links",
		"Updated with latest projects and certifications",
	},

	ContactLinks: []ContactLink{
		{Label: "LinkedIn", URL: linkedInURL},
		{Label: "GitHub", URL: gitHubURL},
	},
}
