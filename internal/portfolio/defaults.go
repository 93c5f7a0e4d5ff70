package portfolio

// Default returns a fresh copy of the built-in document shown until the
// owner saves their own content.
func Default() Data {
	return defaultData.Clone()
}

var defaultData = Data{
	Hero: Hero{
		Name:        "Zach Kordas-Potter",
		Tagline:     "Software Developer • Open to Opportunities",
		Company:     "Target",
		Description: "B.S. in Computer Science • Building terminal tools, web apps and everything in between with Go, HTMX and a healthy curiosity for how things work.",
		GithubURL:   "https://github.com/Zachkp",
		LinkedinURL: "https://www.linkedin.com/in/zachkp",
		Email:       "zachkordaspotter@gmail.com",
	},
	About: About{
		Bio: []string{
			"I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes.",
			"Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a different language, experimenting with tools, or solving tricky problems.",
			"When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends, or chasing down a new challenge outside the screen.",
		},
		Languages: []string{"English (Native)"},
	},
	Values: []Value{
		{Title: "Curiosity", Description: "Digging into how tools work under the hood before reaching for the next one."},
		{Title: "Simplicity", Description: "Small, readable programs that do one job well."},
		{Title: "Ownership", Description: "Seeing work through from the first idea to the last bug."},
		{Title: "Reliability", Description: "Shipping on tight timelines without cutting corners."},
	},
	Certifications: []Certification{
		{Name: "Project+", Issuer: "CompTIA"},
		{Name: "Bachelor of Computer Science", Issuer: "Western Governors University"},
	},
	Projects: []Project{
		{
			Title:       "Terminal Mail",
			Description: "A terminal-based email client built in Go with fuzzyfinder capabilities using the Charmbracelet TUI framework and go-imap.",
			Icon:        "📬",
			Tags:        []string{"Go", "Bubble Tea", "IMAP"},
			LiveURL:     "#",
			GithubURL:   "https://github.com/Zachkp",
			Featured:    true,
			Type:        "Personal",
			Highlights:  []string{"Fuzzy search", "Keyboard driven", "IMAP sync"},
		},
		{
			Title:       "Terminal Music",
			Description: "A terminal-based music streaming application built in Go with an elegant TUI interface, leveraging yt-dlp and mpv for YouTube Music playback directly from the command line.",
			Icon:        "🎧",
			Tags:        []string{"Go", "TUI", "mpv", "yt-dlp"},
			LiveURL:     "#",
			GithubURL:   "https://github.com/Zachkp",
			Featured:    true,
			Type:        "Personal",
			Highlights:  []string{"Streaming playback", "Queue management", "TUI"},
		},
		{
			Title:       "Game Recommender",
			Description: "A machine learning web application that uses TF-IDF vectorization and cosine similarity to recommend games based on content analysis, with interactive data visualizations and filtering by reviews and ratings.",
			Icon:        "🎮",
			Tags:        []string{"Python", "scikit-learn", "TF-IDF"},
			LiveURL:     "#",
			GithubURL:   "https://github.com/Zachkp",
			Featured:    false,
			Type:        "Academic",
			Highlights:  []string{"Content-based filtering", "Data visualization"},
		},
		{
			Title:       "Portfolio Website",
			Description: "A responsive portfolio website built with Go, Gin and HTMX, styled with Tailwind CSS, with a self-hosted content editor.",
			Icon:        "🌐",
			Tags:        []string{"Go", "Gin", "HTMX", "Tailwind CSS"},
			LiveURL:     "#",
			GithubURL:   "https://github.com/Zachkp",
			Featured:    false,
			Type:        "Personal",
			Highlights:  []string{"Server rendered", "Content editor", "SQLite"},
		},
	},
	Skills: Skills{
		Frontend: []Skill{
			{Name: "HTMX", Level: 85},
			{Name: "HTML/CSS", Level: 85},
			{Name: "Tailwind CSS", Level: 80},
			{Name: "JavaScript", Level: 70},
		},
		Backend: []Skill{
			{Name: "Go", Level: 90},
			{Name: "Python", Level: 75},
			{Name: "SQL", Level: 75},
			{Name: "Git", Level: 85},
		},
		Experience: []Experience{
			{
				Title:       "Presentation Expert",
				Company:     "Target",
				Period:      "Aug 2023 - Present",
				Description: "Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities.",
			},
			{
				Title:       "Manager",
				Company:     "Jasons Catered Events",
				Period:      "Aug 2016 - Present",
				Description: "Coordinated customized menus, supported event technology and kept supply inventory moving between venues.",
			},
		},
		Education: []Education{
			{
				Degree:      "Bachelor of Computer Science",
				Institution: "Western Governors University",
				Period:      "Sept 2019 - May 2023",
				Grade:       "3.8 GPA, Magna Cum Laude",
			},
			{
				Degree:      "Project Management",
				Institution: "CompTIA",
				Period:      "July 2022 - Present",
				Grade:       "Certified",
			},
		},
	},
	Testimonials: []Testimonial{
		{
			Name:     "Sarah Johnson",
			Role:     "Team Lead",
			Initials: "SJ",
			Rating:   5,
			Content:  "Zach keeps a team organised under pressure and always finds the simplest way to get the job done.",
		},
		{
			Name:     "Michael Chen",
			Role:     "Event Coordinator",
			Initials: "MC",
			Rating:   5,
			Content:  "Whenever the AV setup broke down, Zach had it fixed before the guests noticed.",
		},
	},
	Stats: []Stat{
		{Value: "10+", Label: "Projects Completed"},
		{Value: "300+", Label: "Transitions Delivered"},
		{Value: "5+", Label: "Years Experience"},
		{Value: "3.8", Label: "GPA"},
	},
	Contact: Contact{
		Email:    "zachkordaspotter@gmail.com",
		Location: "Remote",
		Github:   "github.com/Zachkp",
		Linkedin: "Zach Kordas-Potter",
	},
}
