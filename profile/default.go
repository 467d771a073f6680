package profile

// Default profile
func Default() Profile {
	return Profile{
		Title: "Hi! I'm @JoshPaulie",
		Intro: "I'm a computer science student currently working in special education, " +
			"hoping to shift gears to something more programming related.",
		Sections: []Section{
			{
				Title: "Skills",
				Badges: []Badge{
					{Label: "Python (Fanatic)", Icon: "Python", IconColor: "Yellow"},
					{Label: "Pycord (Bot Framework)", Icon: "Discord", IconColor: "Blue"},
					{Label: "Git", IconColor: "Peach"},
					{Label: "Flask", IconColor: "Green"},
					{Label: "Linux", IconColor: "Teal"},
					{Label: "Bash/Zsh scripting, automation", Icon: "GNUBash", IconColor: "Flamingo"},
					{Label: "PowerShell", IconColor: "Rosewater"},
					{Label: "JavaScript", IconColor: "Yellow"},
					{Label: "C++", IconColor: "Sapphire"},
				},
			},
			{
				Title: "Interests",
				Badges: []Badge{
					{Label: "After Effects", Icon: "Adobe After Effects", IconColor: "Lavender"},
					{Label: "Premiere Pro", Icon: "Adobe Premiere Pro", IconColor: "Mauve"},
					{Label: "Illustrator", Icon: "Adobe Illustrator", IconColor: "Peach"},
					{Label: "Blender", IconColor: "Peach"},
					{Label: "Raspberry Pi", IconColor: "Red"},
				},
			},
			{
				Title: "I'm for hire!",
				Paragraphs: []string{
					"Proficient (and fixated) with Python. " +
						"Avaliable for intership opprotunities or full-time remote work.",
				},
				Contacts: []Link{
					{Text: "LinkedIn", URL: "https://www.linkedin.com/in/joshua-lee-88a8a5154"},
					{Text: "Twitter", URL: "https://twitter.com/itsbexli"},
				},
			},
		},
	}
}
