// Package content holds the static copy rendered on the Innov8X site.
//
// Every accessor returns a fresh copy so callers can never mutate the
// reference data shared between requests.
package content

// NavLink is a navigation target in the site header.
type NavLink struct {
	Label string
	Href  string
}

// About describes the event in the About section.
type About struct {
	Title       string
	Description string
	Highlights  []string
}

// EventTrack is one of the competition tracks shown in the Events section.
type EventTrack struct {
	Icon        string
	Title       string
	Description string
}

// ScheduleEntry is one day of the event schedule.
type ScheduleEntry struct {
	Day      string
	Title    string
	Schedule string
}

// SponsorTier is a named sponsorship package shown on the sponsor page.
type SponsorTier struct {
	Name     string
	Icon     string
	Price    string
	Gradient string
	Benefits []string
}

// Hero is the landing page headline block.
type Hero struct {
	Title    string
	Tagline  string
	Subtitle string
}

var navLinks = []NavLink{
	{Label: "About", Href: "/#about"},
	{Label: "Events", Href: "/#events"},
	{Label: "Schedule", Href: "/#schedule"},
	{Label: "Prizes", Href: "/#prizes"},
}

var hero = Hero{
	Title:    "Innov8X V1",
	Tagline:  "Create. Design. Hack.",
	Subtitle: "Join us for 30 hours of coding, creativity, and innovation. Build something amazing and win big!",
}

var about = About{
	Title: "About Innov8X",
	Description: "Innov8X is a 30-hour, offline event that brings together young innovators from high schools " +
		"and colleges for an exciting challenge to solve real-world problems using technology, creativity, " +
		"and teamwork. Organized by the KMEA Computer Science Department, the event includes three tracks: " +
		"Hackathon, Ideathon, and Designathon. Innov8X is more than a competition. It is an opportunity to " +
		"network, learn, and build solutions that have a lasting impact on society.",
	Highlights: []string{
		"1500+ students engaged",
		"300+ participants",
		"Expert mentorship and workshops",
		"Cash prizes, internship offers, and more!",
	},
}

var eventTracks = []EventTrack{
	{
		Icon:  "code",
		Title: "Hackathon",
		Description: "A hackathon is a collaborative event where participants work together to create " +
			"innovative solutions or projects, typically within 24-30 hours.",
	},
	{
		Icon:  "lightbulb",
		Title: "Ideathon",
		Description: "An ideathon is a creative event where participants brainstorm and pitch innovative " +
			"ideas to solve specific challenges in a limited time.",
	},
	{
		Icon:  "brush",
		Title: "Designathon",
		Description: "A designathon is a focused event where participants collaborate to create design-based " +
			"solutions, turning ideas into prototypes within a set timeframe.",
	},
}

var schedule = []ScheduleEntry{
	{
		Day:      "Day 1",
		Title:    "Kickoff and Team Formation",
		Schedule: "9:00 AM - Opening Ceremony, 10:00 AM - Hacking Begins",
	},
	{
		Day:      "Day 2",
		Title:    "Hacking Continues",
		Schedule: "All Day - Coding, Workshops, and Mentorship Sessions",
	},
	{
		Day:      "Day 3",
		Title:    "Project Submission and Judging",
		Schedule: "12:00 PM - Submission Deadline, 2:00 PM - Presentations, 5:00 PM - Awards Ceremony",
	},
}

var sponsorTiers = []SponsorTier{
	{
		Name:     "Diamond",
		Icon:     "diamond",
		Price:    "$10,000",
		Gradient: "from-blue-400 to-blue-600",
		Benefits: []string{
			"Prime logo placement on all event materials",
			"VIP booth at the event",
			"5-minute keynote speech opportunity",
			"Access to participants' resumes",
			"Social media shoutouts",
			"10 free tickets for your team",
		},
	},
	{
		Name:     "Gold",
		Icon:     "award",
		Price:    "$5,000",
		Gradient: "from-yellow-400 to-yellow-600",
		Benefits: []string{
			"Logo on event website and materials",
			"Booth at the event",
			"3-minute pitch opportunity",
			"Social media mentions",
			"5 free tickets for your team",
		},
	},
	{
		Name:     "Silver",
		Icon:     "medal",
		Price:    "$2,500",
		Gradient: "from-gray-300 to-gray-500",
		Benefits: []string{
			"Logo on event website",
			"Small booth at the event",
			"Social media mention",
			"3 free tickets for your team",
		},
	},
	{
		Name:     "Bronze",
		Icon:     "star",
		Price:    "$1,000",
		Gradient: "from-orange-400 to-orange-600",
		Benefits: []string{
			"Logo on event website",
			"1 free ticket for your team",
		},
	},
}

// NavLinks returns the header navigation links.
func NavLinks() []NavLink {
	return append([]NavLink(nil), navLinks...)
}

// HeroBlock returns the landing page headline.
func HeroBlock() Hero {
	return hero
}

// AboutSection returns the About section copy.
func AboutSection() About {
	a := about
	a.Highlights = append([]string(nil), about.Highlights...)
	return a
}

// EventTracks returns the competition tracks.
func EventTracks() []EventTrack {
	return append([]EventTrack(nil), eventTracks...)
}

// Schedule returns the day-by-day schedule.
func Schedule() []ScheduleEntry {
	return append([]ScheduleEntry(nil), schedule...)
}

// SponsorTiers returns the sponsorship packages, highest tier first.
func SponsorTiers() []SponsorTier {
	tiers := make([]SponsorTier, len(sponsorTiers))
	for i, tier := range sponsorTiers {
		tiers[i] = tier
		tiers[i].Benefits = append([]string(nil), tier.Benefits...)
	}
	return tiers
}

// FindSponsorTier returns the tier with the given name.
func FindSponsorTier(name string) (SponsorTier, bool) {
	for _, tier := range SponsorTiers() {
		if tier.Name == name {
			return tier, true
		}
	}
	return SponsorTier{}, false
}
