// Package facts holds the aviation trivia shown on the fun facts page.
package facts

import (
	"strings"

	"planes_info/internal/catalog"
)

// CategoryAll selects every fact group
const CategoryAll = "all"

// Group is a titled set of facts in one category
type Group struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Facts    []string `json:"facts"`
}

// Category is one entry of the category filter
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Stat is a headline aviation figure
type Stat struct {
	Number      string `json:"number"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// AircraftFacts are the fun facts of one catalog record
type AircraftFacts struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Facts []string `json:"facts"`
}

var groups = []Group{
	{
		ID:       1,
		Category: "speed",
		Title:    "Speed Records",
		Facts: []string{
			"The SR-71 Blackbird could fly at Mach 3.3 (3,540 km/h) - fast enough to outrun missiles!",
			"The Concorde could cross the Atlantic in just 3.5 hours, while regular jets take 7-8 hours.",
			"The fastest helicopter, the Eurocopter X3, reached 472 km/h in 2013.",
			"The Wright brothers' first flight covered only 120 feet - shorter than a Boeing 747's wingspan!",
		},
	},
	{
		ID:       2,
		Category: "size",
		Title:    "Size Matters",
		Facts: []string{
			"The Airbus A380 is so large that its wingspan (79.8m) is longer than the Wright brothers' first flight distance.",
			"A Boeing 747 can carry enough fuel to fly from New York to Tokyo non-stop.",
			"The Antonov An-225 Mriya is the largest aircraft ever built, with a wingspan of 88.4 meters.",
			"The smallest jet aircraft, the Bede BD-5, has a wingspan of only 4.27 meters.",
		},
	},
	{
		ID:       3,
		Category: "history",
		Title:    "Historical Milestones",
		Facts: []string{
			"The first commercial flight took place in 1914, carrying one passenger across Tampa Bay for $5.",
			"The Boeing 747 was originally designed to carry cargo, with passenger transport as a secondary consideration.",
			"The first supersonic passenger flight was in 1976 with the Concorde.",
			"The first helicopter flight was in 1939, but the concept was first sketched by Leonardo da Vinci in 1480.",
		},
	},
	{
		ID:       4,
		Category: "technology",
		Title:    "Amazing Technology",
		Facts: []string{
			"Modern aircraft can fly for over 20 hours non-stop, covering distances of 15,000+ km.",
			"The F-22 Raptor's radar cross-section is equivalent to a marble.",
			"Some aircraft can land and take off vertically, like the Harrier Jump Jet and F-35B.",
			"The Boeing 787 Dreamliner is made of 50% composite materials, making it lighter and more fuel-efficient.",
		},
	},
	{
		ID:       5,
		Category: "passengers",
		Title:    "Passenger Facts",
		Facts: []string{
			"The Airbus A380 can carry up to 853 passengers in a single-class configuration.",
			"The average commercial flight has about 150 passengers.",
			"The longest commercial flight route is Singapore to New York, covering 15,344 km.",
			"Some private jets can fly higher than commercial airliners, reaching altitudes of 15,000+ meters.",
		},
	},
	{
		ID:       6,
		Category: "military",
		Title:    "Military Aviation",
		Facts: []string{
			"The B-2 Spirit stealth bomber costs $2.1 billion per aircraft.",
			"The F-35 Lightning II is the most expensive weapons program in history.",
			"Some military aircraft can fly at altitudes of 25,000+ meters.",
			"The AC-130 gunship can stay airborne for over 12 hours providing close air support.",
		},
	},
}

var categories = []Category{
	{Value: CategoryAll, Label: "All Facts"},
	{Value: "speed", Label: "Speed"},
	{Value: "size", Label: "Size"},
	{Value: "history", Label: "History"},
	{Value: "technology", Label: "Technology"},
	{Value: "passengers", Label: "Passengers"},
	{Value: "military", Label: "Military"},
}

var stats = []Stat{
	{Number: "100,000+", Label: "Commercial Flights Daily", Description: "Every day, over 100,000 commercial flights take off worldwide"},
	{Number: "4.5 Billion", Label: "Passengers Annually", Description: "The aviation industry carries billions of passengers each year"},
	{Number: "15,000+", Label: "Aircraft Types", Description: "There are thousands of different aircraft models in existence"},
	{Number: "1903", Label: "First Powered Flight", Description: "The Wright brothers made history with the first controlled flight"},
}

// Categories returns the category filter entries, "all" first
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Stats returns the headline figures
func Stats() []Stat {
	out := make([]Stat, len(stats))
	copy(out, stats)
	return out
}

// Groups returns the fact groups of a category.
// "all", the empty string and unknown categories return every group.
func Groups(category string) []Group {
	category = strings.ToLower(strings.TrimSpace(category))
	if !knownCategory(category) || category == CategoryAll {
		out := make([]Group, len(groups))
		copy(out, groups)
		return out
	}

	out := make([]Group, 0, 1)
	for _, g := range groups {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

func knownCategory(c string) bool {
	for _, cat := range categories {
		if cat.Value == c {
			return true
		}
	}
	return false
}

// FromCatalog collects the per-aircraft fun facts in collection order,
// skipping records that have none
func FromCatalog(repo catalog.Reader) []AircraftFacts {
	var out []AircraftFacts
	for _, ac := range repo.All() {
		if len(ac.FunFacts) == 0 {
			continue
		}
		out = append(out, AircraftFacts{ID: ac.ID, Name: ac.Name, Facts: ac.FunFacts})
	}
	return out
}
