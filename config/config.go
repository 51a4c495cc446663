package config

import (
	"fmt"
	"time"
)

// QueryEntry maps a search query to its canonical landing page path.
type QueryEntry struct {
	Query string
	Page  string
}

// VideoEntry describes one catalog video. AvgViewSec must not exceed
// DurationSec; Validate enforces this so that generated watch time can
// never exceed potential watch time.
type VideoEntry struct {
	ID          string
	Title       string
	DurationSec int
	AvgViewSec  int
}

// PageEntry maps a page path to its title.
type PageEntry struct {
	Path  string
	Title string
}

// Generator holds every parameter of a synthetic data run. It is built
// once, validated, and treated as read-only afterwards; the catalogs are
// ordered slices so that a seeded run is fully reproducible.
type Generator struct {
	NumDays   int
	StartDate time.Time
	Hostname  string

	CountryCode string
	CountryName string
	Region      string
	PrimaryCity string
	// Cities the geo dimension is drawn from; the primary city should be first.
	Cities []string

	Queries []QueryEntry
	Videos  []VideoEntry
	Pages   []PageEntry

	MinSessionsPerDay int
	MaxSessionsPerDay int
}

// DefaultGenerator returns the demo configuration: a Chennai hospital
// site with fixed query, video, and page catalogs.
func DefaultGenerator() Generator {
	return Generator{
		NumDays:     90,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Hostname:    "www.apollohospitals.com",
		CountryCode: "IN",
		CountryName: "India",
		Region:      "Tamil Nadu",
		PrimaryCity: "Chennai",
		Cities:      []string{"Chennai", "Coimbatore", "Madurai"},
		Queries: []QueryEntry{
			{Query: "knee pain", Page: "/blog/knee-pain-causes-and-treatments/"},
			{Query: "best orthopedic surgeon in chennai", Page: "/chennai/centres-of-excellence/orthopedics/"},
			{Query: "hip replacement options", Page: "/chennai/centres-of-excellence/orthopedics/hip-replacement"},
			{Query: "sports injury clinic chennai", Page: "/chennai/centres-of-excellence/orthopedics/sports-medicine"},
			{Query: "shoulder surgery recovery time", Page: "/blog/shoulder-surgery-recovery-guide/"},
			{Query: "apollo chennai appointment", Page: "/chennai/patients/appointments"},
			{Query: "best cardiologist in chennai", Page: "/chennai/centres-of-excellence/cardiology/"},
			{Query: "heart attack symptoms", Page: "/blog/understanding-heart-attack-symptoms/"},
			{Query: "maternity packages chennai", Page: "/chennai/centres-of-excellence/maternity/packages"},
		},
		Videos: []VideoEntry{
			{ID: "yt_apollo_ortho_team_01", Title: "Meet Our Orthopedic Team - Apollo Chennai", DurationSec: 180, AvgViewSec: 30},
			{ID: "yt_apollo_cardio_proc_02", Title: "What to Expect During an Angioplasty", DurationSec: 240, AvgViewSec: 90},
			{ID: "yt_apollo_maternity_tour_03", Title: "Virtual Tour of Apollo Maternity Ward Chennai", DurationSec: 210, AvgViewSec: 120},
		},
		Pages: []PageEntry{
			{Path: "/", Title: "Homepage | Apollo Hospitals"},
			{Path: "/chennai/centres-of-excellence/orthopedics/", Title: "Best Orthopedic Hospital in Chennai | Apollo"},
			{Path: "/blog/knee-pain-causes-and-treatments/", Title: "Knee Pain Causes & Treatments"},
			{Path: "/doctors/chennai/dr-aravind-kumar", Title: "Dr. Aravind Kumar - Orthopedic Surgeon"},
			{Path: "/chennai/patients/appointments", Title: "Book an Appointment | Apollo Chennai"},
			{Path: "/chennai/centres-of-excellence/cardiology/", Title: "Best Cardiology Hospital in Chennai | Apollo"},
			{Path: "/blog/understanding-heart-attack-symptoms/", Title: "Understanding Heart Attack Symptoms"},
			{Path: "/chennai/centres-of-excellence/maternity/packages", Title: "Maternity Packages at Apollo Chennai"},
		},
		MinSessionsPerDay: 200,
		MaxSessionsPerDay: 1000,
	}
}

// Validate checks the configuration invariants the generators rely on.
func (g Generator) Validate() error {
	if g.NumDays <= 0 {
		return fmt.Errorf("num days must be positive, got %d", g.NumDays)
	}
	if g.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if g.Hostname == "" {
		return fmt.Errorf("hostname is required")
	}
	if len(g.Queries) == 0 || len(g.Videos) == 0 || len(g.Pages) == 0 {
		return fmt.Errorf("query, video, and page catalogs must all be non-empty")
	}
	if len(g.Cities) == 0 {
		return fmt.Errorf("at least one city is required")
	}
	for _, v := range g.Videos {
		if v.DurationSec <= 0 {
			return fmt.Errorf("video %s: duration must be positive", v.ID)
		}
		if v.AvgViewSec > v.DurationSec {
			return fmt.Errorf("video %s: avg view seconds (%d) exceeds duration (%d)", v.ID, v.AvgViewSec, v.DurationSec)
		}
	}
	if g.MinSessionsPerDay <= 0 || g.MaxSessionsPerDay < g.MinSessionsPerDay {
		return fmt.Errorf("invalid sessions-per-day range [%d, %d]", g.MinSessionsPerDay, g.MaxSessionsPerDay)
	}
	return nil
}
