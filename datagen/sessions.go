package datagen

import (
	"math/rand"
	"time"

	"github.com/Amar3x3/seoAgent/config"
	"github.com/Amar3x3/seoAgent/models"
)

const (
	bounceRate     = 0.65
	conversionRate = 0.20

	hitTimeLayout = "2006-01-02T15:04:05"
)

var (
	deviceCategories = []string{"mobile", "desktop", "tablet"}
	browsers         = []string{"Chrome", "Safari", "Firefox", "Edge"}
	operatingSystems = []string{"Android", "iOS", "Windows", "MacOS"}
	referrerDomains  = []string{"youtube.com", "facebook.com"}
)

// Sessions simulates independent user visits: a per-day session count in
// [MinSessionsPerDay, MaxSessionsPerDay], each session with its own
// traffic source, browsing path, and bounce decision. Sessions never
// reference each other.
func (g *Generator) Sessions() []models.SessionRow {
	rng := g.rng(sessionsSeedOffset)

	var rows []models.SessionRow
	for day := 0; day < g.cfg.NumDays; day++ {
		date := g.partitionDate(day)
		dayStart := g.cfg.StartDate.AddDate(0, 0, day)
		count := randBetween(rng, g.cfg.MinSessionsPerDay, g.cfg.MaxSessionsPerDay)

		for i := 0; i < count; i++ {
			rows = append(rows, g.simulateSession(rng, date, dayStart))
		}
	}
	return rows
}

func (g *Generator) simulateSession(rng *rand.Rand, date string, dayStart time.Time) models.SessionRow {
	start := dayStart.Add(time.Duration(randBetween(rng, 0, 86399)) * time.Second)
	userID := newID(rng)
	sessionID := newID(rng)

	source, medium := g.rollTrafficSource(rng)

	// The first hit is always the landing page view at the session start.
	landing := g.cfg.Pages[rng.Intn(len(g.cfg.Pages))]
	hits := []models.Hit{pageHit(1, start, landing, g.cfg.Hostname)}

	isBounce := rng.Float64() < bounceRate
	var timeOnSite int

	if !isBounce {
		lastHitTime := start
		extra := randBetween(rng, 1, 4)
		for n := 0; n < extra; n++ {
			lastHitTime = lastHitTime.Add(time.Duration(randBetween(rng, 30, 120)) * time.Second)
			page := g.cfg.Pages[rng.Intn(len(g.cfg.Pages))]
			hits = append(hits, pageHit(len(hits)+1, lastHitTime, page, g.cfg.Hostname))
		}

		if rng.Float64() < conversionRate {
			lastHitTime = lastHitTime.Add(time.Duration(randBetween(rng, 10, 30)) * time.Second)
			hits = append(hits, models.Hit{
				HitNumber: len(hits) + 1,
				HitTime:   lastHitTime.Format(hitTimeLayout),
				Type:      models.HitTypeEvent,
				Event: &models.EventInfo{
					EventCategory: "Conversion",
					EventAction:   "Request Appointment",
					EventLabel:    "Ortho Page",
				},
			})
		}

		timeOnSite = int(lastHitTime.Sub(start).Seconds())
	} else {
		// Bounce dwell time is drawn independently of the hit timestamps.
		// The inconsistency with engaged sessions is intentional demo
		// behavior backing the "low engagement" narrative.
		timeOnSite = randBetween(rng, 5, 45)
	}

	pageviews := 0
	for _, h := range hits {
		if h.Type == models.HitTypePage {
			pageviews++
		}
	}
	bounces := 0
	if isBounce {
		bounces = 1
	}

	return models.SessionRow{
		PartitionDate:    date,
		SessionID:        sessionID,
		UserID:           userID,
		SessionStartTime: start,
		DeviceCategory:   choose(rng, deviceCategories),
		Browser:          choose(rng, browsers),
		OperatingSystem:  choose(rng, operatingSystems),
		Geo: models.SessionGeo{
			Country: g.cfg.CountryName,
			Region:  g.cfg.Region,
			City:    choose(rng, g.cfg.Cities),
		},
		TrafficSource: models.TrafficSource{
			Source:   source,
			Medium:   medium,
			Campaign: "(not set)",
		},
		Totals: models.SessionTotals{
			Pageviews:         pageviews,
			TimeOnSiteSeconds: timeOnSite,
			Bounces:           bounces,
		},
		Hits: hits,
	}
}

// rollTrafficSource draws the acquisition channel: 60% organic search,
// 20% direct, 10% referral, 10% paid search.
func (g *Generator) rollTrafficSource(rng *rand.Rand) (source, medium string) {
	roll := rng.Float64()
	switch {
	case roll < 0.6:
		return "google", "organic"
	case roll < 0.8:
		return "(direct)", "(none)"
	case roll < 0.9:
		return choose(rng, referrerDomains), "referral"
	default:
		return "google", "cpc"
	}
}

func pageHit(number int, at time.Time, page config.PageEntry, hostname string) models.Hit {
	return models.Hit{
		HitNumber: number,
		HitTime:   at.Format(hitTimeLayout),
		Type:      models.HitTypePage,
		Page: &models.PageInfo{
			PagePath:  page.Path,
			PageTitle: page.Title,
			Hostname:  hostname,
		},
	}
}
