package datagen

import (
	"fmt"
	"math"
	"strings"

	"github.com/Amar3x3/seoAgent/models"
)

// The demo narrative needs one visibly underperforming query for the
// assistant to find, so this exact query draws from a much lower CTR
// distribution than everything else.
const lowCTRQuery = "shoulder surgery recovery time"

// GSCRows emits one search performance row per (day, query, device).
// Queries containing "best" are treated as higher-intent: more
// impressions and a better average position.
func (g *Generator) GSCRows() []models.GSCRow {
	rng := g.rng(gscSeedOffset)
	devices := []string{models.DeviceMobile, models.DeviceDesktop}

	rows := make([]models.GSCRow, 0, g.cfg.NumDays*len(g.cfg.Queries)*len(devices))
	for day := 0; day < g.cfg.NumDays; day++ {
		date := g.partitionDate(day)
		for _, entry := range g.cfg.Queries {
			highIntent := strings.Contains(entry.Query, "best")
			for _, device := range devices {
				var impressions int64
				if highIntent {
					impressions = int64(randBetween(rng, 500, 10000))
				} else {
					impressions = int64(randBetween(rng, 50, 8000))
				}

				var ctr float64
				if entry.Query == lowCTRQuery {
					ctr = normal(rng, 0.005, 0.001)
				} else {
					ctr = normal(rng, 0.08, 0.03)
				}
				// Floored at zero, but deliberately not clamped to
				// impressions: the CTR tail can push clicks past
				// impressions on rare rows.
				clicks := int64(float64(impressions) * ctr)
				if clicks < 0 {
					clicks = 0
				}

				var avgPosition float64
				if highIntent {
					avgPosition = normal(rng, 3.5, 1.5)
				} else {
					avgPosition = normal(rng, 8, 4)
				}
				sumPosition := int64(math.Round(avgPosition * float64(impressions)))

				rows = append(rows, models.GSCRow{
					PartitionDate: date,
					Query:         entry.Query,
					PageURL:       fmt.Sprintf("https://%s%s", g.cfg.Hostname, entry.Page),
					Country:       g.cfg.CountryCode,
					Device:        device,
					Clicks:        clicks,
					Impressions:   impressions,
					SumPosition:   sumPosition,
				})
			}
		}
	}
	return rows
}
