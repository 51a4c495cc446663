package datagen

import (
	"math/rand"

	"github.com/Amar3x3/seoAgent/models"
)

var (
	ytAgeGroups      = []string{"25-34", "35-44", "45-54", "55-64"}
	ytGenders        = []string{"MALE", "FEMALE"}
	ytDeviceTypes    = []string{"MOBILE", "DESKTOP", "TABLET"}
	ytTrafficSources = []string{"YT_SEARCH", "YT_RELATED", "SUBSCRIBER", "EXT_URL"}
)

// Per-metric engagement rates applied to views (mean, stddev).
const (
	likeRateMean, likeRateStddev           = 0.02, 0.005
	shareRateMean, shareRateStddev         = 0.005, 0.002
	commentRateMean, commentRateStddev     = 0.002, 0.001
	subscribeRateMean, subscribeRateStddev = 0.001, 0.0005
)

// YouTubeRows emits one analytics row per (day, video). The demographic,
// device, and traffic-source fields are resampled independently per row.
// Watch time never exceeds potential watch time because the catalog
// guarantees avg view seconds <= duration seconds.
func (g *Generator) YouTubeRows() []models.YouTubeRow {
	rng := g.rng(youtubeSeedOffset)

	rows := make([]models.YouTubeRow, 0, g.cfg.NumDays*len(g.cfg.Videos))
	for day := 0; day < g.cfg.NumDays; day++ {
		date := g.partitionDate(day)
		for _, video := range g.cfg.Videos {
			views := int64(randBetween(rng, 50, 1500))

			rows = append(rows, models.YouTubeRow{
				PartitionDate:          date,
				ExternalVideoID:        video.ID,
				VideoTitle:             video.Title,
				CountryCode:            g.cfg.CountryCode,
				AgeGroup:               choose(rng, ytAgeGroups),
				Gender:                 choose(rng, ytGenders),
				DeviceType:             choose(rng, ytDeviceTypes),
				TrafficSourceType:      choose(rng, ytTrafficSources),
				Views:                  views,
				WatchTimeMsec:          views * int64(video.AvgViewSec) * 1000,
				PotentialWatchTimeMsec: views * int64(video.DurationSec) * 1000,
				LikesAdded:             engagementCount(rng, views, likeRateMean, likeRateStddev),
				Shares:                 engagementCount(rng, views, shareRateMean, shareRateStddev),
				CommentsAdded:          engagementCount(rng, views, commentRateMean, commentRateStddev),
				SubscribersGained:      engagementCount(rng, views, subscribeRateMean, subscribeRateStddev),
			})
		}
	}
	return rows
}

// engagementCount derives a count as views x noisy rate. The normal tail
// can go negative for the low-mean metrics; counts are floored at zero
// since a negative like count is not representable downstream.
func engagementCount(rng *rand.Rand, views int64, mean, stddev float64) int64 {
	n := int64(float64(views) * normal(rng, mean, stddev))
	if n < 0 {
		return 0
	}
	return n
}
