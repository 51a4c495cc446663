// Package datagen fabricates the three demo analytics datasets: search
// console performance, video analytics, and web sessions. Every row is an
// independent draw from a fixed generative model parameterized by the
// catalogs in config.Generator, so any row's invariants can be checked in
// isolation and a seeded run is fully reproducible.
package datagen

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Amar3x3/seoAgent/config"
	"github.com/Amar3x3/seoAgent/models"
)

// Seed offsets so each pass gets its own independent stream. The passes
// share no state beyond the catalogs, so each can run in isolation (or in
// parallel) and still reproduce the same table for a given seed.
const (
	gscSeedOffset      = 0
	youtubeSeedOffset  = 1
	sessionsSeedOffset = 2
)

// Generator produces the synthetic datasets for one configuration and
// seed. It is safe to call each pass repeatedly; results are identical.
type Generator struct {
	cfg  config.Generator
	seed int64
}

// Dataset is the output of one full generation run.
type Dataset struct {
	GSC      []models.GSCRow
	YouTube  []models.YouTubeRow
	Sessions []models.SessionRow
}

// New validates the configuration and returns a Generator.
func New(cfg config.Generator, seed int64) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	return &Generator{cfg: cfg, seed: seed}, nil
}

// Generate runs all three passes and returns the assembled dataset.
func (g *Generator) Generate() Dataset {
	log.Printf("Generating %d days of synthetic data (seed=%d)...", g.cfg.NumDays, g.seed)

	ds := Dataset{
		GSC:      g.GSCRows(),
		YouTube:  g.YouTubeRows(),
		Sessions: g.Sessions(),
	}

	log.Printf("Generated %d GSC rows, %d YouTube rows, %d sessions.",
		len(ds.GSC), len(ds.YouTube), len(ds.Sessions))
	return ds
}

func (g *Generator) rng(offset int64) *rand.Rand {
	return rand.New(rand.NewSource(g.seed + offset))
}

// randBetween draws uniformly from [lo, hi] inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// normal draws from a normal distribution with the given mean and stddev.
func normal(rng *rand.Rand, mean, stddev float64) float64 {
	return rng.NormFloat64()*stddev + mean
}

// choose picks one element uniformly.
func choose(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// newID draws a UUID from the generator's own random stream so that a
// seeded run produces identical identifiers.
func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// rand.Rand.Read cannot fail.
		panic(fmt.Sprintf("uuid from seeded reader: %v", err))
	}
	return id.String()
}

// partitionDate formats day N of the run as the calendar date the rows
// are attributed to.
func (g *Generator) partitionDate(day int) string {
	return g.cfg.StartDate.AddDate(0, 0, day).Format("2006-01-02")
}
