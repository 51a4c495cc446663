package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGeneratorIsValid(t *testing.T) {
	cfg := DefaultGenerator()
	require.NoError(t, cfg.Validate())

	// The planted low-CTR query must exist in the catalog for the demo
	// narrative to work.
	queries := make([]string, 0, len(cfg.Queries))
	for _, q := range cfg.Queries {
		queries = append(queries, q.Query)
	}
	assert.Contains(t, queries, "shoulder surgery recovery time")
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	base := DefaultGenerator()

	tests := []struct {
		name   string
		mutate func(*Generator)
	}{
		{"zero days", func(g *Generator) { g.NumDays = 0 }},
		{"missing start date", func(g *Generator) { g.StartDate = time.Time{} }},
		{"missing hostname", func(g *Generator) { g.Hostname = "" }},
		{"empty query catalog", func(g *Generator) { g.Queries = nil }},
		{"empty video catalog", func(g *Generator) { g.Videos = nil }},
		{"empty page catalog", func(g *Generator) { g.Pages = nil }},
		{"no cities", func(g *Generator) { g.Cities = nil }},
		{"avg view exceeds duration", func(g *Generator) {
			g.Videos = []VideoEntry{{ID: "v1", Title: "t", DurationSec: 60, AvgViewSec: 61}}
		}},
		{"non-positive duration", func(g *Generator) {
			g.Videos = []VideoEntry{{ID: "v1", Title: "t", DurationSec: 0, AvgViewSec: 0}}
		}},
		{"inverted sessions range", func(g *Generator) {
			g.MinSessionsPerDay = 100
			g.MaxSessionsPerDay = 50
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
