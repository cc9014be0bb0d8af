package config

import (
	"time"

	"event_finder/internal/domain/value"
)

type Grid struct {
	MinX           int           `env:"GRID_MIN_X" envDefault:"-10"`
	MaxX           int           `env:"GRID_MAX_X" envDefault:"10"`
	MinY           int           `env:"GRID_MIN_Y" envDefault:"-10"`
	MaxY           int           `env:"GRID_MAX_Y" envDefault:"10"`
	SeedEvents     int           `env:"GRID_SEED_EVENTS" envDefault:"25"`
	SearchLimit    int           `env:"GRID_SEARCH_LIMIT" envDefault:"5"`
	LegacyRange    bool          `env:"GRID_LEGACY_RANGE" envDefault:"false"`
	SearchCacheTTL time.Duration `env:"GRID_SEARCH_CACHE_TTL" envDefault:"1m"`
}

func (g Grid) Bounds() value.Bounds {
	return value.Bounds{
		MinX: g.MinX,
		MaxX: g.MaxX,
		MinY: g.MinY,
		MaxY: g.MaxY,
	}
}
