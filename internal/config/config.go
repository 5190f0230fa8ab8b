// Package config defines the explicit search configuration record,
// replacing dynamic attribute lookup with a struct whose every option is
// set at construction and never accessed by name string.
package config

// SearchConfig holds every user-recognized search option.
type SearchConfig struct {
	Credits   int64   // starting budget, credits
	Insurance int64   // reserved credits never spent
	Capacity  int64   // total cargo capacity in units
	Limit     int64   // maximum units of a single commodity (0 -> use Capacity)
	Margin    float64 // safety fraction applied to projected gains, in [0,1)
	Unique    bool    // reject routes that revisit a station

	MaxJumpsPer int     // jump cap per hop
	MaxLyPer    float64 // single-jump distance cap in lightyears
	MaxAgeDays  int64   // price freshness cap, days (0 -> disabled)

	LsPenaltyPercent float64 // station-distance penalty, percent (0 disables)

	AvoidItems  map[string]bool // commodities excluded from trading
	AvoidPlaces map[string]bool // systems/stations excluded from the destination set

	Hops int // number of expansion layers H
	TopK int // optional global filter: keep top-K routes per layer (0 -> unbounded)
}

// Default returns a SearchConfig with sensible defaults, matching the
// teacher's config.Default() shape: a usable starting point a caller
// overrides field-by-field rather than looking options up by name.
func Default() *SearchConfig {
	return &SearchConfig{
		Credits:          10_000,
		Insurance:        0,
		Capacity:         4,
		Limit:            0,
		Margin:           0.01,
		Unique:           true,
		MaxJumpsPer:      2,
		MaxLyPer:         20,
		MaxAgeDays:       0,
		LsPenaltyPercent: 0,
		AvoidItems:       map[string]bool{},
		AvoidPlaces:      map[string]bool{},
		Hops:             2,
		TopK:             0,
	}
}

// EffectiveLimit returns Limit if set, else Capacity — the per-commodity
// quantity cap the load solver uses.
func (c *SearchConfig) EffectiveLimit() int64 {
	if c.Limit > 0 {
		return c.Limit
	}
	return c.Capacity
}
