package route

import "startrade/internal/model"

// Route is an immutable value record of a multi-hop trade path: the
// stations visited in order, the hop that reached each one, and the
// running economics the hop expander needs to seed the next hop's
// budget. There is no method-based ordering (no operator overloading) —
// callers compare two routes with Less.
type Route struct {
	Stations []string // visited station IDs, Stations[0] is the origin
	Hops     []model.TradeHop
	GainCr   int64 // cumulative raw profit across all hops
	Score    int64 // cumulative scored gain across all hops
	Jumps    int   // cumulative jump count across all hops
}

// Current returns the station the route currently sits at.
func (r Route) Current() string {
	return r.Stations[len(r.Stations)-1]
}

// Visited reports whether station has already been visited by this route.
func (r Route) Visited(station string) bool {
	for _, s := range r.Stations {
		if s == station {
			return true
		}
	}
	return false
}

// Extend returns a new Route formed by appending hop, arriving at
// dstStation. The original route is left untouched.
func (r Route) Extend(hop model.TradeHop, dstStation string) Route {
	stations := make([]string, len(r.Stations)+1)
	copy(stations, r.Stations)
	stations[len(r.Stations)] = dstStation

	hops := make([]model.TradeHop, len(r.Hops)+1)
	copy(hops, r.Hops)
	hops[len(r.Hops)] = hop

	jumps := 0
	if n := len(hop.Jumps); n > 1 {
		jumps = n - 1
	}

	return Route{
		Stations: stations,
		Hops:     hops,
		GainCr:   r.GainCr + hop.GainCr,
		Score:    r.Score + hop.Score,
		Jumps:    r.Jumps + jumps,
	}
}

// Less reports whether a should sort before b: higher cumulative score
// wins; equal scores are broken by fewer total jumps.
func Less(a, b Route) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Jumps < b.Jumps
}
