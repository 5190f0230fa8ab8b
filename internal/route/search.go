package route

import (
	"context"
	"sort"

	"startrade/internal/config"
	"startrade/internal/tradedb"
)

// Search drives the hop expander for cfg.Hops layers starting from
// origin, returning every surviving route sorted best-first. When a layer
// finds no reachable, profitable continuation, the search stops there and
// returns the routes of the last layer that produced any; if the first
// layer produces none, Search returns an empty slice with a nil error.
func Search(ctx context.Context, adapter tradedb.Adapter, cfg *config.SearchConfig, origin string) ([]Route, error) {
	if cfg.Capacity == 0 {
		return nil, ErrZeroCapacity
	}
	if cfg.Credits < 0 {
		return nil, ErrNegativeCredits
	}

	routes := []Route{{Stations: []string{origin}}}

	for layer := 0; layer < cfg.Hops; layer++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := Expand(ctx, adapter, cfg, routes, "")
		if err != nil {
			return nil, err
		}
		if len(next) == 0 {
			break
		}
		routes = next

		if cfg.TopK > 0 && len(routes) > cfg.TopK {
			sort.Slice(routes, func(i, j int) bool { return Less(routes[i], routes[j]) })
			routes = routes[:cfg.TopK]
		}
	}

	sort.Slice(routes, func(i, j int) bool { return Less(routes[i], routes[j]) })

	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		if len(r.Hops) > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

// RouteTo re-derives the best route from routes (a prior layer's
// surviving set) to a single named destination station, by running one
// more expansion restricted to that station. Used when a caller already
// has an intermediate frontier and wants the final leg to one place
// rather than the whole fanned-out search.
func RouteTo(ctx context.Context, adapter tradedb.Adapter, cfg *config.SearchConfig, routes []Route, destStation string) (Route, bool, error) {
	next, err := Expand(ctx, adapter, cfg, routes, destStation)
	if err != nil {
		return Route{}, false, err
	}
	if len(next) == 0 {
		return Route{}, false, nil
	}
	best := next[0]
	for _, r := range next[1:] {
		if Less(r, best) {
			best = r
		}
	}
	return best, true, nil
}
