package route

import (
	"context"

	"startrade/internal/config"
	"startrade/internal/model"
	"startrade/internal/tradedb"
)

// Expand tries every reachable next hop from each route's current
// station and keeps only the single best continuation per destination
// station across the whole batch: if two routes can both reach the same
// destination, the one with the higher cumulative score survives and the
// other is dropped outright, since continuing the dominated one can
// never catch up (tradecalc.py's getBestHops bestToDest map).
//
// restrictTo, when non-empty, limits expansion to routes ending at that
// one destination station (used to re-derive a single named route for
// display rather than a whole search).
func Expand(ctx context.Context, adapter tradedb.Adapter, cfg *config.SearchConfig, routes []Route, restrictTo string) ([]Route, error) {
	if len(routes) == 0 {
		return nil, nil
	}

	srcs := make([]string, 0, len(routes))
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		src := r.Current()
		if !seen[src] {
			seen[src] = true
			srcs = append(srcs, src)
		}
	}
	if err := adapter.LoadStationTrades(ctx, srcs); err != nil {
		return nil, err
	}

	bestToDest := make(map[string]Route)

	for _, r := range routes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src := r.Current()
		station, ok := adapter.Station(src)
		if !ok {
			continue
		}

		// The budget available for this hop projects the route's banked
		// gain through the safety margin rather than compounding actual
		// cash; the original search budget stays the anchor for every
		// hop, same as tradecalc.py's Route.startCr.
		startCr := cfg.Credits + int64(float64(r.GainCr)*(1-cfg.Margin)) - cfg.Insurance
		if startCr < 0 {
			startCr = 0
		}

		destinations, err := adapter.GetDestinations(ctx, src, cfg.MaxJumpsPer, cfg.MaxLyPer, cfg.AvoidPlaces, true)
		if err != nil {
			return nil, err
		}

		for _, dst := range destinations {
			if restrictTo != "" && dst.Station != restrictTo {
				continue
			}
			if cfg.Unique && r.Visited(dst.Station) {
				continue
			}
			offers := station.TradingWith[dst.Station]
			if len(offers) == 0 {
				continue
			}

			load, err := BestTrade(offers, cfg.AvoidItems, cfg.MaxAgeDays, startCr, cfg.Capacity, cfg.EffectiveLimit())
			if err != nil {
				return nil, err
			}
			if load.IsEmpty() {
				continue
			}

			dstStation, _ := adapter.Station(dst.Station)
			hop := model.TradeHop{
				DstSystem:  dst.System,
				DstStation: dst.Station,
				Load:       load,
				GainCr:     load.GainCr,
				Score:      Score(load.GainCr, dstStation.LsFromStar, cfg.LsPenaltyPercent),
				Jumps:      dst.Via,
				Ly:         dst.DistanceLy,
			}
			candidate := r.Extend(hop, dst.Station)

			// Per-destination tie-break uses the arriving hop's ly, not
			// jump count (that's Less's job for the final route sort):
			// prefer the higher total score, and on equal totals prefer
			// the shorter last-hop distance.
			if existing, ok := bestToDest[dst.Station]; ok {
				if candidate.Score < existing.Score {
					continue
				}
				if candidate.Score == existing.Score && existing.Hops[len(existing.Hops)-1].Ly <= hop.Ly {
					continue
				}
			}
			bestToDest[dst.Station] = candidate
		}
	}

	out := make([]Route, 0, len(bestToDest))
	for _, r := range bestToDest {
		out = append(out, r)
	}
	return out, nil
}
