package tradedb

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"startrade/internal/graph"
	"startrade/internal/logger"
	"startrade/internal/model"
)

// maxConcurrentStationLoads bounds how many stations LoadStationTrades
// populates at once.
const maxConcurrentStationLoads = 8

// StationFixture is the static description of one station used to seed a
// MemoryAdapter: identity, parent system, distance to star, and the full
// set of outgoing trades (dst station ID -> offers), unsorted.
type StationFixture struct {
	ID         string
	System     string
	LsFromStar int64
	Trades     map[string][]model.Offer
}

// MemoryAdapter is a reference, in-memory implementation of Adapter. It
// holds the full fixture in memory but only exposes a station's
// TradingWith map once LoadStationTrades has been called for it, so the
// lazily-populated mapping behaves the same as a real backing store.
type MemoryAdapter struct {
	universe *graph.Universe

	mu             sync.RWMutex
	stationSystem  map[string]string
	systemStations map[string][]string
	lsFromStar     map[string]int64
	trades         map[string]map[string][]model.Offer // source of truth, keyed by source station ID
	loaded         map[string]bool

	group singleflight.Group
	sem   *semaphore.Weighted
}

// NewMemoryAdapter builds a MemoryAdapter over a reachability graph and a
// set of station fixtures. Offers are sorted by GainCr descending (ties
// broken by CostCr ascending) once, at construction, so callers never pay
// the sort cost per search and every caller can rely on that ordering
// holding from the start.
func NewMemoryAdapter(universe *graph.Universe, fixtures []StationFixture) *MemoryAdapter {
	a := &MemoryAdapter{
		universe:       universe,
		stationSystem:  make(map[string]string, len(fixtures)),
		systemStations: make(map[string][]string),
		lsFromStar:     make(map[string]int64, len(fixtures)),
		trades:         make(map[string]map[string][]model.Offer, len(fixtures)),
		loaded:         make(map[string]bool, len(fixtures)),
		sem:            semaphore.NewWeighted(maxConcurrentStationLoads),
	}
	for _, f := range fixtures {
		a.stationSystem[f.ID] = f.System
		a.systemStations[f.System] = append(a.systemStations[f.System], f.ID)
		a.lsFromStar[f.ID] = f.LsFromStar

		byDst := make(map[string][]model.Offer, len(f.Trades))
		for dst, offers := range f.Trades {
			sorted := make([]model.Offer, len(offers))
			copy(sorted, offers)
			sort.SliceStable(sorted, func(i, j int) bool {
				if sorted[i].GainCr != sorted[j].GainCr {
					return sorted[i].GainCr > sorted[j].GainCr
				}
				return sorted[i].CostCr < sorted[j].CostCr
			})
			byDst[dst] = sorted
		}
		a.trades[f.ID] = byDst
	}
	for sys := range a.systemStations {
		sort.Strings(a.systemStations[sys])
	}
	return a
}

// LoadStationTrades populates the TradingWith map for each station ID,
// fanning out with a bounded semaphore and coalescing duplicate concurrent
// loads of the same station via singleflight, so concurrent callers
// requesting the same station only pay the load cost once.
func (a *MemoryAdapter) LoadStationTrades(ctx context.Context, stationIDs []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range stationIDs {
		id := id
		g.Go(func() error {
			if err := a.sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer a.sem.Release(1)

			_, err, _ := a.group.Do(id, func() (interface{}, error) {
				a.mu.Lock()
				defer a.mu.Unlock()
				if _, ok := a.stationSystem[id]; !ok {
					return nil, fmt.Errorf("tradedb: unknown station %q", id)
				}
				a.loaded[id] = true
				return nil, nil
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load station trades: %w", err)
	}
	logger.Stats("stations loaded", int64(len(stationIDs)))
	return nil
}

// Station implements Adapter.
func (a *MemoryAdapter) Station(id string) (model.Station, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	system, ok := a.stationSystem[id]
	if !ok {
		return model.Station{}, false
	}
	st := model.Station{
		ID:         id,
		System:     system,
		LsFromStar: a.lsFromStar[id],
	}
	if a.loaded[id] {
		st.TradingWith = a.trades[id]
	}
	return st, true
}

// GetDestinations implements Adapter.
func (a *MemoryAdapter) GetDestinations(
	_ context.Context,
	src string,
	maxJumps int,
	maxLyPer float64,
	avoidPlaces map[string]bool,
	tradingOnly bool,
) ([]model.DestinationCandidate, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	srcSystem, ok := a.stationSystem[src]
	if !ok {
		return nil, fmt.Errorf("tradedb: unknown source station %q", src)
	}

	reachable := a.universe.Destinations(srcSystem, maxJumps, maxLyPer, avoidPlaces)

	systems := make([]string, 0, len(reachable))
	for sys := range reachable {
		if avoidPlaces[sys] {
			continue
		}
		systems = append(systems, sys)
	}
	sort.Strings(systems)

	var out []model.DestinationCandidate
	for _, sys := range systems {
		r := reachable[sys]
		stationIDs := append([]string(nil), a.systemStations[sys]...)
		for _, stID := range stationIDs {
			if stID == src {
				continue
			}
			if avoidPlaces[stID] {
				continue
			}
			if tradingOnly && !a.hasOutgoingTrades(stID) {
				continue
			}
			out = append(out, model.DestinationCandidate{
				System:     sys,
				Station:    stID,
				DistanceLy: r.LY,
				Via:        r.Via,
			})
		}
	}
	return out, nil
}

// hasOutgoingTrades reports whether a station sells anything onward to
// any destination, regardless of whether that destination's data has
// been loaded yet. Must be called with a.mu held.
func (a *MemoryAdapter) hasOutgoingTrades(stationID string) bool {
	for _, offers := range a.trades[stationID] {
		if len(offers) > 0 {
			return true
		}
	}
	return false
}

// NextFixtureID is a small helper for callers assembling synthetic station
// fixtures in tests, producing a stable, readable station id.
func NextFixtureID(system string, seq int) string {
	return system + "-" + strconv.Itoa(seq)
}
