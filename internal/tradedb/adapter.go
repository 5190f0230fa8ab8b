// Package tradedb defines the read-only trade database adapter contract
// the route search engine consumes, plus a couple of concrete
// implementations used for tests: an in-memory fixture adapter and a
// SQLite-backed fixture loader built on top of it. The real commodity/
// station database loader is an external collaborator and is not part of
// this module.
package tradedb

import (
	"context"

	"startrade/internal/model"
)

// Adapter is the read-only view of stations, their trade offers per
// destination, and reachability that the search engine requires.
type Adapter interface {
	// LoadStationTrades ensures the outgoing trade map is populated for
	// each given station. Implementations should be safe to call with
	// stations that are already populated (a no-op for those).
	LoadStationTrades(ctx context.Context, stationIDs []string) error

	// Station returns the station record for id, including its
	// TradingWith map if LoadStationTrades has been called for it.
	Station(id string) (model.Station, bool)

	// GetDestinations yields destination candidates reachable from src
	// within maxJumps jumps, where each individual jump is at most
	// maxLyPer lightyears, excluding any system or station named in
	// avoidPlaces. When tradingOnly is true, only stations with at
	// least one outgoing trade are returned.
	GetDestinations(
		ctx context.Context,
		src string,
		maxJumps int,
		maxLyPer float64,
		avoidPlaces map[string]bool,
		tradingOnly bool,
	) ([]model.DestinationCandidate, error)
}
