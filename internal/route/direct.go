package route

import (
	"context"

	"startrade/internal/config"
	"startrade/internal/model"
	"startrade/internal/tradedb"
)

// DirectTrade finds the best single-hop trade from src to dst, mirroring
// tradecalc.py's top-level getBestTrade entry point for a single named
// destination rather than a full multi-hop search. It returns ErrNoLink
// if src has no recorded offer to dst at all.
func DirectTrade(ctx context.Context, adapter tradedb.Adapter, cfg *config.SearchConfig, src, dst string) (model.TradeLoad, error) {
	if err := adapter.LoadStationTrades(ctx, []string{src}); err != nil {
		return model.TradeLoad{}, err
	}
	station, ok := adapter.Station(src)
	if !ok {
		return model.TradeLoad{}, ErrNoLink
	}
	offers, ok := station.TradingWith[dst]
	if !ok || len(offers) == 0 {
		return model.TradeLoad{}, ErrNoLink
	}
	return BestTrade(offers, cfg.AvoidItems, cfg.MaxAgeDays, cfg.Credits, cfg.Capacity, cfg.EffectiveLimit())
}
