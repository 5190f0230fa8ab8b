package tradedb

import (
	"context"
	"testing"

	"startrade/internal/model"
)

func TestSQLiteFixture_RoundTrip(t *testing.T) {
	db, err := OpenSQLiteFixture(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLiteFixture: %v", err)
	}
	defer db.Close()

	if err := db.PutStation("stn-A", "A", 100); err != nil {
		t.Fatalf("PutStation: %v", err)
	}
	if err := db.PutStation("stn-B", "B", 200); err != nil {
		t.Fatalf("PutStation: %v", err)
	}
	offer := model.Offer{ItemID: "widget", CostCr: 100, GainCr: 40, Stock: 50, StockLevel: model.StockMedium}
	if err := db.PutOffer("stn-A", "stn-B", offer); err != nil {
		t.Fatalf("PutOffer: %v", err)
	}

	fixtures, err := db.LoadFixtures()
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("len(fixtures) = %d, want 2", len(fixtures))
	}

	var a *StationFixture
	for i := range fixtures {
		if fixtures[i].ID == "stn-A" {
			a = &fixtures[i]
		}
	}
	if a == nil {
		t.Fatalf("stn-A not found in fixtures: %+v", fixtures)
	}
	offers := a.Trades["stn-B"]
	if len(offers) != 1 || offers[0].ItemID != "widget" || offers[0].GainCr != 40 {
		t.Fatalf("unexpected offers for stn-A -> stn-B: %+v", offers)
	}
}

func TestSQLiteFixture_FeedsMemoryAdapter(t *testing.T) {
	db, err := OpenSQLiteFixture(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLiteFixture: %v", err)
	}
	defer db.Close()

	if err := db.PutStation("stn-A", "A", 0); err != nil {
		t.Fatalf("PutStation: %v", err)
	}
	if err := db.PutStation("stn-B", "B", 0); err != nil {
		t.Fatalf("PutStation: %v", err)
	}
	if err := db.PutOffer("stn-A", "stn-B", model.Offer{ItemID: "widget", CostCr: 10, GainCr: 5, Stock: -1}); err != nil {
		t.Fatalf("PutOffer: %v", err)
	}

	fixtures, err := db.LoadFixtures()
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}

	universe := newTestUniverse()
	adapter := NewMemoryAdapter(universe, fixtures)

	if err := adapter.LoadStationTrades(context.Background(), []string{"stn-A"}); err != nil {
		t.Fatalf("LoadStationTrades: %v", err)
	}
	st, ok := adapter.Station("stn-A")
	if !ok {
		t.Fatalf("expected stn-A to be known")
	}
	if len(st.TradingWith["stn-B"]) != 1 {
		t.Fatalf("expected one offer stn-A -> stn-B, got %+v", st.TradingWith)
	}
}
