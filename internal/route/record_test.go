package route

import (
	"testing"

	"startrade/internal/model"
)

func mkHop(dst string, gainCr, scored int64, jumps []string) model.TradeHop {
	return model.TradeHop{
		DstStation: dst,
		Load:       model.TradeLoad{GainCr: gainCr, Units: 1},
		GainCr:     gainCr,
		Score:      scored,
		Jumps:      jumps,
	}
}

func TestRoute_ExtendAccumulates(t *testing.T) {
	origin := Route{Stations: []string{"A"}}
	hop := mkHop("B", 200, 180, []string{"Sys-A", "Sys-B"})
	next := origin.Extend(hop, "B")

	if next.Current() != "B" {
		t.Fatalf("Current() = %q, want B", next.Current())
	}
	if next.GainCr != 200 {
		t.Fatalf("GainCr = %d, want 200", next.GainCr)
	}
	if next.Score != 180 {
		t.Fatalf("Score = %d, want 180", next.Score)
	}
	if next.Jumps != 1 {
		t.Fatalf("Jumps = %d, want 1", next.Jumps)
	}
	if got := next.Hops[0].GainCr; got != 200 {
		t.Fatalf("Hops[0].GainCr = %d, want 200 (real profit, not the penalized score)", got)
	}
	if got := next.Hops[0].Score; got != 180 {
		t.Fatalf("Hops[0].Score = %d, want 180", got)
	}
	// origin must be untouched
	if len(origin.Stations) != 1 || origin.GainCr != 0 {
		t.Fatalf("origin route mutated: %+v", origin)
	}
}

func TestRoute_Visited(t *testing.T) {
	r := Route{Stations: []string{"A", "B"}}
	if !r.Visited("A") || !r.Visited("B") {
		t.Fatalf("expected A and B visited")
	}
	if r.Visited("C") {
		t.Fatalf("C should not be visited")
	}
}

func TestLess_HigherScoreWins(t *testing.T) {
	a := Route{Score: 500, Jumps: 5}
	b := Route{Score: 400, Jumps: 1}
	if !Less(a, b) {
		t.Fatalf("expected a (higher score) to sort before b")
	}
	if Less(b, a) {
		t.Fatalf("expected b to not sort before a")
	}
}

func TestLess_TieBreaksOnFewerJumps(t *testing.T) {
	a := Route{Score: 500, Jumps: 2}
	b := Route{Score: 500, Jumps: 5}
	if !Less(a, b) {
		t.Fatalf("expected a (fewer jumps, equal score) to sort before b")
	}
}
