package route

import (
	"sort"

	"startrade/internal/model"
)

// speculativeRecoveryExtraUnits is the per-interval restock bonus applied
// to a known stock count above "low" stock level. Left at zero (disabled)
// but the computation's shape — the stock_level guard and the interval
// division — stays in place so re-enabling it is a one-line change.
const speculativeRecoveryExtraUnits = 0

// effectiveStock returns the per-offer stock cap used by q_max: -1 when
// the offer's stock is unknown/unlimited, else the known stock plus the
// (currently zero) speculative-recovery term.
func effectiveStock(o model.Offer) int64 {
	if o.Stock < 0 {
		return -1
	}
	ordinal, applies := o.StockLevel.Divisor()
	if !applies {
		return o.Stock
	}
	intervalSec := int64((30.0 / float64(ordinal)) * 60)
	if intervalSec <= 0 {
		return o.Stock
	}
	recovery := int64(speculativeRecoveryExtraUnits) * (o.SrcAgeSec / intervalSec)
	return o.Stock + recovery
}

// qMax computes the per-offer maximum purchasable quantity: bounded by
// the per-commodity cap, remaining capacity, affordability, and the
// effective stock cap.
func qMax(o model.Offer, capRemaining, crRemaining, maxUnits int64) int64 {
	q := maxUnits
	if capRemaining < q {
		q = capRemaining
	}
	if o.CostCr <= 0 {
		return 0
	}
	if byCredits := crRemaining / o.CostCr; byCredits < q {
		q = byCredits
	}
	if eff := effectiveStock(o); eff >= 0 && eff < q {
		q = eff
	}
	if q < 0 {
		return 0
	}
	return q
}

func singleItemLoad(o model.Offer, qty int64) model.TradeLoad {
	return model.TradeLoad{
		Items:  []model.LoadItem{{Offer: o, Qty: qty}},
		GainCr: qty * o.GainCr,
		CostCr: qty * o.CostCr,
		Units:  qty,
	}
}

func combineLoads(a, b model.TradeLoad) model.TradeLoad {
	items := make([]model.LoadItem, 0, len(a.Items)+len(b.Items))
	items = append(items, b.Items...)
	items = append(items, a.Items...)
	return model.TradeLoad{
		Items:  items,
		GainCr: a.GainCr + b.GainCr,
		CostCr: a.CostCr + b.CostCr,
		Units:  a.Units + b.Units,
	}
}

// loadBetter reports whether a should be preferred over b: higher gain
// wins; ties broken by fewer units, then by lower cost.
func loadBetter(a, b model.TradeLoad) bool {
	if a.GainCr != b.GainCr {
		return a.GainCr > b.GainCr
	}
	if a.Units != b.Units {
		return a.Units < b.Units
	}
	return a.CostCr < b.CostCr
}

// fastFit is the depth-first "take the max of offer i, then recurse on
// the remainder" enumeration, translated from tradecalc.py's
// generator-based _fit_combos into a recursive function that threads the
// best load found so far through the call tree instead of yielding
// candidates for an external selector.
//
// Because every candidate at a given recursion depth fixes offers[i] at
// its full q_max and only the best sub-load of offers[i+1:] can improve
// the combined gain for that choice of i (gain is additive and i's own
// contribution is fixed), recursing on the single best sub-load is
// equivalent to the generator's accept-if-not-worse walk over every
// yielded sub-load — it just skips re-deriving results the walk would
// have discarded anyway.
func fastFit(offers []model.Offer, offset int, credits, capacity, maxUnits int64) model.TradeLoad {
	best := model.TradeLoad{}
	for i := offset; i < len(offers); i++ {
		item := offers[i]
		q := qMax(item, capacity, credits, maxUnits)
		if q <= 0 {
			continue
		}
		candidate := singleItemLoad(item, q)
		crLeft, capLeft := credits-candidate.CostCr, capacity-q
		if crLeft > 0 && capLeft > 0 {
			sub := fastFit(offers, i+1, crLeft, capLeft, maxUnits)
			if sub.Units > 0 {
				candidate = combineLoads(candidate, sub)
			}
		}
		if loadBetter(candidate, best) {
			best = candidate
		}
	}
	return best
}

// bruteForceFit enumerates every include-at-q_max-or-exclude subset of
// offers by full recursion. Provided only to validate fastFit against on
// small inputs.
func bruteForceFit(offers []model.Offer, offset int, credits, capacity, maxUnits int64) model.TradeLoad {
	if offset >= len(offers) {
		return model.TradeLoad{}
	}
	best := bruteForceFit(offers, offset+1, credits, capacity, maxUnits)
	item := offers[offset]
	q := qMax(item, capacity, credits, maxUnits)
	if q > 0 {
		candidate := singleItemLoad(item, q)
		sub := bruteForceFit(offers, offset+1, credits-candidate.CostCr, capacity-q, maxUnits)
		combined := combineLoads(candidate, sub)
		if loadBetter(combined, best) {
			best = combined
		}
	}
	return best
}

// BestLoad is the public entry point for the load solver: it validates
// the configuration invariants, applies the cost/dominance pre-filter,
// takes the fast-path short-circuit when it applies, and otherwise falls
// back to fastFit. offers must already be sorted by GainCr descending
// (ties by CostCr ascending) — this is the adapter's precondition, never
// re-sorted here.
func BestLoad(offers []model.Offer, credits, capacity, maxUnits int64) (model.TradeLoad, error) {
	if capacity == 0 {
		return model.TradeLoad{}, ErrZeroCapacity
	}
	if credits < 0 {
		return model.TradeLoad{}, ErrNegativeCredits
	}
	if maxUnits <= 0 || maxUnits > capacity {
		maxUnits = capacity
	}
	if len(offers) == 0 {
		return model.TradeLoad{}, nil
	}

	filtered := preFilterOffers(offers, credits)
	if len(filtered) == 0 {
		return model.TradeLoad{}, nil
	}

	first := filtered[0]
	if maxUnits >= capacity && first.CostCr*capacity <= credits {
		eff := effectiveStock(first)
		if eff < 0 || eff >= maxUnits {
			return singleItemLoad(first, capacity), nil
		}
	}

	return fastFit(filtered, 0, credits, capacity, maxUnits), nil
}

// preFilterOffers drops offers priced beyond the budget, then drops any
// offer whose gain is no better than the cheapest offer's gain — except
// the cheapest offer itself, which is kept as the floor option. Among
// offers of equal lowest cost, the one with the lowest gain is the floor.
// Order is preserved (offers are already gain-sorted).
func preFilterOffers(offers []model.Offer, credits int64) []model.Offer {
	affordable := make([]model.Offer, 0, len(offers))
	for _, o := range offers {
		if o.CostCr <= credits {
			affordable = append(affordable, o)
		}
	}
	if len(affordable) == 0 {
		return nil
	}

	cheapestIdx := 0
	for i, o := range affordable {
		if o.CostCr <= affordable[cheapestIdx].CostCr {
			cheapestIdx = i
		}
	}
	cheapestGain := affordable[cheapestIdx].GainCr

	out := make([]model.Offer, 0, len(affordable))
	for i, o := range affordable {
		if i == cheapestIdx || o.GainCr > cheapestGain {
			out = append(out, o)
		}
	}
	return out
}

// ApplyFreshnessFilter drops offers whose staler side's age exceeds
// maxAgeDays. maxAgeDays <= 0 disables the filter.
func ApplyFreshnessFilter(offers []model.Offer, maxAgeDays int64) []model.Offer {
	if maxAgeDays <= 0 {
		return offers
	}
	maxAgeSec := maxAgeDays * 86400
	out := make([]model.Offer, 0, len(offers))
	for _, o := range offers {
		age := o.SrcAgeSec
		if o.DstAgeSec > age {
			age = o.DstAgeSec
		}
		if age <= maxAgeSec {
			out = append(out, o)
		}
	}
	return out
}

// ApplyAvoidItemsFilter removes offers for commodities named in avoid.
func ApplyAvoidItemsFilter(offers []model.Offer, avoid map[string]bool) []model.Offer {
	if len(avoid) == 0 {
		return offers
	}
	out := make([]model.Offer, 0, len(offers))
	for _, o := range offers {
		if !avoid[o.ItemID] {
			out = append(out, o)
		}
	}
	return out
}

// BestTrade is the adapter-facing entry point the hop expander calls: it
// applies the avoid-items and freshness filters, then solves for the
// best load within the given budget/capacity.
func BestTrade(offers []model.Offer, avoidItems map[string]bool, maxAgeDays int64, credits, capacity, maxUnits int64) (model.TradeLoad, error) {
	filtered := ApplyAvoidItemsFilter(offers, avoidItems)
	filtered = ApplyFreshnessFilter(filtered, maxAgeDays)
	return BestLoad(filtered, credits, capacity, maxUnits)
}

// sortOffers sorts offers by GainCr descending, CostCr ascending — the
// ordering the adapter is responsible for providing, exposed here only
// for test fixtures that build offers out of order.
func sortOffers(offers []model.Offer) []model.Offer {
	out := make([]model.Offer, len(offers))
	copy(out, offers)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GainCr != out[j].GainCr {
			return out[i].GainCr > out[j].GainCr
		}
		return out[i].CostCr < out[j].CostCr
	})
	return out
}
