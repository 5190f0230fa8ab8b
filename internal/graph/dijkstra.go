package graph

import "container/heap"

// Reachable describes one system reachable from a search origin: how many
// jumps it took, the cumulative lightyear distance of the path taken, and
// the ordered list of systems on that path (origin first, destination
// last).
type Reachable struct {
	Jumps int
	LY    float64
	Via   []string
}

// Destinations returns every system reachable from origin within maxJumps
// jumps, where each individual jump is at most maxLyPer lightyears (0 or
// negative means unbounded), excluding any system in avoid (origin itself
// is never excluded, since the search starts there). Ties in jump count
// are broken by shorter cumulative lightyear distance, matching Dijkstra
// over the (jumps, ly) lexicographic order.
func (u *Universe) Destinations(origin string, maxJumps int, maxLyPer float64, avoid map[string]bool) map[string]Reachable {
	result := make(map[string]Reachable)
	result[origin] = Reachable{Jumps: 0, LY: 0, Via: []string{origin}}

	pq := &pathQueue{{system: origin, jumps: 0, ly: 0, via: []string{origin}}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pathItem)
		best, ok := result[item.system]
		if ok && (item.jumps > best.Jumps || (item.jumps == best.Jumps && item.ly > best.LY)) {
			continue
		}
		if item.jumps >= maxJumps {
			continue
		}
		for _, edge := range u.Adj[item.system] {
			if maxLyPer > 0 && edge.LY > maxLyPer {
				continue
			}
			if avoid[edge.To] {
				continue
			}
			nextJumps := item.jumps + 1
			nextLY := item.ly + edge.LY
			if cur, ok := result[edge.To]; ok {
				if cur.Jumps < nextJumps || (cur.Jumps == nextJumps && cur.LY <= nextLY) {
					continue
				}
			}
			via := make([]string, len(item.via)+1)
			copy(via, item.via)
			via[len(item.via)] = edge.To
			result[edge.To] = Reachable{Jumps: nextJumps, LY: nextLY, Via: via}
			heap.Push(pq, pathItem{system: edge.To, jumps: nextJumps, ly: nextLY, via: via})
		}
	}
	return result
}

type pathItem struct {
	system string
	jumps  int
	ly     float64
	via    []string
}

type pathQueue []pathItem

func (pq pathQueue) Len() int { return len(pq) }
func (pq pathQueue) Less(i, j int) bool {
	if pq[i].jumps != pq[j].jumps {
		return pq[i].jumps < pq[j].jumps
	}
	return pq[i].ly < pq[j].ly
}
func (pq pathQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pathQueue) Push(x interface{}) {
	*pq = append(*pq, x.(pathItem))
}
func (pq *pathQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
