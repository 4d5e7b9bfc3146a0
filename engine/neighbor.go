package engine

import "github.com/katalvlaran/qgraphstate/store"

// preferredMinDegree is the heuristic threshold used by neighbor to
// prefer a "cheap" auxiliary vertex over an arbitrary one: the cost of
// the local_complement call the caller is about to make on the returned
// vertex is quadratic in its degree, so a neighbor that is already
// sparse keeps that cost bounded, rather than paying O(deg^2) on a
// vertex that happens to be the busiest one around (spec §4.3.3).
const preferredMinDegree = 6

// neighbor selects the auxiliary vertex removeLCO's default case uses for
// its second local complement. v is almost isolated w.r.t. avoid (degree
// 0, or its one neighbor is avoid): in that case the subsequent local
// complements on the returned vertex become no-ops on the graph's edge
// structure (there is nothing to toggle), so returning avoid directly is
// always correct and avoids a real neighbor scan. Otherwise, among v's
// actual neighbors (excluding avoid), it returns the first one found
// with degree below preferredMinDegree (early exit - already cheap
// enough), falling back to the single lowest-degree neighbor (ties
// broken by lowest vertex index, for determinism over map iteration)
// when none qualifies.
func neighbor(g *store.Graph, v, avoid int) int {
	if g.AlmostIsolated(v, avoid) {
		return avoid
	}

	best := -1
	bestDegree := -1
	for u := range g.Neighbors(v) {
		if u == avoid {
			continue
		}
		if g.Degree(u) < preferredMinDegree {
			return u
		}
		if bestDegree == -1 || g.Degree(u) < bestDegree || (g.Degree(u) == bestDegree && u < best) {
			best, bestDegree = u, g.Degree(u)
		}
	}

	return best
}
