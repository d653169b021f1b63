package algo

import "container/heap"

// Edge is a weighted step towards To.
type Edge[N comparable] struct {
	To   N
	Cost int
}

type item[N comparable] struct {
	node N
	cost int
}

type queue[N comparable] []item[N]

func (q queue[N]) Len() int            { return len(q) }
func (q queue[N]) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q queue[N]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *queue[N]) Push(x any)         { *q = append(*q, x.(item[N])) } //nolint: forcetypeassert
func (q *queue[N]) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]

	return it
}

// Dijkstra searches from every start node (at cost 0) for the cheapest node
// satisfying goal. It returns that node, its cost and whether one was reached.
func Dijkstra[N comparable](starts []N, neighbours func(N) []Edge[N], goal func(N) bool) (N, int, bool) {
	var found N
	cost, ok := -1, false
	walk(starts, neighbours, func(n N, c int) bool {
		if goal(n) {
			found, cost, ok = n, c, true

			return false
		}

		return true
	})

	return found, cost, ok
}

// Distances returns the cheapest cost of every node reachable from starts.
func Distances[N comparable](starts []N, neighbours func(N) []Edge[N]) map[N]int {
	dist := map[N]int{}
	walk(starts, neighbours, func(n N, c int) bool {
		dist[n] = c

		return true
	})

	return dist
}

// walk settles nodes in cost order, calling visit once per node until visit returns false.
func walk[N comparable](starts []N, neighbours func(N) []Edge[N], visit func(N, int) bool) {
	best := make(map[N]int, len(starts))
	settled := map[N]bool{}
	q := make(queue[N], 0, len(starts))
	for _, s := range starts {
		best[s] = 0
		q = append(q, item[N]{node: s})
	}
	heap.Init(&q)

	for q.Len() > 0 {
		cur := heap.Pop(&q).(item[N]) //nolint: forcetypeassert
		if settled[cur.node] {
			continue
		}
		settled[cur.node] = true
		if !visit(cur.node, cur.cost) {
			return
		}

		for _, e := range neighbours(cur.node) {
			next := cur.cost + e.Cost
			if prev, seen := best[e.To]; seen && prev <= next {
				continue
			}
			best[e.To] = next
			heap.Push(&q, item[N]{node: e.To, cost: next})
		}
	}
}

// BFS returns the number of unit steps from start to every reachable node.
func BFS[N comparable](start N, neighbours func(N) []N) map[N]int {
	dist := map[N]int{start: 0}
	frontier := []N{start}
	for len(frontier) > 0 {
		var next []N
		for _, n := range frontier {
			for _, m := range neighbours(n) {
				if _, seen := dist[m]; seen {
					continue
				}
				dist[m] = dist[n] + 1
				next = append(next, m)
			}
		}
		frontier = next
	}

	return dist
}
