package idt

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-community/pqueue"
)

// frontierState is one seed's expansion state (spec.md §4.F "State").
type frontierState struct {
	idx     int
	seed    string
	queue   *pqueue.Queue[string]
	visited map[string]bool
	parent  map[string]string
}

func newFrontierState(idx int, seed string) *frontierState {
	return &frontierState{
		idx:     idx,
		seed:    seed,
		queue:   pqueue.New[string](),
		visited: map[string]bool{seed: true},
		parent:  map[string]string{},
	}
}

// engine holds every piece of IDT's global, cross-frontier state for one
// Expand call.
type engine struct {
	expander Expander
	opts     resolvedOptions

	frontiers []*frontierState
	owner     map[string]int

	pathSignatures map[string]bool
	neighborCache  map[string][]Neighbor
	estimatedMI    map[string]float64
	miPhaseActive  bool
	overlapAt      int // -1 until set
	iteration      int

	sampledNodes map[string]bool
	sampledEdges []SampledEdge
	paths        []Path
	stats        Stats
}

// Expand runs Intelligent Delayed Termination expansion from seeds over
// expander (spec.md §4.F). At least two seeds are required.
func Expand(expander Expander, seeds []string, opts ...Option) (*Result, error) {
	if len(seeds) < 2 {
		return nil, ErrTooFewSeeds
	}

	e := &engine{
		expander:       expander,
		opts:           resolveOptions(opts...),
		owner:          make(map[string]int, len(seeds)),
		pathSignatures: make(map[string]bool),
		neighborCache:  make(map[string][]Neighbor),
		estimatedMI:    make(map[string]float64),
		overlapAt:      -1,
		sampledNodes:   make(map[string]bool),
		stats:          Stats{DegreeHistogram: make(map[string]int)},
	}

	for i, seed := range seeds {
		f := newFrontierState(i, seed)
		e.frontiers = append(e.frontiers, f)

		priority, err := e.effectivePriority(seed)
		if err != nil {
			// Seed references a vertex absent from the graph (spec.md §8
			// scenario 1): drop this frontier rather than aborting the whole
			// call. It stays registered (for stable indices in Result) but
			// owns nothing and never visits anything, so it contributes zero
			// paths.
			f.visited = map[string]bool{}
			continue
		}

		e.owner[seed] = i
		e.sampledNodes[seed] = true
		f.queue.Push(seed, priority)
	}

	e.run()

	return e.result(), nil
}

func (e *engine) run() {
	for {
		active := e.selectFrontier()
		if active == -1 {
			break
		}
		if e.shouldTerminate() {
			break
		}

		e.iteration++
		e.step(e.frontiers[active])
	}
}

// selectFrontier returns the index of the non-empty frontier with the
// smallest front priority, ties broken by lowest frontier index; -1 if every
// frontier is empty.
func (e *engine) selectFrontier() int {
	best := -1
	bestPriority := 0.0
	for i, f := range e.frontiers {
		if f.queue.Len() == 0 {
			continue
		}
		p := f.queue.PeekPriority()
		if best == -1 || p < bestPriority {
			best = i
			bestPriority = p
		}
	}

	return best
}

func (e *engine) shouldTerminate() bool {
	return e.overlapAt != -1 && e.iteration-e.overlapAt >= e.opts.delayIterations
}

// step pops f's front node and processes every neighbor, per spec.md §4.F
// steps 2-7.
func (e *engine) step(f *frontierState) {
	u, ok := f.queue.Pop()
	if !ok {
		return
	}

	e.stats.NodesExpanded++
	if deg, err := e.expander.GetDegree(u); err == nil {
		e.stats.DegreeHistogram[bucketFor(deg)]++
	}

	neighbors, err := e.neighborsOf(u)
	if err == nil {
		for _, nb := range neighbors {
			e.visitNeighbor(f, u, nb)
		}
	}

	if e.overlapAt == -1 {
		e.detectOverlap(f)
	}
}

func (e *engine) visitNeighbor(f *frontierState, u string, nb Neighbor) {
	v := nb.Target
	e.stats.EdgesTraversed++
	_ = e.expander.AddEdge(u, v, nb.RelationshipType)
	e.sampledEdges = append(e.sampledEdges, SampledEdge{Source: u, Target: v, RelationshipType: nb.RelationshipType})
	e.sampledNodes[u] = true
	e.sampledNodes[v] = true

	if f.visited[v] {
		return // already visited by this frontier
	}

	if otherIdx, owned := e.owner[v]; owned && otherIdx != f.idx {
		e.onMeet(f, u, e.frontiers[otherIdx], v)
	}

	f.visited[v] = true
	f.parent[v] = u
	e.owner[v] = f.idx

	priority, err := e.effectivePriority(v)
	if err == nil {
		f.queue.Push(v, priority)
	}
}

// onMeet reconstructs the path joining f's tree (via u) and other's tree
// (via v), records it if its signature is new, and triggers the Phase-1 →
// Phase-2 priority transition on the first path discovered (spec.md §4.F
// steps 4-6).
func (e *engine) onMeet(f *frontierState, u string, other *frontierState, v string) {
	toSeed := reverseStrings(walkBackward(f.parent, u, f.seed))   // seed_f ... u
	fromMeet := walkBackward(other.parent, v, other.seed)         // v ... seed_other

	path := make([]string, 0, len(toSeed)+len(fromMeet))
	path = append(path, toSeed...)
	path = append(path, fromMeet...)

	lo, hi := f.idx, other.idx
	if lo > hi {
		lo, hi = hi, lo
	}
	sig := fmt.Sprintf("%d-%d-%d", lo, hi, len(path))
	if e.pathSignatures[sig] {
		return
	}
	e.pathSignatures[sig] = true

	e.paths = append(e.paths, Path{SeedA: f.idx, SeedB: other.idx, Nodes: path})

	if !e.miPhaseActive {
		e.miPhaseActive = true
		e.rebuildQueues()
	}
	e.updateMI(path)
}

// walkBackward walks parent pointers from start back to seed (inclusive of
// both ends) and returns the path in start-to-seed order.
func walkBackward(parent map[string]string, start, seed string) []string {
	var out []string
	cur := start
	for {
		out = append(out, cur)
		if cur == seed {
			break
		}
		p, ok := parent[cur]
		if !ok {
			break
		}
		cur = p
	}

	return out
}

func reverseStrings(s []string) []string {
	out := make([]string, len(s))
	for i, n := range s {
		out[len(s)-1-i] = n
	}

	return out
}

// rebuildQueues drains and reinserts every frontier's queued items with
// Phase-2 priorities (spec.md §4.F step 5).
func (e *engine) rebuildQueues() {
	for _, f := range e.frontiers {
		items := f.queue.Items()
		for _, it := range items {
			priority, err := e.effectivePriority(it.Item)
			if err != nil {
				priority = it.Priority
			}
			f.queue.Push(it.Item, priority)
		}
	}
}

// updateMI refreshes estimated_MI for every currently-visited node against
// the newly discovered path P (spec.md §4.F step 6).
func (e *engine) updateMI(path []string) {
	pathSet := make(map[string]bool, len(path))
	for _, n := range path {
		pathSet[n] = true
	}

	for v := range e.owner {
		neighbors, err := e.neighborsOf(v)
		if err != nil {
			continue
		}
		jac := jaccardNeighbors(neighbors, pathSet)
		if jac > e.estimatedMI[v] {
			e.estimatedMI[v] = jac
		}
	}
}

// detectOverlap checks active's visited set against every other frontier's
// visited set and sets overlapAt on the first pair meeting the threshold
// (spec.md §4.F step 7).
func (e *engine) detectOverlap(active *frontierState) {
	for _, other := range e.frontiers {
		if other.idx == active.idx {
			continue
		}
		if jaccardSets(active.visited, other.visited) >= e.opts.overlapThreshold {
			e.overlapAt = e.iteration

			return
		}
	}
}

func (e *engine) neighborsOf(id string) ([]Neighbor, error) {
	if cached, ok := e.neighborCache[id]; ok {
		return cached, nil
	}
	neighbors, err := e.expander.GetNeighbors(id)
	if err != nil {
		return nil, err
	}
	e.neighborCache[id] = neighbors

	return neighbors, nil
}

func (e *engine) effectivePriority(v string) (float64, error) {
	if !e.miPhaseActive {
		return e.expander.CalculatePriority(v)
	}

	deg, err := e.expander.GetDegree(v)
	if err != nil {
		return 0, err
	}

	return float64(deg) * (1 - e.estimatedMI[v]), nil
}

func jaccardNeighbors(neighbors []Neighbor, pathSet map[string]bool) float64 {
	if len(neighbors) == 0 {
		return 0
	}
	neighborSet := make(map[string]bool, len(neighbors))
	for _, nb := range neighbors {
		neighborSet[nb.Target] = true
	}

	return jaccardSets(neighborSet, pathSet)
}

func jaccardSets(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func (e *engine) result() *Result {
	sampledNodes := make([]string, 0, len(e.sampledNodes))
	for n := range e.sampledNodes {
		sampledNodes = append(sampledNodes, n)
	}
	sort.Strings(sampledNodes)

	visitedPerFrontier := make([][]string, len(e.frontiers))
	for i, f := range e.frontiers {
		v := make([]string, 0, len(f.visited))
		for n := range f.visited {
			v = append(v, n)
		}
		sort.Strings(v)
		visitedPerFrontier[i] = v
	}

	e.stats.Iterations = e.iteration

	return &Result{
		Paths:              e.paths,
		SampledNodes:       sampledNodes,
		SampledEdges:       e.sampledEdges,
		VisitedPerFrontier: visitedPerFrontier,
		Stats:              e.stats,
	}
}
