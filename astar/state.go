package astar

// nodeStatus is the A* lifecycle of one cell within a search.
type nodeStatus uint8

const (
	unvisited nodeStatus = iota
	open
	closed
)

// noParent marks a node whose predecessor has not been assigned.
// It is distinct from index 0, which is a real cell.
const noParent = -1

// node is the per-cell bookkeeping of one search.
type node struct {
	status nodeStatus
	parent int
	g      int // accumulated cost from start; valid once status != unvisited
	h      int // Manhattan distance to the goal
}

// f is the selection score g+h.
func (n *node) f() int { return n.g + n.h }

// SearchState is the scratch arena of one search: one node per grid cell.
// It must not be shared between goroutines; reuse it serially through a
// Searcher or discard it after the search.
type SearchState struct {
	nodes []node
}

// NewSearchState allocates an arena for a grid of the given cell count.
// Complexity: O(cells).
func NewSearchState(cells int) *SearchState {
	s := &SearchState{nodes: make([]node, cells)}
	s.reset()
	return s
}

// Len returns the number of cells the arena covers.
func (s *SearchState) Len() int { return len(s.nodes) }

// reset returns every node to unvisited with no parent.
func (s *SearchState) reset() {
	for i := range s.nodes {
		s.nodes[i] = node{status: unvisited, parent: noParent}
	}
}
