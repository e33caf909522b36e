package graph

import "convoy-route-service/internal/domain"

// Graph is an undirected road network keyed by location id.
//
// Each segment is stored in both directions. A later segment between the
// same pair overwrites the earlier one but keeps its neighbour position, so
// traversal order follows first insertion and stays reproducible.
type Graph struct {
	adj   map[string]map[string]domain.RoadSegment
	order map[string][]string
}

// Build constructs the graph from segments in load order.
func Build(segments []domain.RoadSegment) *Graph {
	g := &Graph{
		adj:   make(map[string]map[string]domain.RoadSegment),
		order: make(map[string][]string),
	}
	for _, s := range segments {
		g.insert(s.FromID, s.ToID, s)
		g.insert(s.ToID, s.FromID, s)
	}
	return g
}

func (g *Graph) insert(from, to string, s domain.RoadSegment) {
	nbrs, ok := g.adj[from]
	if !ok {
		nbrs = make(map[string]domain.RoadSegment)
		g.adj[from] = nbrs
	}
	if _, seen := nbrs[to]; !seen {
		g.order[from] = append(g.order[from], to)
	}
	nbrs[to] = s
}

// Edge returns the segment stored for the ordered pair, without traversal.
func (g *Graph) Edge(from, to string) (domain.RoadSegment, bool) {
	nbrs, ok := g.adj[from]
	if !ok {
		return domain.RoadSegment{}, false
	}
	s, ok := nbrs[to]
	return s, ok
}

// Has reports whether id appears in any segment.
func (g *Graph) Has(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the neighbour ids of id in insertion order.
// The returned slice must not be modified.
func (g *Graph) Neighbors(id string) []string {
	return g.order[id]
}

// NodeCount returns the number of distinct locations in the graph.
func (g *Graph) NodeCount() int { return len(g.adj) }
