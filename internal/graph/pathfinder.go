package graph

import (
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/geo"
	"math"
)

// Path is the result of a single path query.
// An unreachable pair has Distance = +Inf, no nodes and threat high.
type Path struct {
	DistanceKm float64
	Nodes      []string
	Threat     domain.ThreatLevel
}

// Reachable reports whether the path has a finite distance.
func (p Path) Reachable() bool { return !math.IsInf(p.DistanceKm, 1) }

// CoordsResolver maps a location id to coordinates.
type CoordsResolver interface {
	Coords(id string) (domain.Coordinates, bool)
}

// PathFinder answers path queries over a read-only graph.
// It holds no mutable state and is safe for concurrent use.
type PathFinder struct {
	graph  *Graph
	coords CoordsResolver
}

func NewPathFinder(g *Graph, coords CoordsResolver) *PathFinder {
	return &PathFinder{graph: g, coords: coords}
}

// NoPath is the unreachable result.
func NoPath() Path {
	return Path{DistanceKm: math.Inf(1), Nodes: nil, Threat: domain.ThreatHigh}
}

type bfsEntry struct {
	node   string
	path   []string
	dist   float64
	threat domain.ThreatLevel
}

// FindPath finds a route from -> to.
//
// A usable direct edge is returned immediately. Otherwise a breadth-first
// search returns the path with the fewest hops (not the shortest distance),
// skipping high-threat edges when avoidHighThreat is set. When the graph
// offers nothing, a straight geodesic leg labelled low threat is used.
// Only endpoints without coordinates yield NoPath.
func (pf *PathFinder) FindPath(from, to string, avoidHighThreat bool) Path {
	if from == to {
		return Path{DistanceKm: 0, Nodes: []string{from}, Threat: domain.ThreatLow}
	}

	if e, ok := pf.graph.Edge(from, to); ok {
		if !avoidHighThreat || e.ThreatLevel != domain.ThreatHigh {
			return Path{
				DistanceKm: e.DistanceKm,
				Nodes:      []string{from, to},
				Threat:     e.ThreatLevel,
			}
		}
	}

	if p, ok := pf.bfs(from, to, avoidHighThreat); ok {
		return p
	}

	a, okA := pf.coords.Coords(from)
	b, okB := pf.coords.Coords(to)
	if !okA || !okB {
		return NoPath()
	}

	return Path{
		DistanceKm: geo.Haversine(a, b),
		Nodes:      []string{from, to},
		Threat:     domain.ThreatLow,
	}
}

func (pf *PathFinder) bfs(from, to string, avoidHighThreat bool) (Path, bool) {
	visited := map[string]struct{}{from: {}}
	queue := []bfsEntry{{node: from, path: []string{from}, threat: domain.ThreatLow}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, nbr := range pf.graph.Neighbors(cur.node) {
			if _, seen := visited[nbr]; seen {
				continue
			}

			e, _ := pf.graph.Edge(cur.node, nbr)
			if avoidHighThreat && e.ThreatLevel == domain.ThreatHigh {
				continue
			}

			path := make([]string, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, nbr)

			next := bfsEntry{
				node:   nbr,
				path:   path,
				dist:   cur.dist + e.DistanceKm,
				threat: cur.threat.Worse(e.ThreatLevel),
			}

			if nbr == to {
				return Path{DistanceKm: next.dist, Nodes: next.path, Threat: next.threat}, true
			}

			visited[nbr] = struct{}{}
			queue = append(queue, next)
		}
	}

	return Path{}, false
}
