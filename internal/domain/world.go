package domain

// World is the immutable input bundle for one engine instance: the four
// cleaned tables plus id indexes. Build it once with NewWorld and share it
// read-only between concurrent optimization requests.
type World struct {
	SupplyPoints []SupplyPoint
	Destinations []Destination
	Vehicles     []Vehicle
	Segments     []RoadSegment

	supplyByID map[string]int
	destByID   map[string]int
	vehByID    map[string]int
}

// NewWorld indexes the tables. The first row wins when ids repeat.
func NewWorld(sps []SupplyPoint, dests []Destination, vehicles []Vehicle, segments []RoadSegment) *World {
	w := &World{
		SupplyPoints: sps,
		Destinations: dests,
		Vehicles:     vehicles,
		Segments:     segments,
		supplyByID:   make(map[string]int, len(sps)),
		destByID:     make(map[string]int, len(dests)),
		vehByID:      make(map[string]int, len(vehicles)),
	}

	for i, sp := range sps {
		if _, ok := w.supplyByID[sp.ID]; !ok {
			w.supplyByID[sp.ID] = i
		}
	}
	for i, d := range dests {
		if _, ok := w.destByID[d.ID]; !ok {
			w.destByID[d.ID] = i
		}
	}
	for i, v := range vehicles {
		if _, ok := w.vehByID[v.ID]; !ok {
			w.vehByID[v.ID] = i
		}
	}

	return w
}

// SupplyPoint looks up a supply point by id.
func (w *World) SupplyPoint(id string) (SupplyPoint, bool) {
	i, ok := w.supplyByID[id]
	if !ok {
		return SupplyPoint{}, false
	}
	return w.SupplyPoints[i], true
}

// Destination looks up a destination by id.
func (w *World) Destination(id string) (Destination, bool) {
	i, ok := w.destByID[id]
	if !ok {
		return Destination{}, false
	}
	return w.Destinations[i], true
}

// Vehicle looks up a vehicle by id.
func (w *World) Vehicle(id string) (Vehicle, bool) {
	i, ok := w.vehByID[id]
	if !ok {
		return Vehicle{}, false
	}
	return w.Vehicles[i], true
}

// Coords resolves coordinates for any location id.
// Supply points shadow destinations when ids collide.
func (w *World) Coords(id string) (Coordinates, bool) {
	if sp, ok := w.SupplyPoint(id); ok {
		return sp.Coords, true
	}
	if d, ok := w.Destination(id); ok {
		return d.Coords, true
	}
	return Coordinates{}, false
}
