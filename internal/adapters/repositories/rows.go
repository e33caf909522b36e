package repositories

// Raw table rows as they appear in the CSV files and the Postgres tables.
// Optional numeric columns are pointers so that blanks and NULLs stay
// distinguishable from zero until cleaning.

type supplyPointRow struct {
	ID          string   `csv:"id"`
	Name        string   `csv:"name"`
	Lat         *float64 `csv:"lat"`
	Lon         *float64 `csv:"lon"`
	Region      string   `csv:"region"`
	Country     string   `csv:"country"`
	BaseType    string   `csv:"base_type"`
	Troops      *float64 `csv:"troops"`
	HasAirstrip string   `csv:"has_airstrip"`
	Status      string   `csv:"status"`
	FoodTons    *float64 `csv:"food_tons"`
	AmmoTons    *float64 `csv:"ammo_tons"`
	FuelTons    *float64 `csv:"fuel_tons"`
	MedicalTons *float64 `csv:"medical_tons"`
}

type destinationRow struct {
	ID          string   `csv:"dest_id"`
	Name        string   `csv:"dest_name"`
	Lat         *float64 `csv:"lat"`
	Lon         *float64 `csv:"lon"`
	Region      string   `csv:"region"`
	Country     string   `csv:"country"`
	Priority    string   `csv:"priority"`
	HasAirstrip string   `csv:"has_airstrip"`
	FoodTons    *float64 `csv:"food_tons"`
	AmmoTons    *float64 `csv:"ammo_tons"`
	FuelTons    *float64 `csv:"fuel_tons"`
	MedicalTons *float64 `csv:"medical_tons"`
}

type vehicleRow struct {
	ID           string   `csv:"vehicle_id"`
	Type         string   `csv:"type"`
	Mode         string   `csv:"mode"`
	CapacityTons *float64 `csv:"capacity_tons"`
	MaxRangeKm   *float64 `csv:"max_range_km"`
	SpeedKmh     *float64 `csv:"speed_kmh"`
	HomeBase     string   `csv:"home_base"`
	Status       string   `csv:"status"`
}

type roadSegmentRow struct {
	FromID        string   `csv:"from_point"`
	ToID          string   `csv:"to_point"`
	DistanceKm    *float64 `csv:"distance_km"`
	ThreatLevel   string   `csv:"threat_level"`
	RoadCondition string   `csv:"road_condition"`
}
