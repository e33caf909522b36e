package domain

// Supply categories tracked for inventory and demand.
const (
	SupplyFood    = "food"
	SupplyAmmo    = "ammo"
	SupplyFuel    = "fuel"
	SupplyMedical = "medical"
)

// SupplyCategories lists the categories in their canonical order.
var SupplyCategories = []string{SupplyFood, SupplyAmmo, SupplyFuel, SupplyMedical}

// Tonnage per supply category.
type Supplies struct {
	FoodTons    float64
	AmmoTons    float64
	FuelTons    float64
	MedicalTons float64
}

// Total sums every category.
func (s Supplies) Total() float64 {
	return s.FoodTons + s.AmmoTons + s.FuelTons + s.MedicalTons
}

// A depot that dispatches vehicles. Only active points reach the engine.
type SupplyPoint struct {
	ID          string
	Name        string
	Coords      Coordinates
	Region      string
	Country     string
	BaseType    string
	Troops      int
	HasAirstrip bool
	Status      string
	Inventory   Supplies
}
