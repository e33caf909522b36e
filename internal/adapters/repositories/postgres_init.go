package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for the four input tables and the
// geometry cache.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSupplyPointsQuery := `
	CREATE TABLE IF NOT EXISTS supply_points (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		name TEXT,
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		region TEXT,
		country TEXT,
		base_type TEXT,
		troops DOUBLE PRECISION,
		has_airstrip TEXT,
		status TEXT,
		food_tons DOUBLE PRECISION,
		ammo_tons DOUBLE PRECISION,
		fuel_tons DOUBLE PRECISION,
		medical_tons DOUBLE PRECISION
	);
	`

	createDestinationsQuery := `
	CREATE TABLE IF NOT EXISTS destinations (
		seq BIGSERIAL,
		dest_id TEXT PRIMARY KEY,
		dest_name TEXT,
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		region TEXT,
		country TEXT,
		priority TEXT,
		has_airstrip TEXT,
		food_tons DOUBLE PRECISION,
		ammo_tons DOUBLE PRECISION,
		fuel_tons DOUBLE PRECISION,
		medical_tons DOUBLE PRECISION
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		seq BIGSERIAL,
		vehicle_id TEXT PRIMARY KEY,
		type TEXT,
		mode TEXT,
		capacity_tons DOUBLE PRECISION,
		max_range_km DOUBLE PRECISION,
		speed_kmh DOUBLE PRECISION,
		home_base TEXT,
		status TEXT
	);
	`

	// seq preserves file order on every table: segment order drives graph
	// neighbour order, and vehicle order breaks capacity ties.
	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		seq BIGSERIAL PRIMARY KEY,
		from_point TEXT NOT NULL,
		to_point TEXT NOT NULL,
		distance_km DOUBLE PRECISION,
		threat_level TEXT,
		road_condition TEXT
	);
	`

	createGeometryCacheQuery := `
	CREATE TABLE IF NOT EXISTS geometry_cache (
		cache_key TEXT PRIMARY KEY,
		path_json TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	statements := []string{
		createSupplyPointsQuery,
		createDestinationsQuery,
		createVehiclesQuery,
		createRoutesQuery,
		createGeometryCacheQuery,
		// tables created before seq existed
		`ALTER TABLE supply_points ADD COLUMN IF NOT EXISTS seq BIGSERIAL;`,
		`ALTER TABLE destinations ADD COLUMN IF NOT EXISTS seq BIGSERIAL;`,
		`ALTER TABLE vehicles ADD COLUMN IF NOT EXISTS seq BIGSERIAL;`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the contents of the four input tables with the raw CSV rows.
// Rows are stored uncleaned so that cleaning stays in one place.
func SeedFromCSV(ctx context.Context, db *sql.DB, dir string) error {
	raw, err := ReadRawTables(dir)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE supply_points, destinations, vehicles, routes RESTART IDENTITY;`); err != nil {
		return fmt.Errorf("seed: truncate: %w", err)
	}

	if err := seedRows(ctx, tx, "supply_points", `
	INSERT INTO supply_points (
		id, name, lat, lon, region, country, base_type, troops,
		has_airstrip, status, food_tons, ammo_tons, fuel_tons, medical_tons
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (id) DO NOTHING;
	`, raw.SupplyPoints, func(r supplyPointRow) []any {
		return []any{r.ID, r.Name, r.Lat, r.Lon, r.Region, r.Country, r.BaseType, r.Troops,
			r.HasAirstrip, r.Status, r.FoodTons, r.AmmoTons, r.FuelTons, r.MedicalTons}
	}); err != nil {
		return err
	}

	if err := seedRows(ctx, tx, "destinations", `
	INSERT INTO destinations (
		dest_id, dest_name, lat, lon, region, country, priority,
		has_airstrip, food_tons, ammo_tons, fuel_tons, medical_tons
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (dest_id) DO NOTHING;
	`, raw.Destinations, func(r destinationRow) []any {
		return []any{r.ID, r.Name, r.Lat, r.Lon, r.Region, r.Country, r.Priority,
			r.HasAirstrip, r.FoodTons, r.AmmoTons, r.FuelTons, r.MedicalTons}
	}); err != nil {
		return err
	}

	if err := seedRows(ctx, tx, "vehicles", `
	INSERT INTO vehicles (
		vehicle_id, type, mode, capacity_tons, max_range_km, speed_kmh, home_base, status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (vehicle_id) DO NOTHING;
	`, raw.Vehicles, func(r vehicleRow) []any {
		return []any{r.ID, r.Type, r.Mode, r.CapacityTons, r.MaxRangeKm, r.SpeedKmh, r.HomeBase, r.Status}
	}); err != nil {
		return err
	}

	if err := seedRows(ctx, tx, "routes", `
	INSERT INTO routes (from_point, to_point, distance_km, threat_level, road_condition)
	VALUES ($1, $2, $3, $4, $5);
	`, raw.Segments, func(r roadSegmentRow) []any {
		return []any{r.FromID, r.ToID, r.DistanceKm, r.ThreatLevel, r.RoadCondition}
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}

func seedRows[T any](ctx context.Context, tx *sql.Tx, table, query string, rows []T, args func(T) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed %s: prepare insert: %w", table, err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.ExecContext(ctx, args(r)...); err != nil {
			return fmt.Errorf("seed %s: insert row %d: %w", table, i+1, err)
		}
	}
	return nil
}
