package repositories

import (
	"context"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/platform/obs"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the WorldRepository port.
type PostgresWorldRepository struct {
	DB      *sql.DB
	Cleaner *Cleaner
}

func NewPostgresWorldRepository(db *sql.DB, cleaner *Cleaner) *PostgresWorldRepository {
	return &PostgresWorldRepository{DB: db, Cleaner: cleaner}
}

func (p *PostgresWorldRepository) LoadWorld(ctx context.Context) (_ *domain.World, err error) {
	defer obs.Time(ctx, "postgres.LoadWorld")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres world repository: DB is nil")
	}

	var raw RawTables

	raw.SupplyPoints, err = queryRows(ctx, p.DB, "supply points", `
	SELECT
		id, COALESCE(name, ''), lat, lon, COALESCE(region, ''), COALESCE(country, ''),
		COALESCE(base_type, ''), troops, COALESCE(has_airstrip, ''), COALESCE(status, ''),
		food_tons, ammo_tons, fuel_tons, medical_tons
	FROM supply_points
	ORDER BY seq;
	`, func(rows *sql.Rows) (supplyPointRow, error) {
		var r supplyPointRow
		err := rows.Scan(&r.ID, &r.Name, &r.Lat, &r.Lon, &r.Region, &r.Country,
			&r.BaseType, &r.Troops, &r.HasAirstrip, &r.Status,
			&r.FoodTons, &r.AmmoTons, &r.FuelTons, &r.MedicalTons)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	raw.Destinations, err = queryRows(ctx, p.DB, "destinations", `
	SELECT
		dest_id, COALESCE(dest_name, ''), lat, lon, COALESCE(region, ''), COALESCE(country, ''),
		COALESCE(priority, ''), COALESCE(has_airstrip, ''),
		food_tons, ammo_tons, fuel_tons, medical_tons
	FROM destinations
	ORDER BY seq;
	`, func(rows *sql.Rows) (destinationRow, error) {
		var r destinationRow
		err := rows.Scan(&r.ID, &r.Name, &r.Lat, &r.Lon, &r.Region, &r.Country,
			&r.Priority, &r.HasAirstrip,
			&r.FoodTons, &r.AmmoTons, &r.FuelTons, &r.MedicalTons)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	raw.Vehicles, err = queryRows(ctx, p.DB, "vehicles", `
	SELECT
		vehicle_id, COALESCE(type, ''), COALESCE(mode, ''),
		capacity_tons, max_range_km, speed_kmh,
		COALESCE(home_base, ''), COALESCE(status, '')
	FROM vehicles
	ORDER BY seq;
	`, func(rows *sql.Rows) (vehicleRow, error) {
		var r vehicleRow
		err := rows.Scan(&r.ID, &r.Type, &r.Mode,
			&r.CapacityTons, &r.MaxRangeKm, &r.SpeedKmh,
			&r.HomeBase, &r.Status)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	raw.Segments, err = queryRows(ctx, p.DB, "routes", `
	SELECT
		from_point, to_point, distance_km,
		COALESCE(threat_level, ''), COALESCE(road_condition, '')
	FROM routes
	ORDER BY seq;
	`, func(rows *sql.Rows) (roadSegmentRow, error) {
		var r roadSegmentRow
		err := rows.Scan(&r.FromID, &r.ToID, &r.DistanceKm, &r.ThreatLevel, &r.RoadCondition)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	return raw.World(p.Cleaner), nil
}

func queryRows[T any](ctx context.Context, db *sql.DB, what, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load %s: query: %w", what, err)
	}
	defer rows.Close()

	out := make([]T, 0, 64)
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("load %s: scan row: %w", what, err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: row iteration: %w", what, err)
	}

	return out, nil
}
