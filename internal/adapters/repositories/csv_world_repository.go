package repositories

import (
	"context"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/platform/obs"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
)

const (
	SupplyPointsFile = "supply_points.csv"
	DestinationsFile = "destinations.csv"
	VehiclesFile     = "vehicles.csv"
	RoutesFile       = "routes.csv"
)

var headerAliases = map[string]string{
	"latitude":  "lat",
	"longitude": "lon",
}

// CSV-backed implementation of the WorldRepository port.
type CSVWorldRepository struct {
	Dir     string
	Cleaner *Cleaner
}

func NewCSVWorldRepository(dir string, cleaner *Cleaner) *CSVWorldRepository {
	return &CSVWorldRepository{Dir: dir, Cleaner: cleaner}
}

// Read and clean the four input tables from Dir.
func (r *CSVWorldRepository) LoadWorld(ctx context.Context) (_ *domain.World, err error) {
	defer obs.Time(ctx, "csv.LoadWorld")(&err)

	raw, err := ReadRawTables(r.Dir)
	if err != nil {
		return nil, err
	}

	return raw.World(r.Cleaner), nil
}

// RawTables holds uncleaned rows. dbtool seeds Postgres from these.
type RawTables struct {
	SupplyPoints []supplyPointRow
	Destinations []destinationRow
	Vehicles     []vehicleRow
	Segments     []roadSegmentRow
}

func (t *RawTables) World(c *Cleaner) *domain.World {
	return domain.NewWorld(
		c.SupplyPoints(t.SupplyPoints),
		c.Destinations(t.Destinations),
		c.Vehicles(t.Vehicles),
		c.RoadSegments(t.Segments),
	)
}

func ReadRawTables(dir string) (*RawTables, error) {
	var (
		t   RawTables
		err error
	)

	if t.SupplyPoints, err = readCSV[supplyPointRow](filepath.Join(dir, SupplyPointsFile)); err != nil {
		return nil, err
	}
	if t.Destinations, err = readCSV[destinationRow](filepath.Join(dir, DestinationsFile)); err != nil {
		return nil, err
	}
	if t.Vehicles, err = readCSV[vehicleRow](filepath.Join(dir, VehiclesFile)); err != nil {
		return nil, err
	}
	if t.Segments, err = readCSV[roadSegmentRow](filepath.Join(dir, RoutesFile)); err != nil {
		return nil, err
	}

	return &t, nil
}

func readCSV[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", path, err)
	}
	defer f.Close()

	rows, err := decodeCSV[T](f)
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", path, err)
	}
	return rows, nil
}

func decodeCSV[T any](r io.Reader) ([]T, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = normalizeHeader(header)

	dec, err := csvutil.NewDecoder(cr, header...)
	if err != nil {
		return nil, fmt.Errorf("new decoder: %w", err)
	}

	out := make([]T, 0, 64)
	for {
		var row T
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode line %d: %w", len(out)+2, err)
		}
		out = append(out, row)
	}

	return out, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if alias, ok := headerAliases[h]; ok {
			h = alias
		}
		out[i] = h
	}
	return out
}
