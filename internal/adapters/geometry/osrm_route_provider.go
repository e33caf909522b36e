package geometry

import (
	"context"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/metrics"
	"convoy-route-service/internal/platform/obs"
	"convoy-route-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNoRoute is returned when the routing service answers but has no route.
var ErrNoRoute = errors.New("no road route")

// OSRMRouteProvider implements GeometryProvider against an OSRM-compatible
// route service, with an optional persistent cache in front of it.
//
// The provider is safe for concurrent use.
type OSRMRouteProvider struct {
	session     *http.Client
	baseURL     string
	profile     string
	cache       ports.GeometryCache
	maxAttempts int
	backoff     time.Duration
}

func NewOSRMRouteProvider(baseURL, profile string, timeout time.Duration, cache ports.GeometryCache) *OSRMRouteProvider {
	if profile == "" {
		profile = "driving"
	}
	return &OSRMRouteProvider{
		session:     &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		profile:     profile,
		cache:       cache,
		maxAttempts: 3,
		backoff:     200 * time.Millisecond,
	}
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Return the road polyline from -> to. Cache failures are logged and
// otherwise ignored.
func (o *OSRMRouteProvider) RoadGeometry(
	ctx context.Context,
	from, to domain.Coordinates,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "osrm.RoadGeometry")(&err)

	if o.cache != nil {
		path, err := o.cache.Get(ctx, from, to)
		switch {
		case err == nil:
			metrics.GeometryCache.WithLabelValues("hit").Inc()
			return path, nil
		case errors.Is(err, ports.ErrCacheMiss):
			metrics.GeometryCache.WithLabelValues("miss").Inc()
		default:
			metrics.GeometryCache.WithLabelValues("error").Inc()
			log.Printf("req_id=%s op=osrm.RoadGeometry cache_get_err=%v", obs.RequestID(ctx), err)
		}
	}

	path, err := o.fetch(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, from, to, path); err != nil {
			log.Printf("req_id=%s op=osrm.RoadGeometry cache_put_err=%v", obs.RequestID(ctx), err)
		}
	}

	return path, nil
}

func (o *OSRMRouteProvider) routeURL(from, to domain.Coordinates) string {
	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")

	return fmt.Sprintf("%s/route/v1/%s/%s;%s?%s",
		o.baseURL, url.PathEscape(o.profile),
		lonLat(from), lonLat(to),
		q.Encode(),
	)
}

// lonLat renders a point in OSRM's "lon,lat" order.
func lonLat(c domain.Coordinates) string {
	ll := c.CoordsToList()
	return strconv.FormatFloat(ll[0], 'f', -1, 64) + "," + strconv.FormatFloat(ll[1], 'f', -1, 64)
}

func (o *OSRMRouteProvider) fetch(ctx context.Context, from, to domain.Coordinates) ([]domain.Coordinates, error) {
	u := o.routeURL(from, to)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, u)
	})
	if err != nil {
		return nil, fmt.Errorf("osrm route: %w", err)
	}
	defer resp.Body.Close()

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("osrm route: decode response: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, fmt.Errorf("osrm route: code=%q message=%q: %w", body.Code, body.Message, ErrNoRoute)
	}

	coords := body.Routes[0].Geometry.Coordinates
	path := make([]domain.Coordinates, 0, len(coords))
	for i, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("osrm route: point %d has %d values", i, len(c))
		}
		// GeoJSON order is [lon, lat].
		path = append(path, domain.Coordinates{Lon: c[0], Lat: c[1]})
	}

	if len(path) == 0 {
		return nil, fmt.Errorf("osrm route: empty geometry: %w", ErrNoRoute)
	}

	return path, nil
}
