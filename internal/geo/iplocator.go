package geo

import (
	"errors"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

var ErrNoLocation = errors.New("geo: no location for address")

// IPLocator approximates a caller's position from a GeoLite2-City database.
type IPLocator struct {
	db *geoip2.Reader
}

// OpenIPLocator opens the mmdb file at path.
func OpenIPLocator(path string) (*IPLocator, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip db: %w", err)
	}
	return &IPLocator{db: db}, nil
}

func (l *IPLocator) Locate(ip string) (Point, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Point{}, fmt.Errorf("geo: invalid ip %q", ip)
	}
	if parsed.IsLoopback() || parsed.IsPrivate() {
		return Point{}, ErrNoLocation
	}
	rec, err := l.db.City(parsed)
	if err != nil {
		return Point{}, fmt.Errorf("geo: lookup %s: %w", ip, err)
	}
	p := Point{Lat: rec.Location.Latitude, Lng: rec.Location.Longitude}
	if !p.Valid() {
		return Point{}, ErrNoLocation
	}
	return p, nil
}

func (l *IPLocator) Close() error {
	return l.db.Close()
}
