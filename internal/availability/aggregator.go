package availability

import (
	"context"
	"fmt"
	"strings"

	"libfinder/internal/geo"
	"libfinder/internal/logger"
	"libfinder/internal/platform/data4library"
	"libfinder/internal/region"
)

const (
	regionPageSize  = data4library.MaxPageSize
	regionCheckSize = 5
)

// Query is one regional search. RegionCode may be a 2-digit province or a
// 5-digit city/district code; empty searches without a region. Origin,
// when set, orders results by distance.
type Query struct {
	ISBN       string
	RegionCode string
	Origin     *geo.Point
}

type Result struct {
	Libraries  []LibraryAvailability `json:"libraries"`
	TotalCount int                   `json:"total_count"`
}

type Aggregator struct {
	api        LibraryAPI
	regions    *region.Mapper
	checkLimit int
}

func NewAggregator(api LibraryAPI, regions *region.Mapper) *Aggregator {
	return &Aggregator{api: api, regions: regions, checkLimit: regionCheckSize}
}

// FindLibrariesWithBook lists libraries in the region holding the book,
// narrowed by address to the requested district or city when possible.
// Only the nearest few get a real-time loan check. Upstream failures
// produce an empty result; the error is reserved for invalid queries.
func (a *Aggregator) FindLibrariesWithBook(ctx context.Context, q Query) (Result, error) {
	isbn := strings.TrimSpace(q.ISBN)
	if isbn == "" {
		return Result{}, fmt.Errorf("%w: isbn is required", ErrInvalidInput)
	}

	upstreamQ := data4library.LibraryQuery{ISBN: isbn, PageSize: regionPageSize}
	var filters []string
	if code := strings.TrimSpace(q.RegionCode); code != "" {
		match, ok := a.regions.FindByCode(code)
		if !ok {
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownRegion, code)
		}
		upstreamQ.Region = region.Prefix(code)
		if len(code) > 2 {
			upstreamQ.DtlRegion = code
		}
		filters = addressFilters(match)
	}

	page, err := a.api.LibrariesByBook(ctx, upstreamQ)
	if err != nil {
		logger.L().Warn("library_search_failed", "isbn", isbn, "region", q.RegionCode, "err", err)
		return Result{Libraries: []LibraryAvailability{}, TotalCount: 0}, nil
	}
	if len(page.Libraries) == 0 {
		return Result{Libraries: []LibraryAvailability{}, TotalCount: 0}, nil
	}

	all := make([]LibraryAvailability, 0, len(page.Libraries))
	for _, l := range page.Libraries {
		all = append(all, fromLibrary(isbn, l))
	}
	all = dedupe(all)

	libs, total := narrow(all, filters)
	if libs == nil {
		libs, total = all, page.NumFound
	}

	withDistances(libs, q.Origin)
	sortByDistance(libs)
	checkConcurrently(ctx, a.api, "region", libs[:min(a.checkLimit, len(libs))])
	sortForDisplay(libs)

	return Result{Libraries: libs, TotalCount: total}, nil
}

// addressFilters lists the names to match against library addresses, most
// specific first: district, then its city.
func addressFilters(m region.Match) []string {
	var names []string
	if m.District != nil {
		names = append(names, m.District.Name)
	}
	if m.SubRegion != nil {
		names = append(names, m.SubRegion.Name)
	}
	return names
}

// narrow returns the libraries whose address contains the first filter
// that matches anything. nil means no filter matched.
func narrow(libs []LibraryAvailability, filters []string) ([]LibraryAvailability, int) {
	for _, name := range filters {
		var out []LibraryAvailability
		for _, l := range libs {
			if strings.Contains(l.Address, name) {
				out = append(out, l)
			}
		}
		if len(out) > 0 {
			return out, len(out)
		}
	}
	return nil, 0
}
