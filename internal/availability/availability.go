// Package availability answers "which libraries hold this book, and can I
// borrow it right now?" for one region or for the whole country.
package availability

import (
	"context"
	"errors"
	"sort"

	"libfinder/internal/geo"
	"libfinder/internal/platform/data4library"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnknownRegion = errors.New("unknown region code")
)

// LibraryAvailability is one library's answer for one book. It is computed
// per request and never stored. Checked is false when the loan status was
// not asked for or the check failed; LoanAvailable is then false too.
type LibraryAvailability struct {
	ISBN           string   `json:"isbn"`
	LibraryCode    string   `json:"library_code"`
	LibraryName    string   `json:"library_name"`
	Address        string   `json:"address,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Homepage       string   `json:"homepage,omitempty"`
	OperatingHours string   `json:"operating_hours,omitempty"`
	ClosedDays     string   `json:"closed_days,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	HasBook        bool     `json:"has_book"`
	LoanAvailable  bool     `json:"loan_available"`
	Checked        bool     `json:"checked"`
	ReturnDueDate  string   `json:"return_due_date,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

// LibraryAPI is the part of the upstream client the aggregator needs.
type LibraryAPI interface {
	LibrariesByBook(ctx context.Context, q data4library.LibraryQuery) (data4library.LibraryPage, error)
	BookExist(ctx context.Context, libCode, isbn string) (data4library.Existence, error)
}

func fromLibrary(isbn string, l data4library.Library) LibraryAvailability {
	return LibraryAvailability{
		ISBN:           isbn,
		LibraryCode:    l.Code,
		LibraryName:    l.Name,
		Address:        l.Address,
		Phone:          l.Tel,
		Homepage:       l.Homepage,
		OperatingHours: l.OperatingTime,
		ClosedDays:     l.Closed,
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		// Listed by the holding search, so the library owns a copy.
		HasBook: true,
	}
}

func (la LibraryAvailability) point() (geo.Point, bool) {
	if la.Latitude == nil || la.Longitude == nil {
		return geo.Point{}, false
	}
	p := geo.Point{Lat: *la.Latitude, Lng: *la.Longitude}
	return p, p.Valid()
}

// dedupe keeps the first entry for each library code.
func dedupe(libs []LibraryAvailability) []LibraryAvailability {
	seen := make(map[string]struct{}, len(libs))
	out := make([]LibraryAvailability, 0, len(libs))
	for _, l := range libs {
		if _, ok := seen[l.LibraryCode]; ok {
			continue
		}
		seen[l.LibraryCode] = struct{}{}
		out = append(out, l)
	}
	return out
}

// rank: confirmed available, then confirmed unavailable, then unchecked.
func rank(la LibraryAvailability) int {
	switch {
	case la.Checked && la.LoanAvailable:
		return 0
	case la.Checked:
		return 1
	default:
		return 2
	}
}

func withDistances(libs []LibraryAvailability, origin *geo.Point) {
	if origin == nil || !origin.Valid() {
		return
	}
	for i := range libs {
		if p, ok := libs[i].point(); ok {
			d := geo.DistanceMeters(*origin, p)
			libs[i].DistanceMeters = &d
		}
	}
}

// lessByDistance orders known distances ascending, unknown last.
func lessByDistance(a, b LibraryAvailability) bool {
	switch {
	case a.DistanceMeters == nil:
		return false
	case b.DistanceMeters == nil:
		return true
	default:
		return *a.DistanceMeters < *b.DistanceMeters
	}
}

func sortByDistance(libs []LibraryAvailability) {
	sort.SliceStable(libs, func(i, j int) bool { return lessByDistance(libs[i], libs[j]) })
}

func sortForDisplay(libs []LibraryAvailability) {
	sort.SliceStable(libs, func(i, j int) bool {
		ri, rj := rank(libs[i]), rank(libs[j])
		if ri != rj {
			return ri < rj
		}
		return lessByDistance(libs[i], libs[j])
	})
}
