package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"libfinder/internal/platform/data4library"
)

// fakeAPI serves canned holding pages per region and loan answers per
// library, and records every call in order.
type fakeAPI struct {
	mu sync.Mutex

	pages     map[string]data4library.LibraryPage
	pageErrs  map[string]error
	available map[string]bool
	checkErrs map[string]error
	queries   []data4library.LibraryQuery
	checks    []string
	events    []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		pages:     map[string]data4library.LibraryPage{},
		pageErrs:  map[string]error{},
		available: map[string]bool{},
		checkErrs: map[string]error{},
	}
}

func (f *fakeAPI) LibrariesByBook(_ context.Context, q data4library.LibraryQuery) (data4library.LibraryPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if err := f.pageErrs[q.Region]; err != nil {
		return data4library.LibraryPage{}, err
	}
	return f.pages[q.Region], nil
}

func (f *fakeAPI) BookExist(_ context.Context, libCode, _ string) (data4library.Existence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks = append(f.checks, libCode)
	f.events = append(f.events, "check")
	if err := f.checkErrs[libCode]; err != nil {
		return data4library.Existence{}, err
	}
	return data4library.Existence{HasBook: true, LoanAvailable: f.available[libCode]}, nil
}

func (f *fakeAPI) recordSleep() {
	f.mu.Lock()
	f.events = append(f.events, "sleep")
	f.mu.Unlock()
}

func (f *fakeAPI) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeAPI) checkCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.checks)
}

var errUpstream = errors.New("upstream unavailable")

func ptr(f float64) *float64 { return &f }

func lib(code, address string, lat, lng float64) data4library.Library {
	l := data4library.Library{Code: code, Name: "도서관 " + code, Address: address}
	if lat != 0 || lng != 0 {
		l.Latitude, l.Longitude = ptr(lat), ptr(lng)
	}
	return l
}

func libsN(prefix string, n int) []data4library.Library {
	out := make([]data4library.Library, n)
	for i := range out {
		out[i] = lib(fmt.Sprintf("%s%03d", prefix, i), "주소", 0, 0)
	}
	return out
}

func codes(libs []LibraryAvailability) []string {
	out := make([]string, len(libs))
	for i, l := range libs {
		out[i] = l.LibraryCode
	}
	return out
}
