package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"libfinder/internal/cache"
	"libfinder/internal/logger"
	"libfinder/internal/platform/data4library"
)

const (
	nationwideCheckBudget = 30
	nationwideBatchSize   = 10
	nationwideBatchDelay  = 200 * time.Millisecond
	nationwideCacheTTL    = 5 * time.Minute
)

var errAllRegionsFailed = errors.New("every region query failed")

// incompleteScan carries a result whose checks were cut short. It is
// returned to the caller but never memoized.
type incompleteScan struct {
	libs []LibraryAvailability
}

func (e *incompleteScan) Error() string { return "nationwide scan interrupted" }

// Scanner searches every province at once.
type Scanner struct {
	api         LibraryAPI
	regionCodes []string
	cache       *cache.Memory[[]LibraryAvailability]
	sleep       func(context.Context, time.Duration) error

	checkBudget int
	batchSize   int
	batchDelay  time.Duration
}

// NewScanner queries one upstream page per code in regionCodes.
func NewScanner(api LibraryAPI, regionCodes []string) *Scanner {
	return &Scanner{
		api:         api,
		regionCodes: regionCodes,
		cache:       cache.NewMemory[[]LibraryAvailability]("nationwide"),
		sleep:       sleepCtx,
		checkBudget: nationwideCheckBudget,
		batchSize:   nationwideBatchSize,
		batchDelay:  nationwideBatchDelay,
	}
}

// FindLibrariesNationwide merges the holding libraries of every region,
// de-duplicated by library code, and checks loan status for the first
// few in small paced batches. Results are cached per ISBN.
func (s *Scanner) FindLibrariesNationwide(ctx context.Context, isbn string) ([]LibraryAvailability, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, fmt.Errorf("%w: isbn is required", ErrInvalidInput)
	}

	libs, err := s.cache.Do(ctx, isbn, nationwideCacheTTL, func(ctx context.Context) ([]LibraryAvailability, error) {
		return s.scan(ctx, isbn)
	})
	if errors.Is(err, errAllRegionsFailed) {
		return []LibraryAvailability{}, nil
	}
	var partial *incompleteScan
	if errors.As(err, &partial) {
		return cloneLibs(partial.libs), nil
	}
	if err != nil {
		return nil, err
	}
	return cloneLibs(libs), nil
}

func (s *Scanner) scan(ctx context.Context, isbn string) ([]LibraryAvailability, error) {
	outcomes := s.fanOut(ctx, isbn)

	failed := 0
	for i, o := range outcomes {
		if o.Kind == Failed {
			failed++
			logger.L().Warn("region_scan_failed", "isbn", isbn, "region", s.regionCodes[i], "err", o.Err)
		}
	}
	if len(s.regionCodes) > 0 && failed == len(s.regionCodes) {
		return nil, errAllRegionsFailed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := []LibraryAvailability{}
	for _, libs := range Successes(outcomes) {
		for _, l := range libs {
			merged = append(merged, fromLibrary(isbn, l))
		}
	}
	merged = dedupe(merged)

	complete := s.checkInBatches(ctx, merged[:min(s.checkBudget, len(merged))])
	sortForDisplay(merged)
	if !complete {
		return nil, &incompleteScan{libs: merged}
	}
	return merged, nil
}

// fanOut issues one holding search per region concurrently and records an
// explicit outcome for each, in region order.
func (s *Scanner) fanOut(ctx context.Context, isbn string) []Outcome[[]data4library.Library] {
	outcomes := make([]Outcome[[]data4library.Library], len(s.regionCodes))
	var g errgroup.Group
	for i, code := range s.regionCodes {
		g.Go(func() error {
			if ctx.Err() != nil {
				outcomes[i] = Skip[[]data4library.Library]()
				return nil
			}
			page, err := s.api.LibrariesByBook(ctx, data4library.LibraryQuery{
				ISBN:     isbn,
				Region:   code,
				PageSize: data4library.MaxPageSize,
			})
			if err != nil {
				outcomes[i] = Failure[[]data4library.Library](err)
				return nil
			}
			outcomes[i] = Success(page.Libraries)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// checkInBatches runs batches of batchSize one after another, pausing
// batchDelay between them. Checks inside a batch run concurrently. If ctx
// ends during a pause the remaining entries stay unchecked and it reports
// false.
func (s *Scanner) checkInBatches(ctx context.Context, libs []LibraryAvailability) bool {
	for start := 0; start < len(libs); start += s.batchSize {
		if start > 0 {
			if err := s.sleep(ctx, s.batchDelay); err != nil {
				return false
			}
		}
		end := min(start+s.batchSize, len(libs))
		checkConcurrently(ctx, s.api, "nationwide", libs[start:end])
	}
	return ctx.Err() == nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cloneLibs copies the slice so callers cannot alter the cached result.
func cloneLibs(libs []LibraryAvailability) []LibraryAvailability {
	out := make([]LibraryAvailability, len(libs))
	copy(out, libs)
	return out
}
