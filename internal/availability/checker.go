package availability

import (
	"context"

	"golang.org/x/sync/errgroup"

	"libfinder/internal/logger"
	"libfinder/internal/metrics"
)

// checkConcurrently asks for the loan status of every entry in libs at
// once and writes the answers in place. A failed check leaves the entry
// unchecked.
func checkConcurrently(ctx context.Context, api LibraryAPI, scope string, libs []LibraryAvailability) {
	var g errgroup.Group
	for i := range libs {
		g.Go(func() error {
			la := &libs[i]
			ex, err := api.BookExist(ctx, la.LibraryCode, la.ISBN)
			if err != nil {
				metrics.AvailabilityChecksTotal.WithLabelValues(scope, "failed").Inc()
				logger.L().Warn("availability_check_failed",
					"scope", scope, "lib_code", la.LibraryCode, "isbn", la.ISBN, "err", err)
				return nil
			}
			la.Checked = true
			la.HasBook = ex.HasBook
			la.LoanAvailable = ex.HasBook && ex.LoanAvailable
			outcome := "unavailable"
			if la.LoanAvailable {
				outcome = "available"
			}
			metrics.AvailabilityChecksTotal.WithLabelValues(scope, outcome).Inc()
			return nil
		})
	}
	_ = g.Wait()
}
