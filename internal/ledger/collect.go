package ledger

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/woodruffw/pledger-chart/internal/model"
)

// Collect fetches every period through f, at most jobs at a time, and
// returns the records in the given order no matter how the fetches
// interleave. The first failure cancels the in-flight fetches and aborts the
// whole run: a chart silently missing a month would misrepresent totals.
func Collect(ctx context.Context, f Fetcher, periods []string, jobs int) ([]model.Ledger, error) {
	if jobs < 1 {
		jobs = 1
	}

	records := make([]model.Ledger, len(periods))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, p := range periods {
		i, p := i, p // per-iteration copies: go.mod targets go1.21, where range variables are shared
		g.Go(func() error {
			led, err := f.FetchMonth(ctx, p)
			if err != nil {
				return err
			}
			records[i] = led
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
