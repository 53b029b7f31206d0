package ledger

import (
	"fmt"
	"os"
	"sort"

	"github.com/woodruffw/pledger-chart/internal/period"
)

// Scan returns the names of the monthly ledger files in dir, sorted
// ascending. For YYYY-MM names lexical order is chronological order, and the
// result order is the category order of every chart downstream. Files that
// are not named like a period are ignored; an empty result is fine.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading ledger dir: %w", err)
	}

	var periods []string
	for _, e := range entries {
		if e.IsDir() || !period.Valid(e.Name()) {
			continue
		}
		periods = append(periods, e.Name())
	}
	sort.Strings(periods)
	return periods, nil
}
