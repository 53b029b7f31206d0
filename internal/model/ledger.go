package model

import (
	"errors"
	"fmt"
)

// Ledger is one month of entries as reported by pledger. Period is the
// "YYYY-MM" name of the source file and is used verbatim as the chart
// category label. Entry order within a month does not affect aggregation.
type Ledger struct {
	Period  string
	Entries []Entry
}

// Validate checks every entry, naming the first offender by position.
func (l Ledger) Validate() error {
	if l.Period == "" {
		return errors.New("ledger has no period")
	}
	for i, e := range l.Entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return nil
}
