// Package period handles the "YYYY-MM" identifiers that name monthly ledger
// files and become chart category labels.
package period

import (
	"fmt"
	"strconv"
)

// Parse splits a period like "2020-01" into year and month.
func Parse(s string) (year, month int, err error) {
	if len(s) != 7 || s[4] != '-' {
		return 0, 0, fmt.Errorf("invalid period %q: want YYYY-MM", s)
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, fmt.Errorf("invalid period %q: want YYYY-MM", s)
		}
	}

	// The digit check above guarantees both conversions succeed.
	year, _ = strconv.Atoi(s[:4])
	month, _ = strconv.Atoi(s[5:])

	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month out of range in period %q", s)
	}
	return year, month, nil
}

// Valid reports whether s is a well-formed period.
func Valid(s string) bool {
	_, _, err := Parse(s)
	return err == nil
}
