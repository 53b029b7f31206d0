package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind classifies an entry as money out (Debit) or money in (Credit).
// The values match the casing pledger uses in its JSON output.
type Kind string

const (
	KindDebit  Kind = "Debit"
	KindCredit Kind = "Credit"
)

var (
	ErrUnknownKind     = errors.New("unknown entry kind")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrFractionalCents = errors.New("amount has more than two decimal places")
)

// ParseKind converts a wire string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDebit, KindCredit:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Entry is one transaction line from a monthly ledger. Amount is always
// non-negative; direction is carried by Kind alone. Tags arrive deduplicated
// per entry from pledger and keep their "#" prefix.
type Entry struct {
	Kind    Kind
	Amount  decimal.Decimal
	Comment string
	Tags    []string
}

// Signed returns the entry's contribution to a running total: negative for
// debits, positive for credits.
func (e Entry) Signed() decimal.Decimal {
	if e.Kind == KindDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Validate checks the entry invariants. A violation means the upstream data
// is broken and the run must abort rather than chart misleading totals.
func (e Entry) Validate() error {
	if _, err := ParseKind(string(e.Kind)); err != nil {
		return err
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, e.Amount)
	}
	cents := e.Amount.Mul(decimal.NewFromInt(100))
	if !cents.Equal(cents.Floor()) {
		return fmt.Errorf("%w: %s", ErrFractionalCents, e.Amount)
	}
	return nil
}
