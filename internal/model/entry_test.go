package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"Debit", KindDebit, false},
		{"Credit", KindCredit, false},
		{"debit", "", true},
		{"CREDIT", "", true},
		{"X", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			require.Error(t, err, "ParseKind(%q)", tt.in)
			assert.ErrorIs(t, err, ErrUnknownKind)
			continue
		}
		require.NoError(t, err, "ParseKind(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSigned(t *testing.T) {
	debit := Entry{Kind: KindDebit, Amount: dec("8.00")}
	assert.True(t, debit.Signed().Equal(dec("-8.00")), "debits contribute negatively, got %s", debit.Signed())

	credit := Entry{Kind: KindCredit, Amount: dec("130.00")}
	assert.True(t, credit.Signed().Equal(dec("130.00")), "credits contribute positively, got %s", credit.Signed())

	zero := Entry{Kind: KindDebit, Amount: decimal.Zero}
	assert.True(t, zero.Signed().IsZero())
}

func TestEntryValidate(t *testing.T) {
	valid := Entry{Kind: KindCredit, Amount: dec("12.50"), Tags: []string{"#pay"}}
	require.NoError(t, valid.Validate())

	negative := Entry{Kind: KindDebit, Amount: dec("-1.00")}
	assert.ErrorIs(t, negative.Validate(), ErrNegativeAmount)

	badKind := Entry{Kind: "Transfer", Amount: dec("1.00")}
	assert.ErrorIs(t, badKind.Validate(), ErrUnknownKind)

	fractional := Entry{Kind: KindDebit, Amount: dec("1.005")}
	assert.ErrorIs(t, fractional.Validate(), ErrFractionalCents)
}

func TestLedgerValidate(t *testing.T) {
	good := Ledger{Period: "2020-01", Entries: []Entry{
		{Kind: KindDebit, Amount: dec("8.00")},
		{Kind: KindCredit, Amount: dec("130.00")},
	}}
	require.NoError(t, good.Validate())

	empty := Ledger{Period: "2020-02"}
	require.NoError(t, empty.Validate(), "a month with no entries is valid")

	noPeriod := Ledger{}
	require.Error(t, noPeriod.Validate())

	bad := Ledger{Period: "2020-03", Entries: []Entry{
		{Kind: KindCredit, Amount: dec("5.00")},
		{Kind: KindDebit, Amount: dec("-2.00")},
	}}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeAmount)
	assert.Contains(t, err.Error(), "entry 2", "error should name the offending entry")
}
