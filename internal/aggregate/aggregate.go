// Package aggregate turns an ordered collection of monthly ledgers into
// chart-ready datasets. Everything here is pure: no I/O, no mutation of the
// input, and output order is fixed entirely by input order.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/woodruffw/pledger-chart/internal/model"
)

// TagUniverse returns every distinct tag appearing anywhere in the collection,
// ordered by first appearance in the chronological scan. That order fixes the
// stacking order of the tag chart, so it must not depend on map iteration.
func TagUniverse(ledgers []model.Ledger) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, l := range ledgers {
		for _, e := range l.Entries {
			for _, tag := range e.Tags {
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			}
		}
	}
	return tags
}

// NetChart builds the debits-vs-credits view: one category per month, a
// "Debit" series of non-positive sums and a "Credit" series of non-negative
// sums, in that stacking order. The zero baseline separates the two.
func NetChart(ledgers []model.Ledger) model.ChartData {
	chart := model.ChartData{
		Categories: periods(ledgers),
		Datasets: []model.Dataset{
			{Label: string(model.KindDebit), Values: make([]decimal.Decimal, 0, len(ledgers))},
			{Label: string(model.KindCredit), Values: make([]decimal.Decimal, 0, len(ledgers))},
		},
	}
	for i, kind := range []model.Kind{model.KindDebit, model.KindCredit} {
		for _, l := range ledgers {
			sum := decimal.Zero
			for _, e := range l.Entries {
				if e.Kind == kind {
					sum = sum.Add(e.Signed())
				}
			}
			chart.Datasets[i].Values = append(chart.Datasets[i].Values, sum)
		}
	}
	return chart
}

// TagChart builds one series per tag, in the order given (normally the
// TagUniverse order). A month's value for a tag is the signed sum of every
// entry carrying that tag, debits and credits together. An entry with
// several tags counts fully toward each of them: tag series are independent
// views of the same entries, not a partition.
func TagChart(tags []string, ledgers []model.Ledger) model.ChartData {
	chart := model.ChartData{
		Categories: periods(ledgers),
		Datasets:   make([]model.Dataset, 0, len(tags)),
	}
	for _, tag := range tags {
		values := make([]decimal.Decimal, 0, len(ledgers))
		for _, l := range ledgers {
			sum := decimal.Zero
			for _, e := range l.Entries {
				if hasTag(e, tag) {
					sum = sum.Add(e.Signed())
				}
			}
			values = append(values, sum)
		}
		chart.Datasets = append(chart.Datasets, model.Dataset{Label: tag, Values: values})
	}
	return chart
}

func periods(ledgers []model.Ledger) []string {
	ps := make([]string, len(ledgers))
	for i, l := range ledgers {
		ps[i] = l.Period
	}
	return ps
}

func hasTag(e model.Entry, tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
