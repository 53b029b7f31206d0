package model

import "github.com/shopspring/decimal"

// Dataset is one named numeric series over a chart's category axis.
type Dataset struct {
	Label  string
	Values []decimal.Decimal
}

// ChartData pairs category labels with the series drawn over them, ready for
// stacked-bar rendering. Values are positionally aligned: Datasets[i].Values[j]
// belongs to Categories[j].
type ChartData struct {
	Categories []string
	Datasets   []Dataset
}
