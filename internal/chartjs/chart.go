// Package chartjs serializes chart data into the exact JSON shape the
// Chart.js setup in the bundled template consumes, and renders the final
// HTML page. No aggregation logic lives here.
package chartjs

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/woodruffw/pledger-chart/internal/model"
)

// Chart is the wire form of one chart. The field names are Chart.js's own
// and must not drift.
type Chart struct {
	Labels   []string `json:"labels"`
	Datasets []Series `json:"datasets"`
}

// Series is one stacked series.
type Series struct {
	Label string        `json:"label"`
	Data  []json.Number `json:"data"`
}

// Marshal renders chart data as Chart.js JSON. Values are written as exact
// decimal literals, trailing zeros trimmed; they never pass through float64.
func Marshal(c model.ChartData) ([]byte, error) {
	return json.Marshal(wire(c))
}

// MarshalIndent is Marshal with indentation, for --json output meant to be
// read by people.
func MarshalIndent(c model.ChartData) ([]byte, error) {
	return json.MarshalIndent(wire(c), "", "  ")
}

// Unmarshal parses Chart.js JSON back into chart data. Together with Marshal
// it round-trips categories, labels and values exactly.
func Unmarshal(data []byte) (model.ChartData, error) {
	var c Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return model.ChartData{}, fmt.Errorf("parsing chart JSON: %w", err)
	}

	out := model.ChartData{
		Categories: c.Labels,
		Datasets:   make([]model.Dataset, 0, len(c.Datasets)),
	}
	for _, s := range c.Datasets {
		values := make([]decimal.Decimal, 0, len(s.Data))
		for i, n := range s.Data {
			v, err := decimal.NewFromString(n.String())
			if err != nil {
				return model.ChartData{}, fmt.Errorf("series %q value %d: %w", s.Label, i, err)
			}
			values = append(values, v)
		}
		out.Datasets = append(out.Datasets, model.Dataset{Label: s.Label, Values: values})
	}
	return out, nil
}

func wire(c model.ChartData) Chart {
	// Empty axes serialize as [], not null; Chart.js chokes on the latter.
	w := Chart{
		Labels:   append([]string{}, c.Categories...),
		Datasets: make([]Series, 0, len(c.Datasets)),
	}
	for _, ds := range c.Datasets {
		data := make([]json.Number, 0, len(ds.Values))
		for _, v := range ds.Values {
			data = append(data, json.Number(v.String()))
		}
		w.Datasets = append(w.Datasets, Series{Label: ds.Label, Data: data})
	}
	return w
}
