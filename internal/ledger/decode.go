package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/woodruffw/pledger-chart/internal/model"
)

// ledgerJSON mirrors one pledger --json report.
type ledgerJSON struct {
	Date    string      `json:"date"`
	Entries []entryJSON `json:"entries"`
}

// entryJSON is one wire entry. Amount is a tuple whose first element carries
// the value; later elements are formatting metadata pledger keeps for its own
// output and are ignored here.
type entryJSON struct {
	Kind    string        `json:"kind"`
	Amount  []json.Number `json:"amount"`
	Comment string        `json:"comment"`
	Tags    []string      `json:"tags"`
}

// Decode parses one pledger JSON report into a validated monthly ledger.
// Anything malformed is a hard error: a silently coerced entry would flow
// straight into the charts.
func Decode(data []byte) (model.Ledger, error) {
	var raw ledgerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Ledger{}, fmt.Errorf("parsing report: %w", err)
	}
	if raw.Date == "" {
		return model.Ledger{}, errors.New("report has no date")
	}

	led := model.Ledger{
		Period:  raw.Date,
		Entries: make([]model.Entry, 0, len(raw.Entries)),
	}
	for i, e := range raw.Entries {
		kind, err := model.ParseKind(e.Kind)
		if err != nil {
			return model.Ledger{}, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if len(e.Amount) == 0 {
			return model.Ledger{}, fmt.Errorf("entry %d: missing amount", i+1)
		}
		amount, err := decimal.NewFromString(e.Amount[0].String())
		if err != nil {
			return model.Ledger{}, fmt.Errorf("entry %d: parsing amount %q: %w", i+1, e.Amount[0], err)
		}
		led.Entries = append(led.Entries, model.Entry{
			Kind:    kind,
			Amount:  amount,
			Comment: e.Comment,
			Tags:    e.Tags,
		})
	}

	if err := led.Validate(); err != nil {
		return model.Ledger{}, err
	}
	return led, nil
}
