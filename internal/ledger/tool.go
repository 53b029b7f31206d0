// Package ledger obtains monthly records from the external pledger tool: it
// scans the ledger directory for period files, runs pledger once per month,
// and decodes the JSON reports into the in-memory model.
package ledger

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/woodruffw/pledger-chart/internal/model"
)

// Fetcher obtains one month's ledger. It is the seam between the aggregation
// pipeline and the subprocess mechanics, so everything above it can be tested
// with fakes.
type Fetcher interface {
	FetchMonth(ctx context.Context, period string) (model.Ledger, error)
}

// Tool is the Fetcher backed by the real pledger binary.
type Tool struct {
	bin string
	dir string
	log *logrus.Logger
}

// NewTool returns a Tool running bin against the ledger files in dir.
func NewTool(bin, dir string, log *logrus.Logger) *Tool {
	return &Tool{bin: bin, dir: dir, log: log}
}

// FetchMonth runs `pledger --json --date <period> <dir>` and decodes its
// output. A non-zero exit, undecodable output, or a report for a different
// period than requested all fail the run.
func (t *Tool) FetchMonth(ctx context.Context, period string) (model.Ledger, error) {
	cmd := exec.CommandContext(ctx, t.bin, "--json", "--date", period, t.dir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	t.log.WithFields(logrus.Fields{"period": period, "bin": t.bin}).Debug("invoking pledger")
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return model.Ledger{}, fmt.Errorf("pledger %s: %s: %w", period, msg, err)
		}
		return model.Ledger{}, fmt.Errorf("pledger %s: %w", period, err)
	}

	led, err := Decode(stdout.Bytes())
	if err != nil {
		return model.Ledger{}, fmt.Errorf("pledger %s: %w", period, err)
	}
	if led.Period != period {
		return model.Ledger{}, fmt.Errorf("pledger %s: report is for %q", period, led.Period)
	}

	t.log.WithFields(logrus.Fields{"period": period, "entries": len(led.Entries)}).Debug("fetched month")
	return led, nil
}
