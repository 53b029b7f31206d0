package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/woodruffw/pledger-chart/internal/aggregate"
	"github.com/woodruffw/pledger-chart/internal/buildinfo"
	"github.com/woodruffw/pledger-chart/internal/chartjs"
	"github.com/woodruffw/pledger-chart/internal/config"
	"github.com/woodruffw/pledger-chart/internal/ledger"
	"github.com/woodruffw/pledger-chart/internal/logging"
	"github.com/woodruffw/pledger-chart/internal/model"
)

// NewRootCommand creates the CLI command. The whole surface is the root
// command itself: one run scans the ledger directory, collects every month
// through pledger, aggregates, and emits the charts.
func NewRootCommand() *cobra.Command {
	defaults := config.Default()

	var (
		output  string
		asJSON  bool
		bin     string
		jobs    int
		title   string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "pledger-chart [directory]",
		Short: "Render monthly pledger ledgers as stacked bar charts",
		Long: "pledger-chart aggregates a directory of monthly pledger ledgers into two\n" +
			"stacked bar charts: total debits vs. credits per month, and net flow per\n" +
			"tag per month. Output is a self-contained HTML page, or raw chart JSON\n" +
			"with --json.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			log := logging.Setup(verbose)

			dirArg := ""
			if len(args) > 0 {
				dirArg = args[0]
			}
			cfg, err := config.Resolve(dirArg)
			if err != nil {
				if errors.Is(err, config.ErrNoDirectory) {
					_ = cmd.Usage()
				}
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if cmd.Flags().Changed("pledger") {
				cfg.PledgerBin = bin
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("title") {
				cfg.Title = title
			}
			log.WithFields(logrus.Fields{
				"dir":     cfg.LedgerDir,
				"pledger": cfg.PledgerBin,
				"jobs":    cfg.Jobs,
			}).Debug("resolved configuration")

			return runChart(cmd, cfg, asJSON, log)
		},
	}

	rootCmd.Flags().StringVarP(&output, "output", "o", defaults.Output, "write to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "emit chart JSON instead of HTML")
	rootCmd.Flags().StringVar(&bin, "pledger", defaults.PledgerBin, "pledger binary to invoke")
	rootCmd.Flags().IntVar(&jobs, "jobs", defaults.Jobs, "max concurrent pledger invocations")
	rootCmd.Flags().StringVar(&title, "title", defaults.Title, "chart page title")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return rootCmd
}

func runChart(cmd *cobra.Command, cfg *config.Config, asJSON bool, log *logrus.Logger) error {
	ctx := cmd.Context()

	months, err := ledger.Scan(cfg.LedgerDir)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"dir": cfg.LedgerDir, "months": len(months)}).Debug("scanned ledger directory")

	tool := ledger.NewTool(cfg.PledgerBin, cfg.LedgerDir, log)
	ledgers, err := ledger.Collect(ctx, tool, months, cfg.Jobs)
	if err != nil {
		return err
	}

	tags := aggregate.TagUniverse(ledgers)
	net := aggregate.NetChart(ledgers)
	byTag := aggregate.TagChart(tags, ledgers)
	log.WithFields(logrus.Fields{"months": len(ledgers), "tags": len(tags)}).Debug("aggregated ledgers")

	out := cmd.OutOrStdout()
	if cfg.Output != "" {
		f, err := os.OpenFile(cfg.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if asJSON {
		return writeJSON(out, net, byTag)
	}
	return chartjs.Render(out, cfg.Title, net, byTag)
}

// writeJSON emits both charts as one document, mirroring pledger's own
// --json switch.
func writeJSON(w io.Writer, net, byTag model.ChartData) error {
	netJSON, err := chartjs.MarshalIndent(net)
	if err != nil {
		return fmt.Errorf("encoding net chart: %w", err)
	}
	tagsJSON, err := chartjs.MarshalIndent(byTag)
	if err != nil {
		return fmt.Errorf("encoding tag chart: %w", err)
	}

	doc := struct {
		Net  json.RawMessage `json:"net"`
		Tags json.RawMessage `json:"tags"`
	}{netJSON, tagsJSON}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding charts: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
