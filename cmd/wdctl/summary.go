package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"wealthdesk/internal/analytics"
	"wealthdesk/internal/report"
	"wealthdesk/internal/services"
)

type summaryCmd struct {
	currency string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the firm-wide holdings summary" }
func (*summaryCmd) Usage() string {
	return `wdctl summary [-currency <code>]

  Displays invested and current value across all holdings, by asset class.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "ISO 4217 currency code (default from configuration)")
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repos, cfg, err := openRepos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeRepos(repos)

	s, err := services.NewHoldingService(repos, time.Now).GetFirmSummary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	code := c.currency
	if code == "" {
		code = cfg.ReportCurrency
	}
	printMarkdown(summaryMarkdown(cfg.FirmName, *s, report.NewMoney(strings.ToUpper(code))))
	return subcommands.ExitSuccess
}

// summaryMarkdown lays out s as a heading, a totals list and a per-class table.
func summaryMarkdown(firm string, s analytics.Summary, m report.Money) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s holdings summary\n\n", firm)
	fmt.Fprintf(&b, "- Holdings: %d\n", s.HoldingsCount)
	fmt.Fprintf(&b, "- Invested: %s\n", m.Format(s.TotalInvested))
	fmt.Fprintf(&b, "- Current: %s\n", m.Format(s.TotalCurrent))
	fmt.Fprintf(&b, "- Gain: %s (%s)\n\n", m.Format(s.TotalCurrent-s.TotalInvested),
		analytics.Percent(analytics.AbsoluteReturn(s.TotalInvested, s.TotalCurrent)))

	if len(s.ByAssetClass) == 0 {
		b.WriteString("No holdings.\n")
		return b.String()
	}
	b.WriteString("| Asset class | Invested | Current | Weight |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, ct := range s.ByAssetClass {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", ct.AssetClass, m.Format(ct.Invested), m.Format(ct.Current),
			analytics.Percent(analytics.Weight(ct.Current, s.TotalCurrent)))
	}
	return b.String()
}
