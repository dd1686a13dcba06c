package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"wealthdesk/internal/report"
	"wealthdesk/internal/services"
)

type reportCmd struct {
	client   string
	format   string
	currency string
	output   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render a client's portfolio report" }
func (*reportCmd) Usage() string {
	return `wdctl report -c <client id> [-format md|json|html|pdf|xlsx] [-currency <code>] [-o <file>]

  Renders the client's portfolio report. Markdown without -o is shown in the
  terminal. Binary formats default to the standard report file name.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "c", "", "Client ID")
	f.StringVar(&c.format, "format", "md", "Output format: md, json, html, pdf or xlsx")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 currency code (default from configuration)")
	f.StringVar(&c.output, "o", "", "Output file")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.client == "" {
		fmt.Fprintln(os.Stderr, "Error: -c <client id> is required")
		return subcommands.ExitUsageError
	}
	format, err := report.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	repos, cfg, err := openRepos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeRepos(repos)

	svc := services.NewReportService(repos, time.Now, cfg)
	r, err := svc.BuildReport(c.client, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, r, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}

	out := c.output
	switch {
	case out == "" && format == report.FormatMarkdown:
		printMarkdown(buf.String())
		return subcommands.ExitSuccess
	case out == "" && (format == report.FormatPDF || format == report.FormatXLSX):
		out = svc.FileName(r, format)
	}
	if err := writeOutput(out, buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", out, err)
		return subcommands.ExitFailure
	}
	if out != "" && out != "-" {
		fmt.Printf("Wrote %s\n", out)
	}
	return subcommands.ExitSuccess
}
