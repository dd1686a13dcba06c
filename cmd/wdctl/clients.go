package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

type exportClientsCmd struct {
	search string
	status string
	output string
}

func (*exportClientsCmd) Name() string     { return "export-clients" }
func (*exportClientsCmd) Synopsis() string { return "write clients as CSV" }
func (*exportClientsCmd) Usage() string {
	return `wdctl export-clients [-search <text>] [-status <status>] [-o <file>]

  Writes the matching clients as CSV to the file, or to stdout.
`
}

func (c *exportClientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Case-insensitive match on name, company or email")
	f.StringVar(&c.status, "status", "", "Only clients with this status (Lead, Active, Inactive, Churned)")
	f.StringVar(&c.output, "o", "", "Output file (default stdout)")
}

func (c *exportClientsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := services.ClientFilter{Search: c.search}
	if c.status != "" {
		st, err := models.ParseClientStatus(c.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.Status = &st
	}

	repos, _, err := openRepos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeRepos(repos)

	out, err := services.NewClientService(repos).ExportClients(filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting clients: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeOutput(c.output, []byte(out+"\n")); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importClientsCmd struct {
	input string
}

func (*importClientsCmd) Name() string     { return "import-clients" }
func (*importClientsCmd) Synopsis() string { return "add clients from a CSV file" }
func (*importClientsCmd) Usage() string {
	return `wdctl import-clients [-f <file>]

  Adds one client per CSV row. Rows without a name, company or email are
  skipped. Reads stdin when no file is given.
`
}

func (c *importClientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "f", "", "CSV file to import (default stdin)")
}

func (c *importClientsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		data []byte
		err  error
	)
	if c.input == "" || c.input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.input)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	repos, _, err := openRepos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeRepos(repos)

	result, err := services.NewClientService(repos).ImportClients(cliActor(), string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing clients: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d client(s), skipped %d row(s)\n", result.Imported, result.Skipped)
	return subcommands.ExitSuccess
}
