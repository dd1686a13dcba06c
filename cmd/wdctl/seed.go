package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "load the example data into empty collections" }
func (*seedCmd) Usage() string {
	return `wdctl seed

  Writes the example clients, tasks, notes, folios and holdings into every
  collection that does not exist yet. Existing collections are left alone.
`
}

func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (*seedCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repos, _, err := openRepos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeRepos(repos)

	written, err := repos.Seed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding store: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(written) == 0 {
		fmt.Println("Nothing to seed: every collection already exists")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Seeded %s\n", strings.Join(written, ", "))
	return subcommands.ExitSuccess
}
