// Command wdctl is the operator CLI: it reads and writes the same store as the
// API server.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"wealthdesk/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&exportClientsCmd{}, "clients")
	commander.Register(&importClientsCmd{}, "clients")
	commander.Register(&reportCmd{}, "reports")
	commander.Register(&summaryCmd{}, "reports")
	commander.Register(&seedCmd{}, "store")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
