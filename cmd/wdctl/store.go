package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"

	"wealthdesk/internal/config"
	"wealthdesk/internal/models"
	"wealthdesk/internal/repository"
	"wealthdesk/internal/services"
	"wealthdesk/internal/storage"
)

var operator = flag.String("as", "admin", "Name recorded as the owner of created records")

// openRepos opens the configured store without seeding it.
func openRepos() (*repository.Repositories, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return repository.New(store, time.Now), cfg, nil
}

func closeRepos(repos *repository.Repositories) {
	if err := repos.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing store: %v\n", err)
	}
}

// cliActor is the admin the CLI acts as.
func cliActor() services.Actor {
	return services.Actor{Email: "cli@localhost", Name: *operator, Role: models.RoleAdmin}
}

// printMarkdown renders md for the terminal, or prints it raw if rendering
// fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
