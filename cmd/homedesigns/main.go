package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/homedesigns/internal/cli"
	"github.com/alexanderramin/homedesigns/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{
		Config: cfg,
		Stdin:  os.Stdin,
		Stderr: os.Stderr,
	}

	// Prompts fall back to accessible mode when stdin is not a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
