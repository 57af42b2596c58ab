package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wasmlab/greetmem/host"
)

func main() {
	var (
		salutation  = flag.String("salutation", "Ahoy there", "Salutation to write into the guest (max 16 bytes)")
		name        = flag.String("name", "Testy McTestface", "Name to write into the guest (max 16 bytes)")
		list        = flag.Bool("list", false, "List guest exports and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		host.SetLogger(logger)
		defer logger.Sync()
	}

	if *list {
		fmt.Println("Guest exports:")
		for _, sig := range host.Exports() {
			fmt.Printf("  %s\n", sig)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*salutation, *name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var messageStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#98FB98"))

func run(salutation, name string) error {
	ctx := context.Background()

	rt, err := host.New(ctx)
	if err != nil {
		return fmt.Errorf("create runtime: %w", err)
	}
	defer rt.Close(ctx)

	g, err := rt.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("instantiate: %w", err)
	}
	defer g.Close(ctx)

	msg, err := g.Greet(ctx, salutation, name)
	if err != nil {
		return err
	}

	fmt.Println(messageStyle.Render(msg))
	return nil
}
