// eagercheck lints an eager-load mapping configuration file without
// needing the Go types it refers to: malformed property references,
// properties mapped more than once within a profile, and empty
// profiles.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/go-eager/eager/mapcfg"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	app := &cli.App{
		Name:      "eagercheck",
		Usage:     "Lint an eager-load mapping configuration file",
		UsageText: "eagercheck [-c FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "eager.yaml",
				Usage:   "Load configuration from `FILE`",
			},
		},
		Action: run,
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := mapcfg.Load(c.String("config"))
	if err != nil {
		return err
	}

	if findings := cfg.Lint(); len(findings) > 0 {
		for _, finding := range findings {
			fmt.Fprintln(os.Stderr, finding)
		}
		return cli.Exit(fmt.Sprintf("%d problem(s) found", len(findings)), 1)
	}

	for _, line := range summarize(cfg) {
		fmt.Println(line)
	}

	return nil
}

// summarize renders one line per profile.
func summarize(cfg mapcfg.Config) []string {
	lines := make([]string, 0, len(cfg.Profiles)+1)

	total := 0
	for _, name := range sortedNames(cfg.Profiles) {
		n := len(cfg.Profiles[name])
		total += n
		lines = append(lines, fmt.Sprintf("profile %s: %d mapping(s)", name, n))
	}
	lines = append(lines, fmt.Sprintf("%d profile(s), %d mapping(s), no problems", len(cfg.Profiles), total))

	return lines
}

func sortedNames(profiles map[string][]mapcfg.MappingDef) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
