// Command cipherforge is the analyze/solve dispatcher (spec §6): the
// external collaborator that parses CLI flags, loads keys/input from disk,
// assembles a models.Config, and hands off to the engine or analyzer core.
//
// Grounded on cmd/engine/main.go's shape (parse configuration, wire it into
// the core, run, defer cleanup), with the flag surface itself sourced from
// github.com/urfave/cli (the pack's CLI-with-flags example, scode-saltybox).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/rawblock/cipherforge/internal/analyzer"
	"github.com/rawblock/cipherforge/internal/engine"
	"github.com/rawblock/cipherforge/internal/models"
)

func main() {
	app := cli.NewApp()
	app.Name = "cipherforge"
	app.Usage = "best-first cryptanalysis assistant: analyze or solve an opaque ciphertext"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "task", Usage: "A (analyze) or S (solve)"},
		cli.StringFlag{Name: "input", Usage: "inline ciphertext"},
		cli.StringFlag{Name: "input-file", Usage: "path to ciphertext file"},
		cli.IntFlag{Name: "probability", Value: 0, Usage: "per-hop fitness threshold percent for OUTPUT emission"},
		cli.IntFlag{Name: "english", Value: -1, Usage: "English-quality threshold percent; -1 disables English mode"},
		cli.StringFlag{Name: "monitor", Usage: "diagnostic substring tap on method strings"},
		cli.StringFlag{Name: "algorithms, a", Value: "common", Usage: `solver subset, csv or "common"`},
		cli.IntFlag{Name: "depth", Value: 1, Usage: "max search depth"},
		cli.StringSliceFlag{Name: "keys", Usage: "key (repeatable)"},
		cli.StringFlag{Name: "keyfile", Usage: "path to newline-delimited keys"},
		cli.StringFlag{Name: "crib", Usage: "early-exit marker substring"},
		cli.StringFlag{Name: "output", Usage: "path to mirror output records"},
		cli.BoolFlag{Name: "silent", Usage: "suppress auxiliary live view"},
		cli.IntFlag{Name: "timeout", Value: 10, Usage: "wall-clock timeout in seconds, 0 disables"},
		cli.IntFlag{Name: "heap-size", Value: 10000, Usage: "frontier pruning ceiling"},
		cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("cipherforge: %v", err)
	}
}

func run(c *cli.Context) error {
	task := strings.ToUpper(strings.TrimSpace(c.String("task")))
	if task != "A" && task != "S" {
		return cli.NewExitError("--task must be A or S", 1)
	}

	input, err := resolveInput(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	keys, err := resolveKeys(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	runID := models.NewRunID()
	if c.Bool("verbose") {
		log.Printf("[cipherforge] run=%s task=%s bytes=%d", runID, task, len(input))
	}

	if task == "A" {
		return runAnalyze(input)
	}

	cfg := models.Config{
		Task:               task,
		Input:              input,
		ProbabilityPercent: c.Int("probability"),
		EnglishPercent:     c.Int("english"),
		MonitorPath:        c.String("monitor"),
		Algorithms:         c.String("algorithms"),
		Depth:              c.Int("depth"),
		Keychain:           models.NewKeychain(keys),
		Crib:               c.String("crib"),
		OutputPath:         c.String("output"),
		Silent:             c.Bool("silent"),
		TimeoutSeconds:     c.Int("timeout"),
		MaxHeapSize:        c.Int("heap-size"),
		Verbose:            c.Bool("verbose"),
	}

	if _, err := engine.Solve(cfg); err != nil {
		return cli.NewExitError(fmt.Sprintf("solve failed: %v", err), 1)
	}
	return nil
}

func runAnalyze(input []byte) error {
	findings := analyzer.Analyze(input)
	if len(findings) == 0 {
		fmt.Println("no findings")
		return nil
	}
	for _, f := range findings {
		fmt.Printf("[%s] probability=%.2f %s\n", f.Label, f.Probability, f.Message)
	}
	return nil
}

func resolveInput(c *cli.Context) ([]byte, error) {
	if path := c.String("input-file"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading --input-file %q: %w", path, err)
		}
		return []byte(strings.TrimRight(string(raw), " \t\r\n")), nil
	}
	if input := c.String("input"); input != "" {
		return []byte(input), nil
	}
	return nil, fmt.Errorf("one of --input or --input-file is required")
}

func resolveKeys(c *cli.Context) ([]string, error) {
	keys := append([]string(nil), c.StringSlice("keys")...)

	if path := c.String("keyfile"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading --keyfile %q: %w", path, err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				keys = append(keys, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("scanning --keyfile %q: %w", path, err)
		}
	}

	// Flatten any "|"-joined key flag back into its individual keys, per §6.
	var flat []string
	for _, k := range keys {
		flat = append(flat, strings.Split(k, "|")...)
	}
	return flat, nil
}
