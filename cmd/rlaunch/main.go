package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rlaunch/internal/app"
	"github.com/kk-code-lab/rlaunch/internal/config"
	"github.com/kk-code-lab/rlaunch/internal/search"
	"github.com/kk-code-lab/rlaunch/internal/shellsetup"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `rlaunch - Terminal application launcher

USAGE:
    rlaunch [OPTIONS]

OPTIONS:
    -h, --help            Show this help message and exit
    -q, --query QUERY     Print matching shortcuts and exit
    -c, --config PATH     Read configuration from PATH
        --json            With --query, print one JSON object per line
    -l, --launch          With --query, open the first match
    -s, --setup [SHELL]   Print a shell snippet binding Alt+Space to rlaunch

ENVIRONMENT:
    RLAUNCH_ROOTS         Shortcut directories, separated by the OS path list separator
    RLAUNCH_EXT           Shortcut extension (e.g. .lnk, .desktop)
    RLAUNCH_LIMIT         Maximum number of results
    RLAUNCH_OPENER        Command used to open a shortcut
    RLAUNCH_DEBUG=1       Write debug log to the temp directory
`)
}

var errHelp = errors.New("help requested")

var parentShellDetector = shellsetup.DetectParentShellName

type cliOptions struct {
	query      string
	queryMode  bool
	configPath string
	json       bool
	launch     bool
	setup      bool
	setupShell string
}

func parseArgs(args []string) (cliOptions, error) {
	var opts cliOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := func(name string) (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", name)
			}
			i++
			return args[i], nil
		}

		var err error
		switch {
		case arg == "-h" || arg == "--help":
			return opts, errHelp
		case arg == "-q" || arg == "--query":
			opts.query, err = value(arg)
			opts.queryMode = true
		case strings.HasPrefix(arg, "--query="):
			opts.query = strings.TrimPrefix(arg, "--query=")
			opts.queryMode = true
		case arg == "-c" || arg == "--config":
			opts.configPath, err = value(arg)
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case arg == "-s" || arg == "--setup":
			opts.setup = true
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				opts.setupShell = args[i]
			}
		case strings.HasPrefix(arg, "--setup="):
			opts.setup = true
			opts.setupShell = strings.TrimPrefix(arg, "--setup=")
		case arg == "--json":
			opts.json = true
		case arg == "-l" || arg == "--launch":
			opts.launch = true
		default:
			return opts, fmt.Errorf("unknown option %q", arg)
		}
		if err != nil {
			return opts, err
		}
	}

	if (opts.json || opts.launch) && !opts.queryMode {
		return opts, errors.New("--json and --launch require --query")
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if errors.Is(err, errHelp) {
		printHelp(stdout)
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printHelp(stderr)
		return exitUsage
	}

	if opts.setup {
		shellsetup.PrintSetup(stdout, opts.setupShell, shellsetup.Config{DetectParent: parentShellDetector})
		return exitOK
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return exitError
	}

	logger, closeLog := apppkg.NewLogger(os.Getenv)
	defer func() {
		_ = closeLog()
	}()
	logger.Debug("config_loaded",
		slog.String("source", cfg.Source),
		slog.Any("roots", cfg.Roots),
		slog.String("extension", cfg.Extension),
	)

	searcher := cfg.NewSearcher(logger)

	if opts.queryMode {
		results := searcher.Search(opts.query, cfg.Roots)
		if err := printResults(stdout, results, opts.json); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		if opts.launch {
			if len(results) == 0 {
				fmt.Fprintf(stderr, "No shortcut matches %q\n", opts.query)
				return exitError
			}
			if err := apppkg.DetectOpener().Open(results[0].Location); err != nil {
				fmt.Fprintf(stderr, "Error launching %s: %v\n", results[0].DisplayName, err)
				return exitError
			}
		}
		return exitOK
	}

	// Set UTF-8 as fallback encoding so non-ASCII shortcut names render.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(apppkg.Options{
		Searcher: searcher,
		Roots:    cfg.Roots,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing application: %v\n", err)
		return exitError
	}
	app.Run()
	_ = app.Close()

	if launched := app.Launched(); launched != "" {
		fmt.Fprintln(stdout, launched)
	}
	return exitOK
}

var (
	colorName     = color.New(color.Bold)
	colorIcon     = color.New(color.Faint)
	colorLocation = color.New(color.FgCyan)
)

func printResults(w io.Writer, results []search.SearchResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
		}
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(w, "%s %s  %s\n",
			colorIcon.Sprintf("[%s]", r.IconRef),
			colorName.Sprint(r.DisplayName),
			colorLocation.Sprint(r.Location),
		)
	}
	return nil
}
