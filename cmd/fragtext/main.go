// Package main is the entry point for the fragtext inspector.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/fragtext/internal/config"
	"github.com/dshills/fragtext/internal/engine/fragment"
	"github.com/dshills/fragtext/internal/inspect"
	"github.com/dshills/fragtext/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, config.DefaultFS(), os.LookupEnv))
}

// fileList collects repeated -f flags.
type fileList []string

func (f *fileList) String() string {
	return strings.Join(*f, ",")
}

func (f *fileList) Set(s string) error {
	*f = append(*f, s)
	return nil
}

type options struct {
	configPath  string
	logLevel    string
	policy      string
	quote       bool
	offsets     bool
	files       fileList
	showVersion bool
}

// run executes the CLI and returns the process exit code:
// 0 on success, 1 on failure, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer, fsys config.FileSystem, lookup func(string) (string, bool)) int {
	var opts options
	flags := flag.NewFlagSet("fragtext", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flags.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.policy, "policy", "", "Malformed UTF-8 policy (strict, replace, skip)")
	flags.BoolVar(&opts.quote, "quote", false, "Print text results quoted")
	flags.BoolVar(&opts.offsets, "offsets", true, "Print offsets next to bytes and runes")
	flags.Var(&opts.files, "f", "Read a fragment from file (repeatable)")
	flags.BoolVar(&opts.showVersion, "version", false, "Show version information")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "fragtext - inspect text split across fragments\n\n")
		fmt.Fprintf(stderr, "Usage: fragtext [options] <command> [args...] [-- fragment...]\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		for _, line := range inspect.Commands() {
			fmt.Fprintf(stderr, "  %s\n", line)
		}
		fmt.Fprintf(stderr, "\nOptions:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fragtext render -- 'hello ' world\n")
		fmt.Fprintf(stderr, "  fragtext locate 6 -- 'hello ' world\n")
		fmt.Fprintf(stderr, "  fragtext -policy replace -f part1.txt -f part2.txt runes\n")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "fragtext %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(fsys, opts.configPath, config.NewEnvLoaderWithLookup("FRAGTEXT_", lookup))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	applyFlags(flags, opts, &cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel(), Output: stderr, Prefix: "fragtext"})

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return 2
	}
	name := rest[0]
	cmdArgs, inline := splitArgs(rest[1:])

	frags, err := readFragments(fsys, opts.files)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	frags = append(frags, inline...)
	log.Debug("loaded %d fragment(s)", len(frags))

	in := inspect.New(fragment.New(frags), cfg, log, stdout)
	if err := in.Run(name, cmdArgs); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, inspect.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// applyFlags overrides configuration with flags given explicitly.
func applyFlags(flags *flag.FlagSet, opts options, cfg *config.Config) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Log.Level = opts.logLevel
		case "policy":
			cfg.Decode.Policy = config.Policy(opts.policy)
		case "quote":
			cfg.Output.Quote = opts.quote
		case "offsets":
			cfg.Output.Offsets = opts.offsets
		}
	})
}

// splitArgs separates command arguments from inline fragments at "--".
func splitArgs(args []string) (cmdArgs, fragments []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// readFragments loads one fragment per file, in order.
func readFragments(fsys config.FileSystem, paths []string) ([]string, error) {
	frags := make([]string, 0, len(paths))
	for _, p := range paths {
		data, err := fsys.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading fragment %s: %w", p, err)
		}
		frags = append(frags, string(data))
	}
	return frags, nil
}
