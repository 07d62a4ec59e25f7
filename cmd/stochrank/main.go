// SPDX-License-Identifier: MIT

// Command stochrank ranks a synthetic random graph by PageRank and generates
// Markov-chain text.
//
//	stochrank rank  [flags]   rank n nodes, print the top entries
//	stochrank words [flags]   word-level Markov text from -corpus
//	stochrank chars [flags]   character-level Markov text from -corpus
//
// Results go to stdout, logs to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/stochrank/internal/config"
	"github.com/katalvlaran/stochrank/internal/logging"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 2
	exitNotConverged = 3
)

// errUsage marks bad invocations (exit 2).
var errUsage = errors.New("usage error")

const usage = `usage: stochrank <command> [flags]

commands:
  rank    rank the nodes of a random graph by PageRank
  words   generate text from a word-level Markov chain
  chars   generate text from a character-level Markov chain

Run "stochrank <command> -h" for command flags.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// command is one subcommand; it returns an exit code.
type command func(ctx context.Context, args []string, stdout, stderr io.Writer) int

var commands = map[string]command{
	"rank":  runRank,
	"words": runWords,
	"chars": runChars,
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	switch args[0] {
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}

	return cmd(ctx, args[1:], stdout, stderr)
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML config file (default $"+config.EnvConfigPath+" or ./"+config.DefaultConfigFile+")")
	fs.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&c.logFormat, "log-format", "", "log format: console, json")
}

// parseFlags parses args and maps flag errors to exit codes. It returns
// ok=false when the caller should exit with code.
func parseFlags(fs *flag.FlagSet, args []string) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK, false
		}
		return exitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		return exitUsage, false
	}

	return exitOK, true
}

// setFlags returns the names of flags given explicitly on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return set
}

// loadConfig reads the config file and applies the explicitly set common flags.
// apply overlays command-specific flags before validation.
func loadConfig(c commonFlags, set map[string]bool, apply func(*config.Config)) (*config.Config, string, error) {
	cfg, path, err := config.Load(c.configPath)
	if err != nil {
		return nil, path, err
	}
	if set["log-level"] {
		cfg.Log.Level = c.logLevel
	}
	if set["log-format"] {
		cfg.Log.Format = c.logFormat
	}
	apply(cfg)
	if err = cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("%w: %w", errUsage, err)
	}

	return cfg, path, nil
}

// newLogger builds the command logger tagged with a fresh run id.
func newLogger(cfg *config.Config, command, configPath string) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()), zap.String("command", command))
	if configPath != "" {
		logger.Debug("config loaded", zap.String("path", configPath))
	}

	return logger, nil
}

// setup is the shared prologue of every command: config, overrides, logger.
func setup(name string, fs *flag.FlagSet, common commonFlags, stderr io.Writer, apply func(*config.Config)) (*config.Config, *zap.Logger, int) {
	cfg, path, err := loadConfig(common, setFlags(fs), apply)
	if err != nil {
		fmt.Fprintf(stderr, "stochrank %s: %v\n", name, err)
		if errors.Is(err, errUsage) {
			return nil, nil, exitUsage
		}
		return nil, nil, exitFailure
	}
	logger, err := newLogger(cfg, name, path)
	if err != nil {
		fmt.Fprintf(stderr, "stochrank %s: %v\n", name, err)
		return nil, nil, exitFailure
	}

	return cfg, logger, exitOK
}
