// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/stochrank/internal/config"
	"github.com/katalvlaran/stochrank/markov"
	"github.com/katalvlaran/stochrank/sampler"
)

type textFlags struct {
	common  commonFlags
	corpus  string
	order   int
	length  int
	samples int
	seed    uint64
}

func (f *textFlags) register(fs *flag.FlagSet, withOrder bool, defaultLength int) {
	d := config.DefaultConfig().Markov
	f.common.register(fs)
	fs.StringVar(&f.corpus, "corpus", "", "training text file (required)")
	fs.IntVar(&f.length, "length", defaultLength, "generated length")
	fs.IntVar(&f.samples, "samples", d.Samples, "number of generated samples")
	fs.Uint64Var(&f.seed, "seed", d.Seed, "random seed (0 selects the default seed)")
	if withOrder {
		fs.IntVar(&f.order, "order", d.Order, "characters of context")
	}
}

func (f *textFlags) apply(set map[string]bool, words bool) func(*config.Config) {
	return func(cfg *config.Config) {
		m := &cfg.Markov
		if set["length"] {
			if words {
				m.WordLength = f.length
			} else {
				m.CharLength = f.length
			}
		}
		if set["samples"] {
			m.Samples = f.samples
		}
		if set["seed"] {
			m.Seed = f.seed
		}
		if set["order"] {
			m.Order = f.order
		}
	}
}

// parseText is the flag prologue shared by words and chars.
func parseText(name string, args []string, stderr io.Writer, words bool) (*textFlags, *config.Config, *zap.Logger, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	d := config.DefaultConfig().Markov
	f := &textFlags{}
	if words {
		f.register(fs, false, d.WordLength)
	} else {
		f.register(fs, true, d.CharLength)
	}
	if code, ok := parseFlags(fs, args); !ok {
		return nil, nil, nil, code
	}
	if f.corpus == "" {
		fmt.Fprintf(stderr, "stochrank %s: -corpus is required\n", name)
		return nil, nil, nil, exitUsage
	}

	cfg, logger, code := setup(name, fs, f.common, stderr, f.apply(setFlags(fs), words))
	if code != exitOK {
		return nil, nil, nil, code
	}

	return f, cfg, logger, exitOK
}

func runWords(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, cfg, logger, code := parseText("words", args, stderr, true)
	if code != exitOK {
		return code
	}
	defer func() { _ = logger.Sync() }()

	file, err := os.Open(f.corpus)
	if err != nil {
		logger.Error("open corpus", zap.Error(err))
		return exitFailure
	}
	defer file.Close()

	chain, err := markov.NewWordChain(sampler.NewSource(cfg.Markov.Seed))
	if err != nil {
		logger.Error("word chain", zap.Error(err))
		return exitFailure
	}
	if err = chain.Train(file); err != nil {
		logger.Error("train", zap.String("corpus", f.corpus), zap.Error(err))
		return exitFailure
	}
	logger.Debug("word chain trained", zap.Int("words", chain.Len()))

	for i := 0; i < cfg.Markov.Samples; i++ {
		if ctx.Err() != nil {
			logger.Error("interrupted", zap.Error(ctx.Err()))
			return exitFailure
		}
		start, _ := chain.RandomStart()
		fmt.Fprintln(stdout, strings.Join(chain.Generate(start, cfg.Markov.WordLength), " "))
	}

	return exitOK
}

func runChars(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, cfg, logger, code := parseText("chars", args, stderr, false)
	if code != exitOK {
		return code
	}
	defer func() { _ = logger.Sync() }()

	data, err := os.ReadFile(f.corpus)
	if err != nil {
		logger.Error("read corpus", zap.Error(err))
		return exitFailure
	}

	chain, err := markov.NewCharChain(cfg.Markov.Order, sampler.NewSource(cfg.Markov.Seed))
	if err != nil {
		logger.Error("char chain", zap.Error(err))
		return exitFailure
	}
	if err = chain.Train(string(data)); err != nil {
		logger.Error("train", zap.String("corpus", f.corpus), zap.Error(err))
		return exitFailure
	}
	logger.Debug("char chain trained", zap.Int("windows", chain.Len()), zap.Int("order", chain.Order()))

	for i := 0; i < cfg.Markov.Samples; i++ {
		if ctx.Err() != nil {
			logger.Error("interrupted", zap.Error(ctx.Err()))
			return exitFailure
		}
		start, _ := chain.RandomStart()
		text, err := chain.Generate(start, cfg.Markov.CharLength)
		if err != nil {
			logger.Error("generate", zap.Error(err))
			return exitFailure
		}
		fmt.Fprintln(stdout, text)
	}

	return exitOK
}
