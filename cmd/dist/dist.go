// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dist evaluates a scalar distribution over newline-separated
// numbers read from stdin, or draws from it.
//
// Usage:
//
//	dist -dist name -op d|p|q|r -params 'name=v,v;name=v' [flags]
//
// Parameters are given as semicolon-separated name=value lists and are
// recycled over the input. The value NA is read as a missing value.
// For -op r, stdin is not read and -n values are drawn.
//
// Distributions and their parameters:
//
//	exp         rate
//	invgamma    shape, rate
//	t           df, mu (default 0), sigma (default 1)
//	cat         prob (d and r only)
//	interval    t, c (d and r; r recycles t over -n values)
//	constraint  cond (d and r only)
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/nimble-go/nimdist/linalg"
	"github.com/nimble-go/nimdist/nimble"
	"github.com/nimble-go/nimdist/rng"
	"github.com/nimble-go/nimdist/validity"
)

var errUsage = errors.New("usage")

type config struct {
	dist    string
	op      string
	params  map[string][]float64
	giveLog bool
	tail    nimble.Tail
	n       int
	seed    uint64
	rng     string
}

func main() {
	var (
		distName = flag.String("dist", "", "distribution `name`")
		op       = flag.String("op", "d", "operation: d (density), p (distribution), q (quantile) or r (random)")
		params   = flag.String("params", "", "parameters as `name=v,v;name=v`")
		giveLog  = flag.Bool("log", false, "report densities on the log scale")
		upper    = flag.Bool("upper", false, "use the upper tail for p and q")
		logP     = flag.Bool("logp", false, "probabilities for p and q are on the log scale")
		n        = flag.Int("n", 1, "number of draws for -op r")
		seed     = flag.Uint64("seed", 1, "random seed for -op r")
		source   = flag.String("rng", "pcg", "random source: pcg or mt")
		backend  = flag.String("backend", "blas", "linear algebra backend: blas or native")
		verbose  = flag.Bool("v", false, "log at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := setBackend(*backend); err != nil {
		logger.Error("bad flag", "error", err)
		os.Exit(2)
	}
	ps, err := parseParams(*params)
	if err != nil {
		logger.Error("bad -params", "error", err)
		os.Exit(2)
	}
	cfg := config{
		dist:    *distName,
		op:      *op,
		params:  ps,
		giveLog: *giveLog,
		tail:    nimble.Tail{Upper: *upper, Log: *logP},
		n:       *n,
		seed:    *seed,
		rng:     *source,
	}
	logger.Debug("config", "dist", cfg.dist, "op", cfg.op, "params", cfg.params, "backend", *backend)

	var xs []float64
	if cfg.op != "r" {
		xs, err = readInput(os.Stdin)
		if err != nil {
			logger.Error("reading input", "error", err)
			os.Exit(1)
		}
		logger.Debug("read input", "n", len(xs))
	}

	out, err := run(cfg, xs)
	if errors.Is(err, errUsage) {
		logger.Error(err.Error())
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("evaluation failed", "dist", cfg.dist, "op", cfg.op, "error", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, v := range out {
		fmt.Fprintln(w, validity.Of(v))
	}
	if err := w.Flush(); err != nil {
		logger.Error("writing output", "error", err)
		os.Exit(1)
	}
}

func setBackend(name string) error {
	switch name {
	case "blas":
		linalg.Use(linalg.BLAS{})
	case "native":
		linalg.Use(linalg.Native{})
	default:
		return fmt.Errorf("unknown backend %q", name)
	}
	return nil
}

func newStream(name string, seed uint64) (*rng.Stream, error) {
	switch name {
	case "pcg":
		return rng.NewPCG(seed), nil
	case "mt":
		return rng.NewMT19937(seed), nil
	}
	return nil, fmt.Errorf("%w: unknown random source %q", errUsage, name)
}

// parseNumber parses s, reading "NA" as the missing value.
func parseNumber(s string) (float64, error) {
	v, w, err := scalar.ParseWithNA(strings.TrimSpace(s), "NA")
	if err != nil {
		return 0, err
	}
	if w == 0 {
		return validity.NA, nil
	}
	return v, nil
}

func parseParams(s string) (map[string][]float64, error) {
	ps := make(map[string][]float64)
	for _, field := range strings.Split(s, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, list, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q has no value", field)
		}
		var vs []float64
		for _, item := range strings.Split(list, ",") {
			v, err := parseNumber(item)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", name, err)
			}
			vs = append(vs, v)
		}
		ps[strings.TrimSpace(name)] = vs
	}
	return ps, nil
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		v, err := parseNumber(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, v)
	}
	return xs, scanner.Err()
}
