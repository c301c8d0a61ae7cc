// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mandelbench renders the Mandelbrot set with each escape-time
// kernel, times it, and checks that every kernel produced the same counts.
//
// Usage:
//
//	mandelbench -width 3200 -height 3200 -algorithm all -runs 3
//	mandelbench -algorithm wide8 -xmin -0.75 -xmax -0.74 -ymin 0.1 -ymax 0.11
//	HWY_NO_SIMD=1 mandelbench -v      # force the scalar dispatch level
//	mandelbench -algorithm dispatched -out counts.tiff
//
// For each algorithm it prints the best wall time over -runs renders, the
// throughput and a checksum of the counts. The exit status is 1 when two
// algorithms disagree and 2 for invalid arguments.
package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/ajroetker/hwy-mandelbrot/hwy"
	"github.com/ajroetker/hwy-mandelbrot/hwy/contrib/mandelbrot"
	"github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// config holds the parsed command line.
type config struct {
	dims       mandelbrot.Dimensions
	xr, yr     mandelbrot.Range
	algorithms []mandelbrot.Algorithm
	runs       int
	workers    int
	rowBatch   int
	verbose    bool
	out        string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("mandelbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var names []string
	for _, a := range mandelbrot.Algorithms() {
		names = append(names, a.String())
	}

	cfg := &config{}
	fs.IntVar(&cfg.dims.Width, "width", 3200, "Image width in pixels")
	fs.IntVar(&cfg.dims.Height, "height", 3200, "Image height in pixels")
	algorithm := fs.String("algorithm", "all", "Comma-separated algorithms ("+strings.Join(names, ",")+") or 'all'")
	fs.Float64Var(&cfg.xr.Start, "xmin", -2, "Real axis start")
	fs.Float64Var(&cfg.xr.End, "xmax", 1, "Real axis end")
	fs.Float64Var(&cfg.yr.Start, "ymin", -1.5, "Imaginary axis start")
	fs.Float64Var(&cfg.yr.End, "ymax", 1.5, "Imaginary axis end")
	fs.IntVar(&cfg.runs, "runs", 1, "Renders per algorithm; the fastest is reported")
	fs.IntVar(&cfg.workers, "workers", 0, "Worker pool size (0: GOMAXPROCS, -1: no pool)")
	fs.IntVar(&cfg.rowBatch, "rows", mandelbrot.DefaultRowBatch, "Rows claimed per scheduling step")
	fs.BoolVar(&cfg.verbose, "v", false, "Log debug records to stderr")
	fs.StringVar(&cfg.out, "out", "", "Dump the first algorithm's counts as a 16-bit gray .png or .tiff")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.runs < 1 {
		return nil, fmt.Errorf("-runs must be at least 1, got %d", cfg.runs)
	}

	if cfg.out != "" {
		if _, ok := encoders[strings.ToLower(filepath.Ext(cfg.out))]; !ok {
			return nil, fmt.Errorf("-out: unsupported image format %q", filepath.Ext(cfg.out))
		}
	}

	algs, err := parseAlgorithms(*algorithm)
	if err != nil {
		return nil, err
	}
	cfg.algorithms = algs
	return cfg, nil
}

// parseAlgorithms parses a comma-separated algorithm list, keeping the
// first occurrence of each.
func parseAlgorithms(s string) ([]mandelbrot.Algorithm, error) {
	if strings.TrimSpace(s) == "all" {
		return mandelbrot.Algorithms(), nil
	}
	var algs []mandelbrot.Algorithm
	for name := range strings.SplitSeq(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		a, err := mandelbrot.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(algs, a) {
			algs = append(algs, a)
		}
	}
	if len(algs) == 0 {
		return nil, fmt.Errorf("no algorithms specified")
	}
	return algs, nil
}

// result is one algorithm's measurement.
type result struct {
	alg      mandelbrot.Algorithm
	best     time.Duration
	checksum uint64
	counts   []uint32
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.verbose {
		mandelbrot.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer mandelbrot.SetLogger(nil)
	}

	// Reject every unsuitable size up front instead of panicking mid-run.
	for _, a := range cfg.algorithms {
		if err := mandelbrot.Validate(a, cfg.dims); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}

	var pool *workerpool.Pool
	if cfg.workers >= 0 {
		n := cfg.workers
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		pool = workerpool.New(n)
		defer pool.Close()
	}

	fmt.Fprintf(stdout, "mandelbrot %dx%d  x=[%g, %g]  y=[%g, %g]  simd=%s  dispatched lanes=%d\n",
		cfg.dims.Width, cfg.dims.Height, cfg.xr.Start, cfg.xr.End, cfg.yr.Start, cfg.yr.End,
		hwy.CurrentName(), mandelbrot.DispatchedLanes())

	results := make([]result, 0, len(cfg.algorithms))
	for _, a := range cfg.algorithms {
		r := measure(cfg, pool, a)
		mpix := float64(cfg.dims.Pixels()) / r.best.Seconds() / 1e6
		fmt.Fprintf(stdout, "%-10s  %-8s  %12v  %9.2f Mpixel/s  checksum %016x\n",
			a, mandelbrot.Backend(a), r.best, mpix, r.checksum)
		results = append(results, r)
	}

	if cfg.out != "" {
		if err := writeImage(cfg.out, results[0].counts, cfg.dims); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", cfg.out)
	}

	if mismatches := compare(results, stderr); mismatches > 0 {
		fmt.Fprintf(stderr, "Error: %d algorithm(s) disagree with %s\n", mismatches, results[0].alg)
		return 1
	}
	if len(results) > 1 {
		fmt.Fprintf(stdout, "all %d algorithms agree\n", len(results))
	}
	return 0
}

// measure renders cfg.runs times with alg and keeps the fastest run.
func measure(cfg *config, pool *workerpool.Pool, alg mandelbrot.Algorithm) result {
	gen := mandelbrot.New(
		mandelbrot.WithAlgorithm(alg),
		mandelbrot.WithPool(pool),
		mandelbrot.WithRowBatch(cfg.rowBatch),
	)
	r := result{alg: alg, best: time.Duration(1<<63 - 1)}
	for range cfg.runs {
		start := time.Now()
		counts := gen.Generate(cfg.dims, cfg.xr, cfg.yr)
		r.best = min(r.best, time.Since(start))
		r.counts = counts
	}
	r.checksum = checksum(r.counts)
	return r
}

// checksum hashes counts with 64-bit FNV-1a over their little-endian bytes.
func checksum(counts []uint32) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, c := range counts {
		buf[0], buf[1], buf[2], buf[3] = byte(c), byte(c>>8), byte(c>>16), byte(c>>24)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// compare reports every result that differs from the first one and
// returns how many did.
func compare(results []result, stderr io.Writer) int {
	if len(results) < 2 {
		return 0
	}
	ref := results[0]
	var mismatches int
	for _, r := range results[1:] {
		i := firstDiff(ref.counts, r.counts)
		if i < 0 {
			continue
		}
		mismatches++
		fmt.Fprintf(stderr, "%s: first difference at pixel %d: got %d, %s has %d\n",
			r.alg, i, r.counts[i], ref.alg, ref.counts[i])
	}
	return mismatches
}

// firstDiff returns the index of the first differing count, or -1.
// Both slices come from the same dimensions.
func firstDiff(a, b []uint32) int {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
