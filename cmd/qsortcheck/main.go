// Copyright 2025 go-quicksorts Authors
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

// Command qsortcheck cross-validates the quicksorts sort kinds against
// slices.SortFunc and prints the timings of both.
//
// Usage:
//
//	qsortcheck [flags] [kind...]
//	qsortcheck -kind unstable_qsort,typed -pattern random -max 100000
//	qsortcheck -plan plan.yaml -json
//
// Each kind is run over every selected pattern at sizes 0, 1, 10, 100, ...
// up to -max. Big kinds stop at 10000 records. For every case the text
// report prints
//
//	  reference:<seconds>  ours:<seconds>  <size>
//
// under the pattern's heading. On the first disagreement qsortcheck prints
// "CHECK failed" with the offending case and exits with status 1.
//
// A plan file is YAML with any of the keys kinds, patterns, max, seed and
// workers. Flags given on the command line override the plan.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ajroetker/go-quicksorts/quicksorts/contrib/check"
	"github.com/ajroetker/go-quicksorts/quicksorts/contrib/workerpool"
	"github.com/samber/lo"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	kindList    = flag.String("kind", "all", "Comma-separated sort kinds ("+strings.Join(check.Kinds(), ",")+") or 'all'")
	patternList = flag.String("pattern", "all", "Comma-separated input patterns or 'all'")
	maxSize     = flag.Int("max", 1000000, "Largest array size to check")
	seed        = flag.Uint64("seed", 1, "Seed for the random patterns")
	workers     = flag.Int("workers", 0, "Worker goroutines (default: GOMAXPROCS)")
	planFile    = flag.String("plan", "", "YAML run plan `file`")
	jsonOut     = flag.Bool("json", false, "Write results as JSON instead of text")
)

var errCheckFailed = errors.New("CHECK failed")

// runPlan is the YAML form of a run.
type runPlan struct {
	Kinds    []string `yaml:"kinds"`
	Patterns []string `yaml:"patterns"`
	Max      int      `yaml:"max"`
	Seed     uint64   `yaml:"seed"`
	Workers  int      `yaml:"workers"`
}

// options is a fully resolved run.
type options struct {
	kinds    []string
	patterns []check.Pattern
	max      int
	seed     uint64
	workers  int
	json     bool
}

func main() {
	log.SetPrefix("qsortcheck: ")
	log.SetFlags(0)
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var plan runPlan
	if *planFile != "" {
		p, err := loadPlan(*planFile)
		if err != nil {
			log.Fatal(err)
		}
		plan = p
	}
	if flag.NArg() > 0 {
		*kindList = strings.Join(flag.Args(), ",")
		set["kind"] = true
	}

	opts, err := resolve(plan, set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Print(err)
		stop()
		os.Exit(1)
	}
}

func loadPlan(path string) (runPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return runPlan{}, err
	}
	defer f.Close()
	return decodePlan(f)
}

func decodePlan(r io.Reader) (runPlan, error) {
	var p runPlan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return runPlan{}, fmt.Errorf("decoding plan: %w", err)
	}
	return p, nil
}

// resolve merges the plan with the flags. A flag named in set was given on
// the command line and wins over the plan.
func resolve(plan runPlan, set map[string]bool) (options, error) {
	kinds, patterns := *kindList, *patternList
	if !set["kind"] && len(plan.Kinds) > 0 {
		kinds = strings.Join(plan.Kinds, ",")
	}
	if !set["pattern"] && len(plan.Patterns) > 0 {
		patterns = strings.Join(plan.Patterns, ",")
	}

	opts := options{max: *maxSize, seed: *seed, workers: *workers, json: *jsonOut}
	if !set["max"] && plan.Max > 0 {
		opts.max = plan.Max
	}
	if !set["seed"] && plan.Seed != 0 {
		opts.seed = plan.Seed
	}
	if !set["workers"] && plan.Workers > 0 {
		opts.workers = plan.Workers
	}
	if opts.max < 0 {
		return options{}, fmt.Errorf("-max must not be negative, got %d", opts.max)
	}

	var err error
	if opts.kinds, err = check.ParseKinds(kinds); err != nil {
		return options{}, err
	}
	if opts.patterns, err = check.ParsePatterns(patterns); err != nil {
		return options{}, err
	}
	return opts, nil
}

// run checks every kind concurrently and writes the report to w. It
// returns an error wrapping errCheckFailed if any case failed.
func run(ctx context.Context, opts options, w io.Writer) error {
	pool := workerpool.New(opts.workers)
	defer pool.Close()

	sizes := check.Sizes(opts.max)
	results := make([][]check.Result, len(opts.kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range opts.kinds {
		g.Go(func() error {
			log.Printf("checking %s", kind)
			results[i] = check.RunAll(gctx, pool, kind, opts.patterns, sizes, opts.seed)
			if r, failed := lo.Find(results[i], check.Result.Failed); failed {
				return fmt.Errorf("%w: %s %s size %d: %s", errCheckFailed, r.Kind, r.Pattern, r.Size, r.Error)
			}
			return nil
		})
	}
	err := g.Wait()

	var werr error
	if opts.json {
		werr = writeJSON(w, lo.Flatten(results))
	} else {
		werr = writeText(w, opts.kinds, results)
	}
	return errors.Join(err, werr)
}

func writeText(w io.Writer, kinds []string, results [][]check.Result) error {
	for i, kind := range kinds {
		if _, err := fmt.Fprintf(w, "%s\n", kind); err != nil {
			return err
		}
		var heading check.Pattern
		for _, r := range results[i] {
			if r.Pattern != heading {
				heading = r.Pattern
				if _, err := fmt.Fprintf(w, "%s\n", heading.Heading()); err != nil {
					return err
				}
			}
			var err error
			if r.Failed() {
				_, err = fmt.Fprintf(w, "  failed: %s  %d\n", r.Error, r.Size)
			} else {
				_, err = fmt.Fprintf(w, "  reference:%f  ours:%f  %d\n", r.ReferenceSeconds, r.OursSeconds, r.Size)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []check.Result) error {
	if results == nil {
		results = []check.Result{}
	}
	data, err := sonnet.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
