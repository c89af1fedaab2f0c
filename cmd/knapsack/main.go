// Command knapsack solves 0/1 knapsack instances from files or generates
// random ones.
//
//	knapsack [-algo dp|bb] [-tolerance e] [-format json|yaml] [-parallel n] [-v] file...
//	knapsack -gen n [-count k] [-seed s] [-ratio r] [-correlated] [-algo ...]
//
// Every file (or generated instance) is an independent solver call; up to
// -parallel calls run at once. Reports are printed in input order.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/knapsack"
)

// config holds the parsed command line.
type config struct {
	algo         knapsack.Algorithm
	tolerance    float64
	toleranceSet bool
	format       instance.Format
	parallel     int
	verbose      bool

	gen        int
	count      int
	seed       int64
	ratio      float64
	correlated bool

	files []string
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	log, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	knapsack.SetLogger(log.Named("solver"))

	if err := run(context.Background(), cfg, os.Stdout, log); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

// parseFlags parses args into a config. Usage and parse errors go to errOut.
func parseFlags(args []string, errOut io.Writer) (config, error) {
	var (
		cfg    config
		fs     = flag.NewFlagSet("knapsack", flag.ContinueOnError)
		algo   = fs.String("algo", "dp", "Solver: dp (dynamic programming) or bb (branch-and-bound)")
		format = fs.String("format", "json", "Output format: json or yaml")
	)
	fs.SetOutput(errOut)
	fs.Float64Var(&cfg.tolerance, "tolerance", 0, "Branch-and-bound tolerance in [0,1); overrides the instance file")
	fs.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "Maximum instances solved at once")
	fs.BoolVar(&cfg.verbose, "v", false, "Debug logging")
	fs.IntVar(&cfg.gen, "gen", 0, "Generate random instances with this many items instead of reading files")
	fs.IntVar(&cfg.count, "count", 1, "Number of generated instances")
	fs.Int64Var(&cfg.seed, "seed", 0, "Generator seed (0 = default)")
	fs.Float64Var(&cfg.ratio, "ratio", 0.5, "Generated capacity as a fraction of total weight")
	fs.BoolVar(&cfg.correlated, "correlated", false, "Generate weight-correlated values")
	fs.Usage = func() {
		fmt.Fprintln(errOut, "Usage: knapsack [flags] file...")
		fmt.Fprintln(errOut, "       knapsack -gen n [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "tolerance" {
			cfg.toleranceSet = true
		}
	})

	var err error
	if cfg.algo, err = knapsack.ParseAlgorithm(*algo); err != nil {
		fmt.Fprintln(errOut, err)

		return config{}, err
	}
	if cfg.format, err = instance.ParseFormat(*format); err != nil {
		fmt.Fprintln(errOut, err)

		return config{}, err
	}
	if cfg.parallel < 1 {
		cfg.parallel = 1
	}
	if cfg.ratio < 0 || cfg.ratio > 1 {
		err = fmt.Errorf("-ratio must be in [0,1], got %v", cfg.ratio)
		fmt.Fprintln(errOut, err)

		return config{}, err
	}
	cfg.files = fs.Args()
	if cfg.gen <= 0 && len(cfg.files) == 0 {
		fs.Usage()

		return config{}, flag.ErrHelp
	}

	return cfg, nil
}

// newLogger returns a JSON production logger, or a development logger at
// debug level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}

// job is one instance to solve.
type job struct {
	name string
	load func() (*instance.Instance, error)
}

// run solves every job and writes the reports to out in job order.
func run(ctx context.Context, cfg config, out io.Writer, log *zap.Logger) error {
	jobs := buildJobs(cfg)
	reports := make([]instance.Report, len(jobs))
	opts := knapsack.Options{Algo: cfg.algo, Tolerance: cfg.tolerance}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallel)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			// Solvers cannot be interrupted; skip jobs not yet started.
			if err := ctx.Err(); err != nil {
				return err
			}
			inst, err := j.load()
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			if cfg.toleranceSet {
				inst.Tolerance = cfg.tolerance
			}
			rep, err := instance.Solve(j.name, inst, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			log.Info("instance solved",
				zap.String("name", j.name),
				zap.Int("items", len(inst.Items)),
				zap.Int64("capacity", inst.Capacity),
				zap.Int64("value", rep.Value),
				zap.Int("optimal", rep.Optimal),
			)
			reports[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return instance.Encode(out, cfg.format, reports)
}

// buildJobs turns files or generator settings into jobs.
func buildJobs(cfg config) []job {
	if cfg.gen > 0 {
		count := cfg.count
		if count < 1 {
			count = 1
		}
		jobs := make([]job, count)
		for k := 0; k < count; k++ {
			seed := cfg.seed
			if count > 1 {
				seed = generator.DeriveSeed(cfg.seed, uint64(k))
			}
			jobs[k] = job{
				name: fmt.Sprintf("gen-%d", k),
				load: func() (*instance.Instance, error) {
					items, capacity := generator.Random(cfg.gen,
						generator.WithSeed(seed),
						generator.WithCapacityRatio(cfg.ratio),
						generator.WithCorrelation(cfg.correlated),
					)

					return instance.FromItems(items, capacity), nil
				},
			}
		}

		return jobs
	}

	jobs := make([]job, len(cfg.files))
	for k, path := range cfg.files {
		path := path
		jobs[k] = job{
			name: path,
			load: func() (*instance.Instance, error) { return instance.Load(path) },
		}
	}

	return jobs
}
