package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ducminhle1904/ga-solver/cmd/common"
	apperrors "github.com/ducminhle1904/ga-solver/internal/errors"
	"github.com/ducminhle1904/ga-solver/pkg/config"
	"github.com/ducminhle1904/ga-solver/pkg/optimization"
	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
	"github.com/ducminhle1904/ga-solver/pkg/reporting"
)

const appName = "knapsack"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags := common.RegisterCommonFlags(fs)

	itemsFile := fs.String("items-file", "", "CSV file of weight,value rows (default: random items)")
	capacity := fs.Int("capacity", config.DefaultKnapsackCapacity, "Knapsack capacity")
	itemCount := fs.Int("items", config.DefaultKnapsackItemCount, "Number of random items")
	generations := fs.Int("generations", 0, "Generations to evolve")
	population := fs.Int("population", 0, "Population size")
	mutation := fs.Float64("mutation", 0, "Per-gene mutation rate")
	crossover := fs.Float64("crossover", 0, "Crossover rate")
	strategy := fs.String("strategy", "bottom-up", "Exact solver: bottom-up or memoized")

	usage := common.NewUsageFormatter(appName, "0/1 knapsack with a genetic algorithm checked against dynamic programming", fs).
		AddExample("knapsack -seed 42", "Random instance, reproducible").
		AddExample("knapsack -items-file items.csv -capacity 50 -strategy memoized", "Items from a CSV file").
		AddExample("knapsack -config knapsack.json -console-only", "Settings from a JSON file, no output files")
	fs.Usage = func() { usage.PrintUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if common.CheckHelpAndVersion(appName, flags, usage) {
		return 0
	}
	common.SetupLogger(flags)

	if err := common.LoadEnvFile(*flags.EnvFile); err != nil {
		return common.Fail(apperrors.NewConfigurationError("cli", "load env", err), "cli", "load env")
	}

	cfg, err := config.NewManager().LoadKnapsackConfig(*flags.Config)
	if err != nil {
		return common.Fail(apperrors.NewConfigurationError("config", "load", err), "config", "load")
	}

	// Flags given on the command line win over the file and the environment
	set := common.VisitedFlags(fs)
	if set["items-file"] {
		cfg.ItemsFile = *itemsFile
	}
	if set["capacity"] {
		cfg.Capacity = *capacity
	}
	if set["items"] {
		cfg.ItemCount = *itemCount
	}
	if set["generations"] {
		cfg.MaxGenerations = *generations
	}
	if set["population"] {
		cfg.PopulationSize = *population
	}
	if set["mutation"] {
		cfg.MutationRate = *mutation
	}
	if set["crossover"] {
		cfg.CrossoverRate = *crossover
	}
	if set["strategy"] {
		cfg.Strategy = *strategy
	}
	if set["seed"] {
		cfg.Seed = *flags.Seed
	}
	if set["delay"] {
		cfg.DelayMS = *flags.Delay
	}

	validator := common.NewFlagValidator().
		ValidateFile("items-file", cfg.ItemsFile, false).
		ValidateInt("progress-every", *flags.ProgressEvery, 0, config.MaxGenerations)
	if _, err := optimization.ParseStrategy(cfg.Strategy); err != nil {
		validator.AddError(err.Error())
	}
	if validator.HasErrors() {
		validator.PrintErrors()
		return common.Fail(apperrors.NewValidationError("cli", "flags", validator.GetError().Error()), "cli", "flags")
	}
	if err := cfg.Validate(); err != nil {
		return common.Fail(apperrors.NewConfigurationError("config", "validate", err), "config", "validate")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	label := reporting.RunLabel(cfg.Seed)
	session, err := common.NewSession(ctx, config.ProblemKnapsack, label, flags)
	if err != nil {
		return common.Fail(err, "session", "start")
	}
	defer session.Close()

	common.Header("Knapsack Genetic Algorithm")
	common.Info("Capacity %d, population %d, %d generations, seed %s",
		cfg.Capacity, cfg.PopulationSize, cfg.MaxGenerations, seedLabel(cfg.Seed))

	res, err := orchestrator.NewOrchestrator(session.RunnerOptions()...).RunKnapsack(ctx, cfg)
	if err != nil {
		return session.Fail(err, "orchestrator", "run knapsack")
	}
	session.Finish()
	session.LogKnapsackResult(res)

	written, err := session.Reporting().ReportKnapsack(res, label)
	if err != nil {
		return session.Fail(apperrors.NewReportingError("reporting", "write knapsack", err), "reporting", "write knapsack")
	}
	for _, path := range written {
		common.Success("Wrote %s", path)
	}
	common.Info("Finished in %s", common.FormatDuration(res.Duration))

	return 0
}

func seedLabel(seed int64) string {
	if seed == 0 {
		return "time-based"
	}
	return strconv.FormatInt(seed, 10)
}
