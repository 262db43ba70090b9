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
	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
	"github.com/ducminhle1904/ga-solver/pkg/reporting"
)

const appName = "tsp"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags := common.RegisterCommonFlags(fs)

	citiesFile := fs.String("cities-file", "", "CSV file of x,y rows (default: random cities)")
	cityCount := fs.Int("cities", config.DefaultTSPCityCount, "Number of random cities")
	width := fs.Float64("width", config.DefaultTSPWidth, "Width of the random city area")
	height := fs.Float64("height", config.DefaultTSPHeight, "Height of the random city area")
	generations := fs.Int("generations", 0, "Generations to evolve per run")
	population := fs.Int("population", 0, "Population size")
	mutation := fs.Float64("mutation", 0, "Swap mutation rate")
	stagnation := fs.Int("stagnation", 0, "Generations without improvement counted as stagnant")
	runs := fs.Int("runs", config.DefaultTSPRuns, "Restarts on the same cities")

	usage := common.NewUsageFormatter(appName, "Travelling salesman tours with a genetic algorithm", fs).
		AddExample("tsp -seed 42 -runs 3", "Three restarts on one random instance").
		AddExample("tsp -cities-file cities.csv -generations 500", "Cities from a CSV file").
		AddExample("tsp -metrics-addr :9090 -delay 50", "Watch progress on /metrics and /status")
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

	cfg, err := config.NewManager().LoadTSPConfig(*flags.Config)
	if err != nil {
		return common.Fail(apperrors.NewConfigurationError("config", "load", err), "config", "load")
	}

	// Flags given on the command line win over the file and the environment
	set := common.VisitedFlags(fs)
	if set["cities-file"] {
		cfg.CitiesFile = *citiesFile
	}
	if set["cities"] {
		cfg.CityCount = *cityCount
	}
	if set["width"] {
		cfg.Width = *width
	}
	if set["height"] {
		cfg.Height = *height
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
	if set["stagnation"] {
		cfg.StagnationLimit = *stagnation
	}
	if set["runs"] {
		cfg.Runs = *runs
	}
	if set["seed"] {
		cfg.Seed = *flags.Seed
	}
	if set["delay"] {
		cfg.DelayMS = *flags.Delay
	}

	validator := common.NewFlagValidator().
		ValidateFile("cities-file", cfg.CitiesFile, false).
		ValidateInt("progress-every", *flags.ProgressEvery, 0, config.MaxGenerations).
		ValidateInt("delay", cfg.DelayMS, 0, 60000)
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
	session, err := common.NewSession(ctx, config.ProblemTSP, label, flags)
	if err != nil {
		return common.Fail(err, "session", "start")
	}
	defer session.Close()

	seed := "time-based"
	if cfg.Seed != 0 {
		seed = strconv.FormatInt(cfg.Seed, 10)
	}
	common.Header("Travelling Salesman Genetic Algorithm")
	common.Info("Population %d, %d generations, %d run(s), seed %s",
		cfg.PopulationSize, cfg.MaxGenerations, cfg.Runs, seed)

	res, err := orchestrator.NewOrchestrator(session.RunnerOptions()...).RunTSP(ctx, cfg)
	if err != nil {
		return session.Fail(err, "orchestrator", "run tsp")
	}
	session.Finish()
	session.LogTSPResult(res)

	written, err := session.Reporting().ReportTSP(res, label)
	if err != nil {
		return session.Fail(apperrors.NewReportingError("reporting", "write tsp", err), "reporting", "write tsp")
	}
	for _, path := range written {
		common.Success("Wrote %s", path)
	}
	common.Info("Finished in %s", common.FormatDuration(res.Duration))

	return 0
}
