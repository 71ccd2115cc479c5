// SPDX-License-Identifier: MIT

// Command latgen synthesizes a WAN topology over real inter-city latencies.
//
// Usage:
//
//	latgen [-config run.yaml] [-n nodes] [-b bandwidth] [-t fcon|star]
//	       [-f out.txt] [-i workload.txt] [-s graph.svg] [-l] [-u]
//
// Connection records go to -f, are spliced into the workload given by -i, or
// are printed to stdout when neither is set.
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

	"github.com/katalvlaran/latgen/config"
	"github.com/katalvlaran/latgen/logging"
	"github.com/katalvlaran/latgen/topology"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("latgen: "+err.Error()))
		os.Exit(2)
	}

	logger, closeLog := logging.Setup(cfg.Log)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := run(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("latgen failed")
		fmt.Fprintln(os.Stderr, errorStyle.Render("latgen: "+err.Error()))
		closeLog()
		os.Exit(1)
	}
	if len(sum.Printed) > 0 {
		for _, line := range sum.Printed {
			fmt.Fprintln(os.Stdout, line)
		}
		return
	}
	fmt.Fprintln(os.Stdout, sum.Render())
}

// parseFlags builds the run configuration: defaults, then the -config file,
// then every flag given explicitly on the command line.
func parseFlags(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("latgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	var (
		configFile  = fs.String("config", "", "YAML or TOML configuration file")
		outFile     = fs.String("f", "", "write connections to `file`")
		insertFile  = fs.String("i", "", "insert connections into an existing workload `file`")
		update      = fs.Bool("u", false, "refresh city coordinates before generating")
		graphFile   = fs.String("s", "", "save the network graph to `file` (.svg or .dot)")
		labels      = fs.Bool("l", false, "show latencies and bandwidths on graph edges")
		nodes       = fs.Int("n", 0, "number of nodes (default: workload node_count, else 10)")
		bw          = fs.Float64("b", def.MeanBandwidth, "mean bandwidth of the network")
		topo        = fs.String("t", def.Topology, "topology: 'fcon' (fully connected) or 'star'")
		seed        = fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
		page        = fs.String("page", def.LatencyPage, "latency page to read")
		coords      = fs.String("coords", def.Coordinates, "city coordinates file")
		logLevel    = fs.String("log-level", def.Log.Level, "log level")
		logFile     = fs.String("log-file", "", "rotate logs into `file` instead of stderr")
		metricsFile = fs.String("metrics-file", "", "write Prometheus metrics to `file`")
	)
	if err := fs.Parse(args); err != nil {
		return def, err
	}
	if fs.NArg() > 0 {
		return def, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return def, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			cfg.OutputFile = *outFile
		case "i":
			cfg.WorkloadFile = *insertFile
		case "u":
			cfg.UpdateCoordinates = *update
		case "s":
			cfg.GraphFile = *graphFile
		case "l":
			cfg.LabelEdges = *labels
		case "n":
			cfg.Nodes = *nodes
		case "b":
			cfg.MeanBandwidth = *bw
		case "t":
			cfg.Topology = *topo
		case "seed":
			cfg.Seed = *seed
		case "page":
			cfg.LatencyPage = *page
		case "coords":
			cfg.Coordinates = *coords
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-file":
			cfg.Log.File = *logFile
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		}
	})

	if err := cfg.Validate(topology.DefaultRegistry().Names()); err != nil {
		return def, err
	}

	return cfg, nil
}
