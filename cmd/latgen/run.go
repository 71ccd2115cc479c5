// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/latgen/config"
	"github.com/katalvlaran/latgen/connfmt"
	"github.com/katalvlaran/latgen/engine"
	"github.com/katalvlaran/latgen/geo"
	"github.com/katalvlaran/latgen/latsource"
	"github.com/katalvlaran/latgen/metrics"
	"github.com/katalvlaran/latgen/render"
	"github.com/katalvlaran/latgen/workload"
)

type runner struct {
	cfg      config.Config
	logger   logrus.FieldLogger
	geocoder geo.Geocoder
	metrics  *metrics.Registry
}

func run(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (*summary, error) {
	r := &runner{
		cfg:      cfg,
		logger:   logger,
		geocoder: geo.NewNominatim(cfg.Geocoder.URL, cfg.Geocoder.UserAgent),
		metrics:  metrics.NewRegistry(),
	}
	return r.run(ctx)
}

func (r *runner) run(ctx context.Context) (*summary, error) {
	cfg := r.cfg

	src, err := latsource.Load(cfg.LatencyPage)
	if err != nil {
		return nil, err
	}
	r.logger.WithFields(logrus.Fields{
		"page":   cfg.LatencyPage,
		"cities": len(src.Cities),
	}).Debug("latency page loaded")

	var coords geo.Coordinates
	if cfg.UpdateCoordinates {
		r.logger.Info("updating city coordinates")
		if coords, err = geo.Refresh(ctx, r.geocoder, src.Cities); err != nil {
			return nil, err
		}
		if err := geo.SaveCoordinates(cfg.Coordinates, coords, src.Cities); err != nil {
			return nil, err
		}
	}

	n, err := cfg.ResolveNodes()
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{engine.WithLogger(r.logger), engine.WithMetrics(r.metrics)}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	eng, err := engine.New(src.Cities, src.Table, n, opts...)
	if err != nil {
		return nil, err
	}
	res, err := eng.Generate(cfg.Topology, cfg.MeanBandwidth)
	if err != nil {
		return nil, err
	}

	g, err := res.Graph()
	if err != nil {
		return nil, err
	}
	worst, from, to, err := g.WorstPathLatency()
	if err != nil {
		return nil, err
	}
	r.logger.WithFields(logrus.Fields{
		"worst_ms": worst,
		"from":     from,
		"to":       to,
	}).Debug("worst path latency")

	sum := &summary{
		RunID:       res.RunID,
		Topology:    res.Topology,
		Nodes:       n,
		Connections: len(res.Connections),
		WorstPathMs: worst,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.OutputFile != "" {
		if err := writeConnections(cfg.OutputFile, res); err != nil {
			return nil, err
		}
		sum.Outputs = append(sum.Outputs, cfg.OutputFile)
	}
	if cfg.WorkloadFile != "" {
		if err := workload.Rewrite(cfg.WorkloadFile, res.Lines); err != nil {
			return nil, err
		}
		sum.Outputs = append(sum.Outputs, cfg.WorkloadFile)
	}
	if cfg.OutputFile == "" && cfg.WorkloadFile == "" {
		sum.Printed = res.Lines
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.GraphFile != "" {
		if coords == nil {
			if coords, err = geo.LoadCoordinates(cfg.Coordinates); err != nil {
				return nil, err
			}
		}
		opts := render.Options{LabelEdges: cfg.LabelEdges}
		if err := render.Save(cfg.GraphFile, g, coords, opts); err != nil {
			return nil, err
		}
		sum.Outputs = append(sum.Outputs, cfg.GraphFile)
	}

	if cfg.MetricsFile != "" {
		if err := r.metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return nil, err
		}
		sum.Outputs = append(sum.Outputs, cfg.MetricsFile)
	}

	return sum, nil
}

func writeConnections(path string, res *engine.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeConnections: %w", err)
	}
	if err := connfmt.Write(f, res.Connections); err != nil {
		f.Close()
		return fmt.Errorf("writeConnections(%s): %w", path, err)
	}
	return f.Close()
}
