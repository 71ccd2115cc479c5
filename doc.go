// Package latgen synthesizes wide-area network topologies over measured
// inter-city latencies.
//
// A run places N nodes uniformly at random on the cities of a latency table,
// links them with a topology policy and emits one record per link:
//
//	<src>-><dst> <latency ms> <bandwidth>
//
// Layout:
//
//	latency/    city latency index over the anchor-shifted triangular table
//	latsource/  decoding the published latency page into cities + table
//	placement/  uniform node-to-city assignment
//	bandwidth/  Normal bandwidth draws
//	topology/   fully-connected and star policies behind a registry
//	connfmt/    the connection record format
//	netgraph/   the network as a graph (paths, components, rendering input)
//	geo/        city coordinates and geocoding
//	render/     SVG and Graphviz output
//	workload/   splicing records into simulator workload files
//	engine/     wiring the above into one seeded generator
//	config/, logging/, metrics/  run configuration, logrus, Prometheus
//	cmd/latgen  the command-line tool
//
// Quick example:
//
//	src, _ := latsource.Load("ogpage.html")
//	eng, _ := engine.New(src.Cities, src.Table, 8, engine.WithSeed(1))
//	res, _ := eng.Generate("star", 37.5)
//	for _, line := range res.Lines {
//		fmt.Println(line)
//	}
package latgen
