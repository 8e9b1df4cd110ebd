// Command roadnet prints a road network, asks for two cities on standard
// input, and prints the shortest route between them.
//
// Usage:
//
//	roadnet [-network file.yaml] [-frontier scan|heap] [-table] [-log-level info]
//
// Without -network the bundled six-city network is used.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/internal/cli"
)

func main() {
	networkPath := flag.String("network", "", "YAML network file (default: bundled US cities)")
	frontierName := flag.String("frontier", "scan", "next-node strategy: scan or heap")
	showTable := flag.Bool("table", false, "print the all-pairs distance table before prompting")
	logLevel := flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		logger.Warn().Str("level", *logLevel).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	logger = logger.Level(lvl)

	frontier, err := dijkstra.ParseFrontier(*frontierName)
	if err != nil {
		logger.Warn().Str("frontier", *frontierName).Msg("unknown frontier, using scan")
	}

	var network *config.Network
	if *networkPath == "" {
		network, err = config.Default()
	} else {
		network, err = config.LoadFile(*networkPath)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load network")
	}

	g, err := network.Build()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build network")
	}
	logger.Debug().
		Str("network", network.Name).
		Int("nodes", g.NodeCount()).
		Int("roads", g.RoadCount()).
		Msg("network loaded")

	app := cli.New(g, os.Stdin, os.Stdout,
		cli.WithUnit(network.Unit),
		cli.WithFrontier(frontier),
		cli.WithLogger(logger),
	)
	if *showTable {
		if err = app.PrintTable(); err != nil {
			logger.Error().Err(err).Msg("failed to print distance table")
		}
	}
	if err = app.Run(); err != nil {
		logger.Error().Err(err).Msg("session ended with an error")
	}
}
