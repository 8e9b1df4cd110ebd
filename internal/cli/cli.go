// Package cli is the interactive text front-end of the roadnet binary: it
// prints a network's adjacency, prompts for a start and a destination, and
// prints the shortest route between them.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/matrix"
)

// App runs one interactive session over a fixed graph.
type App struct {
	graph    *core.Graph
	unit     string
	frontier dijkstra.Frontier
	log      zerolog.Logger

	in  *bufio.Scanner
	out io.Writer
}

// Option configures an App.
type Option func(*App)

// WithUnit sets the distance unit printed after totals.
func WithUnit(unit string) Option {
	return func(a *App) {
		if unit != "" {
			a.unit = unit
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithFrontier selects the dijkstra frontier strategy used for queries.
func WithFrontier(f dijkstra.Frontier) Option {
	return func(a *App) { a.frontier = f }
}

// New creates an App reading whitespace-delimited tokens from in and writing to out.
func New(g *core.Graph, in io.Reader, out io.Writer, opts ...Option) *App {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	a := &App{
		graph:    g,
		unit:     "miles",
		frontier: dijkstra.FrontierScan,
		log:      zerolog.Nop(),
		in:       sc,
		out:      out,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run prints the network, asks for a start and a destination, and prints
// the route. End of input at either prompt ends the session without error;
// only read and write failures are returned.
func (a *App) Run() error {
	if err := a.PrintNetwork(); err != nil {
		return err
	}

	start, err := a.promptCity("Enter start city: ")
	if err != nil {
		return eofIsDone(err)
	}
	end, err := a.promptCity("Enter destination city: ")
	if err != nil {
		return eofIsDone(err)
	}

	return a.PrintRoute(start, end)
}

// PrintNetwork writes "City Network:" followed by one line per node listing
// its direct roads, then a blank line.
func (a *App) PrintNetwork() error {
	var b strings.Builder
	b.WriteString("City Network:\n")
	for _, name := range a.graph.Nodes() {
		roads, err := a.graph.Neighbors(name)
		if err != nil {
			return err
		}
		parts := make([]string, len(roads))
		for i, r := range roads {
			parts[i] = fmt.Sprintf("%s(%d)", r.To, r.Weight)
		}
		fmt.Fprintf(&b, "%s: %s\n", name, strings.Join(parts, " "))
	}
	b.WriteString("\n")

	_, err := io.WriteString(a.out, b.String())

	return err
}

// PrintRoute computes and prints the shortest route from start to end.
// Unknown cities and unreachable destinations are reported on out, not
// returned: they end the query, not the session.
func (a *App) PrintRoute(start, end string) error {
	route, err := dijkstra.ShortestRoute(a.graph, start, end,
		dijkstra.WithFrontier(a.frontier),
		dijkstra.WithOnVisit(func(name string, dist int64) {
			a.log.Trace().Str("node", name).Int64("dist", dist).Msg("visit")
		}),
		dijkstra.WithOnRelax(func(from, to string, dist int64) {
			a.log.Trace().Str("from", from).Str("to", to).Int64("dist", dist).Msg("relax")
		}),
	)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		a.log.Debug().Str("start", start).Str("end", end).Msg("no route")
		_, err = fmt.Fprintf(a.out, "No route from %s to %s\n", start, end)

		return err
	case errors.Is(err, core.ErrNodeNotFound):
		a.log.Debug().Err(err).Msg("unknown city")
		_, err = fmt.Fprintf(a.out, "Unknown city in %s -> %s\n", start, end)

		return err
	case err != nil:
		return err
	}

	a.log.Debug().
		Str("start", start).
		Str("end", end).
		Int64("distance", route.Distance).
		Int("hops", route.Hops()).
		Stringer("frontier", a.frontier).
		Msg("route computed")

	_, err = fmt.Fprintf(a.out, "Shortest route from %s to %s:\n%s\nTotal distance: %d %s\n",
		start, end, route, route.Distance, a.unit)

	return err
}

// PrintTable writes the all-pairs distance table, "-" marking disconnected pairs.
func (a *App) PrintTable() error {
	tbl, err := matrix.AllPairs(a.graph)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	names := tbl.Names()
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(names, "\t"))
	for i, name := range names {
		row := tbl.Row(i)
		cells := make([]string, len(row))
		for j, d := range row {
			if d == core.Unreachable {
				cells[j] = "-"
			} else {
				cells[j] = fmt.Sprintf("%d", d)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", name, strings.Join(cells, "\t"))
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	_, err = io.WriteString(a.out, "\n")

	return err
}

// promptCity prompts until the user names a known city.
func (a *App) promptCity(prompt string) (string, error) {
	for {
		if _, err := io.WriteString(a.out, prompt); err != nil {
			return "", err
		}
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return "", err
			}
			// keep the terminal tidy after an unanswered prompt
			_, _ = io.WriteString(a.out, "\n")

			return "", io.EOF
		}
		city := a.in.Text()
		if a.graph.HasNode(city) {
			return city, nil
		}
		a.log.Debug().Str("city", city).Msg("unknown city")
		if _, err := fmt.Fprintf(a.out, "Unknown city %q\n", city); err != nil {
			return "", err
		}
	}
}

func eofIsDone(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
