package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"

	"github.com/alextransit/alextransit/internal/app"
	"github.com/alextransit/alextransit/internal/assistant"
	"github.com/alextransit/alextransit/internal/config"
	"github.com/alextransit/alextransit/internal/gazetteer"
	"github.com/alextransit/alextransit/internal/worker"
)

var inMemoryFlag = &cli.BoolFlag{
	Name:  "no-memory",
	Usage: "do not read or write the user memory file",
}

var jsonFlag = &cli.BoolFlag{
	Name:  "json",
	Usage: "print machine readable output",
}

func build(c *cli.Context, log *zerolog.Logger) (*app.Components, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return nil, err
	}
	return app.Build(c.Context, cfg, app.Options{InMemory: c.Bool("no-memory")}, *log)
}

func queryCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "answer one trip question",
		ArgsUsage: "<question>",
		Flags:     []cli.Flag{inMemoryFlag, jsonFlag},
		Action: func(c *cli.Context) error {
			query := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(query) == "" {
				return cli.Exit("a question is required, e.g. transitctl query \"from Victoria to Sidi Gaber\"", 2)
			}

			components, err := build(c, log)
			if err != nil {
				return err
			}
			defer components.Close()

			resp := components.Assistant.HandleQuery(c.Context, query)
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp)
			}
			_, err = fmt.Fprintln(c.App.Writer, resp.Text)
			return err
		},
	}
}

// batchResult pairs a question with its answer, keeping input order.
type batchResult struct {
	Line     int                 `json:"line"`
	Query    string              `json:"query"`
	Response *assistant.Response `json:"response"`
}

func batchCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "answer one question per line from a file, or stdin with -",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			inMemoryFlag,
			jsonFlag,
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 4,
				Usage: "questions answered at once",
			},
		},
		Action: func(c *cli.Context) error {
			in, closeIn, err := openInput(c.Args().First())
			if err != nil {
				return err
			}
			defer closeIn()

			queries, err := readQueries(in)
			if err != nil {
				return err
			}

			components, err := build(c, log)
			if err != nil {
				return err
			}
			defer components.Close()

			p := pool.NewWithResults[batchResult]().
				WithContext(c.Context).
				WithMaxGoroutines(max(1, c.Int("concurrency")))
			for i, q := range queries {
				p.Go(func(ctx context.Context) (batchResult, error) {
					return batchResult{Line: i + 1, Query: q, Response: components.Assistant.HandleQuery(ctx, q)}, nil
				})
			}
			results, err := p.Wait()
			if err != nil {
				return err
			}
			sortResults(results)

			if c.Bool("json") {
				return writeJSON(c.App.Writer, results)
			}
			for _, r := range results {
				fmt.Fprintf(c.App.Writer, "%d\t%s\t%s\n", r.Line, r.Query, r.Response)
			}
			return nil
		},
	}
}

func stopsCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "stops",
		Usage: "look up stops in the gazetteer",
		Subcommands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "list stops whose names match the text",
				ArgsUsage: "<text>",
				Action: func(c *cli.Context) error {
					geo, err := geocoder(c, log)
					if err != nil {
						return err
					}
					stops := geo.Search(strings.Join(c.Args().Slice(), " "))
					return printStops(c.App.Writer, stops, nil)
				},
			},
			{
				Name:      "resolve",
				Usage:     "resolve place text to a single stop",
				ArgsUsage: "<text>",
				Action: func(c *cli.Context) error {
					geo, err := geocoder(c, log)
					if err != nil {
						return err
					}
					text := strings.Join(c.Args().Slice(), " ")
					m, ok := geo.Resolve(text)
					if !ok {
						return cli.Exit(fmt.Sprintf("no stop matches %q", text), 1)
					}
					_, err = fmt.Fprintf(c.App.Writer, "%s\t%s\t%.6f,%.6f\t%s\n", m.StopID, m.Name, m.Lat, m.Lon, m.Strategy)
					return err
				},
			},
			{
				Name:  "nearby",
				Usage: "list the stops closest to a coordinate",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "lat", Required: true},
					&cli.Float64Flag{Name: "lon", Required: true},
					&cli.IntFlag{Name: "limit", Value: 5},
				},
				Action: func(c *cli.Context) error {
					geo, err := geocoder(c, log)
					if err != nil {
						return err
					}
					near := geo.Nearest(c.Float64("lat"), c.Float64("lon"), c.Int("limit"))
					stops := make([]gazetteer.Stop, len(near))
					dist := make([]float64, len(near))
					for i, n := range near {
						stops[i] = n.Stop
						dist[i] = n.DistanceMeters
					}
					return printStops(c.App.Writer, stops, dist)
				},
			},
		},
	}
}

func geocoder(c *cli.Context, log *zerolog.Logger) (*gazetteer.Geocoder, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return nil, err
	}
	return app.NewGeocoder(cfg.GTFSStopsFile, *log)
}

func statusCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "check that the trip planner is reachable",
		Action: func(c *cli.Context) error {
			components, err := build(c, log)
			if err != nil {
				return err
			}
			defer components.Close()

			online := components.Planner.CheckStatus(c.Context)
			fmt.Fprintf(c.App.Writer, "planner %s (%s): %s\n",
				components.Planner.ProviderName(), components.Config.OTPBaseURL, onlineText(online))
			for _, h := range components.Registry.All() {
				fmt.Fprintf(c.App.Writer, "  %s: %s\n", h.Name, h.Status())
			}
			if !online {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func warmCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "warm",
		Usage: "plan the busiest corridors once to fill the shared plan cache",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "concurrency", Value: 3},
			&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second},
		},
		Action: func(c *cli.Context) error {
			components, err := build(c, log)
			if err != nil {
				return err
			}
			defer components.Close()

			cfg := worker.DefaultWarmConfig()
			cfg.Concurrency = c.Int("concurrency")
			cfg.Timeout = c.Duration("timeout")

			job := worker.NewWarmJob(worker.WarmJobConfig{
				Config:   cfg,
				Geocoder: components.Geocoder,
				Planner:  components.Planner,
				Requests: components.Assistant,
				Logger:   *log,
			})
			result := job.Run(c.Context)

			fmt.Fprintf(c.App.Writer, "planned %d of %d corridors in %s\n", result.Planned, result.Total, result.Duration.Round(time.Millisecond))
			for _, e := range result.Errors {
				fmt.Fprintf(c.App.Writer, "  %s: %s\n", e.Corridor, e.Error)
			}
			return nil
		},
	}
}

func onlineText(ok bool) string {
	if ok {
		return "online"
	}
	return "offline"
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// readQueries returns the non-blank lines of r. Lines starting with # are
// comments.
func readQueries(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading questions: %w", err)
	}
	return out, nil
}

func sortResults(results []batchResult) {
	sort.Slice(results, func(i, j int) bool { return results[i].Line < results[j].Line })
}

func printStops(w io.Writer, stops []gazetteer.Stop, dist []float64) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range stops {
		if dist != nil {
			fmt.Fprintf(tw, "%s\t%s\t%.6f,%.6f\t%.0f m\n", s.ID, s.Name, s.Lat, s.Lon, dist[i])
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.6f,%.6f\n", s.ID, s.Name, s.Lat, s.Lon)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
