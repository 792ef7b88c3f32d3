// Command filterinfo prints response characteristics of the streaming
// smoothing filters.
//
// Usage:
//
//	filterinfo [flags] [filter-name ...]
//
// Without arguments it prints info for every filter.
//
// Examples:
//
//	filterinfo lowpass
//	filterinfo -alpha 0.95 -window 16 lowpass movavg
//	filterinfo -q 0.001 -r 0.5 -rate 100 kalman
//	filterinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/dsp/filter/kalman"
	"github.com/cwbudde/algo-smooth/dsp/filter/lowpass"
	"github.com/cwbudde/algo-smooth/dsp/filter/movavg"
	"github.com/cwbudde/algo-smooth/measure/response"
)

type params struct {
	alpha  float64
	window int
	q, r   float64
}

type filterEntry struct {
	name  string
	label func(p params) string
	build func(p params) (response.Streamer, error)
}

var registry = []filterEntry{
	{
		name:  "lowpass",
		label: func(p params) string { return fmt.Sprintf("lowpass (a=%.3f)", p.alpha) },
		build: func(p params) (response.Streamer, error) {
			f, err := lowpass.New(p.alpha)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	},
	{
		name:  "movavg",
		label: func(p params) string { return fmt.Sprintf("movavg (n=%d)", p.window) },
		build: func(p params) (response.Streamer, error) {
			f, err := movavg.New(p.window)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	},
	{
		name:  "kalman",
		label: func(p params) string { return fmt.Sprintf("kalman (q=%g r=%g)", p.q, p.r) },
		build: func(p params) (response.Streamer, error) {
			f, err := kalman.New(p.q, p.r, 0)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("filterinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var p params
	fs.Float64Var(&p.alpha, "alpha", 0.9, "lowpass smoothing coefficient in [0, 1]")
	fs.IntVar(&p.window, "window", 8, "movavg window size")
	fs.Float64Var(&p.q, "q", 0.01, "kalman process noise")
	fs.Float64Var(&p.r, "r", 1, "kalman measurement noise")
	fftSize := fs.Int("fft", 1024, "FFT size (power of two)")
	rate := fs.Float64("rate", 1, "sample rate in Hz")
	warmup := fs.Int("warmup", 256, "zero samples fed before measuring")
	list := fs.Bool("list", false, "list available filter names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: filterinfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints DC gain, -3 dB cutoff and settling time of streaming filters.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *list {
		printList(stdout)
		return 0
	}

	names := fs.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names, stderr)
	if len(entries) == 0 {
		fmt.Fprintf(stderr, "error: no matching filters\n")
		return 1
	}

	opts := []response.Option{
		response.WithFFTSize(*fftSize),
		response.WithSampleRate(*rate),
		response.WithWarmup(*warmup),
	}
	if err := printAnalysis(stdout, entries, p, opts); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveEntries(names []string, stderr io.Writer) []filterEntry {
	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []filterEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(w io.Writer, entries []filterEntry, p params, opts []response.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tDC Gain\tCutoff [bin]\tCutoff [Hz]\tSettling [samples]\tNyquist [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t------------\t-----------\t------------------\t------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, e := range entries {
		f, err := e.build(p)
		if err != nil {
			return err
		}

		res, err := response.Analyze(f, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%.6f\t%s\t%s\t%s\t%s\n",
			e.label(p),
			res.DCGain,
			formatIndex(res.CutoffBin),
			formatHz(res.CutoffHz),
			formatIndex(res.SettlingSamples),
			formatDB(res.NyquistDB),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func formatIndex(i int) string {
	if i < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", i)
}

func formatHz(hz float64) string {
	if math.IsNaN(hz) {
		return "-"
	}
	return fmt.Sprintf("%.4f", hz)
}

func formatDB(db float64) string {
	if math.IsNaN(db) {
		return "-"
	}
	return fmt.Sprintf("%.2f", db)
}
