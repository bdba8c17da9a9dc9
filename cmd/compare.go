package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	file string
	live bool
	json bool
	raw  bool
	sort string
	asc  bool
	q1   string
	q2   string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the holdings of two consecutive filings" }
func (*compareCmd) Usage() string {
	return `hcmp compare [-f <file>] [-live] [-json|-raw] [-sort <key>] [-asc] [-q1 <path> -q2 <path>]

  Reconciles the two filings of a bundle and prints the comparison: summary,
  top movers, weight comparison, composition and holdings details.

  The bundle is read from the global -bundle-file, or -f, "-" being the
  standard input. With -live the filings are fetched first, as 'hcmp fetch'
  does, and nothing is read.

Usage Examples:
# Compare the filings saved by 'hcmp fetch'.
$ hcmp compare

# Largest changes first, as JSON.
$ hcmp compare -sort valueChange -json

`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Bundle file to compare, \"-\" for stdin. Defaults to the global -bundle-file")
	f.BoolVar(&c.live, "live", false, "fetch fresh filings instead of reading a bundle")
	f.BoolVar(&c.json, "json", false, "print the comparison as JSON")
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
	f.StringVar(&c.sort, "sort", string(holdings.ByValue1), "Holdings details order, one of "+strings.Join(holdings.SortKeys(), ", "))
	f.BoolVar(&c.asc, "asc", false, "sort the holdings details in ascending order")
	f.StringVar(&c.q1, "q1", holdings.DefaultPath1, "JSONPath of the most recent filing in the bundle")
	f.StringVar(&c.q2, "q2", holdings.DefaultPath2, "JSONPath of the previous filing in the bundle")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := holdings.ParseSortKey(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := c.bundle(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := c.report(b, renderer.Options{SortKey: key, Descending: !c.asc})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json || c.raw {
		fmt.Print(out)
	} else {
		printMarkdown(out)
	}
	return subcommands.ExitSuccess
}

// bundle returns the bundle to compare.
func (c *compareCmd) bundle(ctx context.Context) (*holdings.Bundle, error) {
	if !c.live {
		file := c.file
		if file == "" {
			file = *bundleFile
		}
		return DecodeBundle(file, c.q1, c.q2)
	}

	fetcher, err := newFetcher(ctx)
	if err != nil {
		return nil, err
	}
	b, err := fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	setDefaultCurrency(b, *defaultCurrency)
	return b, nil
}

// report reconciles 'b' and returns the JSON or markdown comparison.
func (c *compareCmd) report(b *holdings.Bundle, opts renderer.Options) (string, error) {
	res, err := holdings.Reconcile(b)
	if err != nil {
		return "", err
	}
	if !c.json {
		return renderer.Markdown(b, res, opts), nil
	}
	res.Holdings = holdings.SortHoldings(res.Holdings, opts.SortKey, opts.Descending)
	var buf strings.Builder
	if err := holdings.EncodeResult(&buf, res); err != nil {
		return "", err
	}
	return buf.String(), nil
}
