package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings/filings"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	output string
	fund   string
	cik    string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch the two most recent 13-F filings of a fund" }
func (*fetchCmd) Usage() string {
	return `hcmp fetch [-o <file>] [-fund <name>] [-cik <cik>]

  Asks Gemini, grounded with Google Search, to find the two most recent
  quarterly 13-F filings of a fund on SEC EDGAR, and saves them as a bundle
  with the web pages the answer is based on.

  The Gemini API key is read from GEMINI_API_KEY or GOOGLE_API_KEY, a .env
  file in the working directory is loaded first. Answers are cached for the
  day, see -cache-dir.

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, \"-\" for stdout. Defaults to the global -bundle-file")
	f.StringVar(&c.fund, "fund", filings.DefaultFund, "Name of the fund")
	f.StringVar(&c.cik, "cik", filings.DefaultCIK, "SEC Central Index Key of the fund")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fetcher, err := newFetcher(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fetcher.Fund, fetcher.CIK = c.fund, c.cik

	b, err := fetcher.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	setDefaultCurrency(b, *defaultCurrency)

	output := c.output
	if output == "" {
		output = *bundleFile
	}
	if err := EncodeBundle(output, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing bundle %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	if output != "-" {
		fmt.Fprintf(os.Stderr, "Saved %s filings %q and %q to %s\n", c.fund, b.Current.Label, b.Previous.Label, output)
	}
	return subcommands.ExitSuccess
}
