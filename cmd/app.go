// Package cmd implements the hcmp command line application, comparing the
// holdings of a portfolio between two reporting periods.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/filings"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fetchCmd{}, "filings")
	c.Register(&compareCmd{}, "filings")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	bundleFile      = flag.String("bundle-file", "bundle.json", "Path to the two filings bundle (JSON format)")
	model           = flag.String("model", filings.DefaultModel, "Gemini model used to fetch the filings")
	defaultCurrency = flag.String("currency", holdings.DefaultCurrency, "Currency of the filings that do not declare one")
	cacheDir        = flag.String("cache-dir", "", "Directory of the daily cache of Gemini responses, the system temp dir by default")
	Verbose         = flag.Bool("v", false, "print logs to stderr")
)

// envFlags maps the global flags to the environment variables that set them
// when they are not on the command line.
var envFlags = map[string]string{
	"bundle-file": EnvBundleFile,
	"model":       EnvModel,
	"currency":    EnvCurrency,
	"cache-dir":   EnvCacheDir,
	"v":           EnvVerbose,
}

// Configure completes the parsed global 'flags' with the environment.
//
// A .env file in the working directory is loaded first, it never overrides
// variables already set. Flags on the command line win over the environment.
func Configure(flags *flag.FlagSet) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, env := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || set[name] || flags.Lookup(name) == nil {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}

	if !*Verbose {
		log.SetOutput(io.Discard)
	}
	return nil
}

// newFetcher returns a filings fetcher using the global model and cache.
func newFetcher(ctx context.Context) (*filings.Fetcher, error) {
	client, err := filings.NewClient(ctx, "", *cacheDir)
	if err != nil {
		return nil, fmt.Errorf("could not create Gemini client: %w", err)
	}
	f := filings.NewFetcher(client.Models)
	f.ModelName = *model
	return f, nil
}

// DecodeBundle reads the bundle from 'file', "-" is the standard input.
// 'path1' and 'path2' locate the filings in the document, see
// holdings.ExtractBundle.
func DecodeBundle(file, path1, path2 string) (*holdings.Bundle, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	b, err := holdings.ExtractBundle(r, path1, path2)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", file, err)
	}
	setDefaultCurrency(b, *defaultCurrency)
	log.Printf("read bundle %q", file)
	return b, nil
}

// EncodeBundle writes the bundle into 'file', "-" is the standard output.
func EncodeBundle(file string, b *holdings.Bundle) error {
	if file == "-" {
		return holdings.EncodeBundle(os.Stdout, b)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := holdings.EncodeBundle(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// setDefaultCurrency sets 'cur' on the filings that have no currency.
func setDefaultCurrency(b *holdings.Bundle, cur string) {
	for _, f := range []*holdings.Filing{b.Current, b.Previous} {
		if f != nil && f.Currency == "" {
			f.Currency = cur
		}
	}
}
