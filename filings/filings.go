// Package filings fetches the two most recent 13-F filings of a fund, using
// Gemini grounded with Google Search, and returns them as a holdings.Bundle.
package filings

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/etnz/holdings"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used to read the filings.
const DefaultModel = "gemini-2.5-flash"

// Berkshire Hathaway, the fund followed by default.
const (
	DefaultFund = "Berkshire Hathaway"
	DefaultCIK  = "1067983"
)

// Models is the part of the genai client used to generate content.
// *genai.Models implements it.
type Models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Fetcher asks a model to find and extract the filings of a fund.
type Fetcher struct {
	Fund      string
	CIK       string
	ModelName string
	Config    *genai.GenerateContentConfig
	models    Models
}

// NewFetcher returns a fetcher for Berkshire Hathaway filings using the
// default model grounded on Google Search.
func NewFetcher(models Models) *Fetcher {
	return &Fetcher{
		Fund:      DefaultFund,
		CIK:       DefaultCIK,
		ModelName: DefaultModel,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		},
		models: models,
	}
}

// Fetch asks the model for the two most recent filings.
//
// The bundle's Sources are the web pages the answer was grounded on. The
// bundle is not validated, holdings.Reconcile does it.
func (f *Fetcher) Fetch(ctx context.Context) (*holdings.Bundle, error) {
	resp, err := f.models.GenerateContent(ctx, f.ModelName, genai.Text(Prompt(f.Fund, f.CIK)), f.Config)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s filings: %w", f.Fund, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response from %s", f.ModelName)
	}

	text := resp.Text()
	b, err := holdings.DecodeBundle(strings.NewReader(CleanJSON(text)))
	if err != nil {
		log.Printf("raw response of %s: %q", f.ModelName, text)
		return nil, fmt.Errorf("the model returned data in an invalid format: %w", err)
	}
	b.Sources = sources(resp)
	log.Printf("fetched %s filings %q and %q from %d sources", f.Fund, label(b.Current), label(b.Previous), len(b.Sources))
	return b, nil
}

func label(f *holdings.Filing) string {
	if f == nil {
		return ""
	}
	return f.Label
}

// sources returns the web pages the first candidate was grounded on.
func sources(resp *genai.GenerateContentResponse) []holdings.Source {
	md := resp.Candidates[0].GroundingMetadata
	if md == nil {
		return nil
	}
	res := make([]holdings.Source, 0, len(md.GroundingChunks))
	for _, c := range md.GroundingChunks {
		if c == nil || c.Web == nil {
			continue
		}
		res = append(res, holdings.Source{URI: c.Web.URI, Title: c.Web.Title})
	}
	return res
}

// CleanJSON removes the markdown code fence models like to wrap JSON in.
func CleanJSON(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// drop the info string, like "json".
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "json")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	} else if strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`") && len(s) > 1 {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

// NewClient returns a Gemini client whose responses are cached on disk for
// the day, see Daily. An empty 'apiKey' lets genai read it from the
// GEMINI_API_KEY or GOOGLE_API_KEY environment variables.
func NewClient(ctx context.Context, apiKey, cacheDir string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: Daily(cacheDir),
	})
}
