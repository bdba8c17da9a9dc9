package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/holdings"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func testBundle() *holdings.Bundle {
	b := &holdings.Bundle{
		Current: holdings.NewFiling("Q3 2025", "2025-11-14", 1_000_000,
			holdings.NewPosition("APPLE INC", "037833100", "AAPL", 600_000, holdings.Q(150_000_000)),
			holdings.NewPosition("CHEVRON CORP NEW", "166764100", "CVX", 400_000, holdings.Q(20_000_000)),
		),
		Previous: holdings.NewFiling("Q2 2025", "2025-08-14", 800_000,
			holdings.NewPosition("APPLE INC", "037833100", "AAPL", 500_000, holdings.Q(160_000_000)),
			holdings.NewPosition("BANK OF AMERICA", "060505104", "BAC", 300_000, holdings.Q(1_000_000)),
		),
		Sources: []holdings.Source{{URI: "https://www.sec.gov/cgi-bin/browse-edgar", Title: "sec.gov"}},
	}
	return b
}

func render(t *testing.T, b *holdings.Bundle, opts Options) string {
	t.Helper()
	r, err := holdings.Reconcile(b)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	md := Markdown(b, r, opts)
	if strings.HasPrefix(md, "error ") {
		t.Fatalf("Markdown() failed: %s", md)
	}
	return md
}

// document is the parsed structure of a rendered report.
type document struct {
	headings []string
	tables   [][][]string // rows of cells, header included
	links    []string
}

func parse(md string) document {
	src := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var doc document
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			doc.headings = append(doc.headings, nodeText(n, src))
		case *east.Table:
			doc.tables = append(doc.tables, nil)
		case *east.TableHeader, *east.TableRow:
			var row []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				row = append(row, nodeText(c, src))
			}
			doc.tables[len(doc.tables)-1] = append(doc.tables[len(doc.tables)-1], row)
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			doc.links = append(doc.links, string(n.Destination))
		}
		return ast.WalkContinue, nil
	})
	return doc
}

// nodeText concatenates the text segments below n.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// table returns the table whose header starts with 'first'.
func (d document) table(t *testing.T, first string) [][]string {
	t.Helper()
	for _, tb := range d.tables {
		if len(tb) > 0 && len(tb[0]) > 0 && tb[0][0] == first {
			return tb
		}
	}
	t.Fatalf("no table starting with %q in %v", first, d.tables)
	return nil
}

func TestMarkdown_Sections(t *testing.T) {
	doc := parse(render(t, testBundle(), DefaultOptions))

	want := []string{
		"Holdings Comparison: Q3 2025 vs Q2 2025",
		"Summary",
		"Top Movers",
		"Weight Comparison",
		"Composition",
		"Q3 2025",
		"Q2 2025",
		"Holdings Details",
		"Data Sources",
	}
	if got := strings.Join(doc.headings, "\n"); got != strings.Join(want, "\n") {
		t.Errorf("headings:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
	if len(doc.links) != 1 || doc.links[0] != "https://www.sec.gov/cgi-bin/browse-edgar" {
		t.Errorf("links = %v, want the sec.gov source", doc.links)
	}
}

func TestMarkdown_Summary(t *testing.T) {
	md := render(t, testBundle(), DefaultOptions)
	doc := parse(md)

	totals := doc.table(t, "")
	if got, want := totals[1], []string{"Total Value", "$800,000,000", "$1,000,000,000"}; strings.Join(got, ";") != strings.Join(want, ";") {
		t.Errorf("totals = %q, want %q", got, want)
	}

	if want := "Total portfolio value increased by $200,000,000 (+25.00%) from Q2 2025 to Q3 2025."; !strings.Contains(md, want) {
		t.Errorf("missing change sentence %q in:\n%s", want, md)
	}

	statuses := doc.table(t, "Status")
	got := map[string]string{}
	for _, row := range statuses[1:] {
		got[row[0]] = row[1]
	}
	for status, want := range map[string]string{"New": "1", "Sold": "1", "Increased": "1", "Decreased": "0", "Unchanged": "0"} {
		if got[status] != want {
			t.Errorf("%s holdings = %q, want %q", status, got[status], want)
		}
	}
}

func TestMarkdown_Movers(t *testing.T) {
	doc := parse(render(t, testBundle(), DefaultOptions))
	movers := doc.table(t, "Holding")

	// CVX +400M, BAC -300M, AAPL +100M
	want := [][]string{
		{"CHEVRON CORP NEW", "CVX", "+$400.00M", "New"},
		{"BANK OF AMERICA", "BAC", "-$300.00M", "Sold"},
		{"APPLE INC", "AAPL", "+$100.00M", "Increased"},
	}
	if len(movers) != len(want)+1 {
		t.Fatalf("movers = %q, want %d rows", movers, len(want))
	}
	for i, row := range want {
		if got := movers[i+1]; strings.Join(got, ";") != strings.Join(row, ";") {
			t.Errorf("mover %d = %q, want %q", i, got, row)
		}
	}
}

func TestMarkdown_Weights(t *testing.T) {
	doc := parse(render(t, testBundle(), DefaultOptions))

	// one column per period, and the bar.
	var weights [][]string
	for _, tb := range doc.tables {
		if len(tb[0]) == 4 && tb[0][1] == "Q2 2025" {
			weights = tb
		}
	}
	if weights == nil {
		t.Fatalf("no weight comparison table in %v", doc.tables)
	}
	if got, want := weights[1][:3], []string{"APPLE INC", "62.50%", "60.00%"}; strings.Join(got, ";") != strings.Join(want, ";") {
		t.Errorf("weights[1] = %q, want %q", got, want)
	}
	if got, want := weights[1][3], strings.Repeat("█", 24); got != want {
		t.Errorf("bar = %q, want %q", got, want)
	}
}

func TestMarkdown_HoldingsDetails(t *testing.T) {
	tests := []struct {
		opts Options
		want []string // tickers
	}{
		{DefaultOptions, []string{"AAPL", "CVX", "BAC"}},
		{Options{SortKey: holdings.ByValueChange, Descending: true}, []string{"CVX", "AAPL", "BAC"}},
		{Options{SortKey: holdings.ByName}, []string{"AAPL", "BAC", "CVX"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.opts.SortKey), func(t *testing.T) {
			md := render(t, testBundle(), tt.opts)
			details := parse(md).table(t, "Holding")
			// the details table is the widest.
			for _, tb := range parse(md).tables {
				if len(tb[0]) > len(details[0]) {
					details = tb
				}
			}
			var got []string
			for _, row := range details[1:] {
				got = append(got, row[1])
			}
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarkdown_SharesAndValues(t *testing.T) {
	md := render(t, testBundle(), DefaultOptions)
	for _, want := range []string{"150,000,000", "160,000,000", "$600,000,000", "+$100,000,000", "-2.50%"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
}

func TestMarkdown_NoSources(t *testing.T) {
	b := testBundle()
	b.Sources = nil
	doc := parse(render(t, b, DefaultOptions))
	for _, h := range doc.headings {
		if h == "Data Sources" {
			t.Errorf("unexpected Data Sources section")
		}
	}
}

func TestMarkdown_Empty(t *testing.T) {
	b := &holdings.Bundle{
		Current:  holdings.NewFiling("Q3 2025", "", 1),
		Previous: holdings.NewFiling("Q2 2025", "", 1),
	}
	md := render(t, b, DefaultOptions)
	if !strings.Contains(md, "No holdings in either period.") {
		t.Errorf("missing empty notice in:\n%s", md)
	}
	if !strings.Contains(md, "Total portfolio value did not change from Q2 2025 to Q3 2025.") {
		t.Errorf("missing unchanged sentence in:\n%s", md)
	}
}

func TestCell(t *testing.T) {
	cell := funcs["cell"].(func(string) string)
	if got, want := cell("A | B\nC"), `A \| B C`; got != want {
		t.Errorf("cell() = %q, want %q", got, want)
	}
}
