package renderer

import (
	"fmt"

	"github.com/etnz/holdings"
)

// Options holds configuration for rendering a comparison report.
type Options struct {
	SortKey    holdings.SortKey // Order of the holdings details table.
	Descending bool
}

// DefaultOptions sorts the holdings details by current value, largest first.
var DefaultOptions = Options{SortKey: holdings.ByValue1, Descending: true}

// StatusCount is the number of holdings in a given status.
type StatusCount struct {
	Status holdings.Status
	Count  int
}

// Comparison is the data model of a comparison report.
type Comparison struct {
	Label1, Label2           string
	FilingDate1, FilingDate2 string
	Total1, Total2           holdings.Money
	Change                   holdings.Money
	ChangePercent            holdings.Percent // Change relative to Total2.
	Statuses                 []StatusCount

	Movers     []holdings.ComparisonHolding
	Bar        []holdings.BarEntry
	Pie1, Pie2 []holdings.PieSlice

	Holdings   []holdings.ComparisonHolding // Holdings details, sorted by SortKey.
	SortKey    holdings.SortKey
	Descending bool

	Sources []holdings.Source
}

// NewComparison builds the report model of 'r', the reconciled comparison
// of 'b'.
func NewComparison(b *holdings.Bundle, r *holdings.Result, opts Options) *Comparison {
	s := r.Summary
	c := &Comparison{
		Label1:        s.Label1,
		Label2:        s.Label2,
		Total1:        s.TotalValue1,
		Total2:        s.TotalValue2,
		Change:        s.Change(),
		ChangePercent: s.Change().Ratio(s.TotalValue2),
		Statuses:      countStatuses(r.Holdings),
		Movers:        s.TopMovers,
		Bar:           r.Bar,
		Pie1:          r.Pie1,
		Pie2:          r.Pie2,
		Holdings:      holdings.SortHoldings(r.Holdings, opts.SortKey, opts.Descending),
		SortKey:       opts.SortKey,
		Descending:    opts.Descending,
	}
	if b != nil {
		c.Sources = b.Sources
		if b.Current != nil {
			c.FilingDate1 = b.Current.FilingDate
		}
		if b.Previous != nil {
			c.FilingDate2 = b.Previous.FilingDate
		}
	}
	return c
}

// ChangeSentence describes how the total value moved between both periods.
func (c *Comparison) ChangeSentence() string {
	switch {
	case c.Change.IsPositive():
		return fmt.Sprintf("Total portfolio value increased by %s (%s) from %s to %s.", c.Change.Abs(), c.ChangePercent.SignedString(), c.Label2, c.Label1)
	case c.Change.IsNegative():
		return fmt.Sprintf("Total portfolio value decreased by %s (%s) from %s to %s.", c.Change.Abs(), c.ChangePercent.SignedString(), c.Label2, c.Label1)
	}
	return fmt.Sprintf("Total portfolio value did not change from %s to %s.", c.Label2, c.Label1)
}

func countStatuses(hs []holdings.ComparisonHolding) []StatusCount {
	counts := []StatusCount{
		{Status: holdings.New},
		{Status: holdings.Sold},
		{Status: holdings.Increased},
		{Status: holdings.Decreased},
		{Status: holdings.Unchanged},
	}
	for _, h := range hs {
		for i := range counts {
			if counts[i].Status == h.Status {
				counts[i].Count++
			}
		}
	}
	return counts
}
