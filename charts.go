package holdings

import (
	"slices"
)

const (
	// TopBars is the number of holdings compared in the bar chart.
	TopBars = 15
	// TopSlices is the number of holdings with their own slice in a pie chart.
	TopSlices = 6
	// OtherSlice is the name of the slice gathering the remaining holdings.
	OtherSlice = "Other"
	// OtherColor is the fill of the OtherSlice.
	OtherColor = "#94A3B8"
)

// Palette is the cycle of fills assigned to pie slices by rank.
var Palette = []string{"#3B82F6", "#60A5FA", "#93C5FD", "#BFDBFE", "#1D4ED8", "#1E40AF", "#1E3A8A"}

// BarEntry compares the weight of one holding in both periods.
//
// Weights are keyed by period label, so that consumers look them up by the
// label they display.
type BarEntry struct {
	Name     string
	Ticker   string
	Percents map[string]Percent
	labels   []string // keys of Percents in period order
}

// Percent returns the weight of the entry in the period labelled 'label'.
func (b BarEntry) Percent(label string) Percent { return b.Percents[label] }

// MarshalJSON writes the weights as fields named after the period labels:
//
//	{"name":"APPLE INC","ticker":"AAPL","Q3 2025":22.3,"Q2 2025":25.8}
func (b BarEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", b.Name)
	w.Append("ticker", b.Ticker)
	for _, label := range b.labels {
		w.Append(label, b.Percents[label])
	}
	return w.MarshalJSON()
}

// PieSlice is one slice of a period composition.
type PieSlice struct {
	Name  string  `json:"name"`
	Value Percent `json:"value"`
	Fill  string  `json:"fill"`
}

// NewBarChart returns the weight comparison of the first TopBars holdings of
// the canonical list.
func NewBarChart(label1, label2 string, holdings []ComparisonHolding) []BarEntry {
	top := holdings[:min(TopBars, len(holdings))]
	bars := make([]BarEntry, 0, len(top))
	for _, h := range top {
		bars = append(bars, BarEntry{
			Name:   h.Name,
			Ticker: h.Ticker,
			Percents: map[string]Percent{
				label1: h.Percent1,
				label2: h.Percent2,
			},
			labels: []string{label1, label2},
		})
	}
	return bars
}

// NewPieChart returns the composition of one period. 'weight' selects the
// period's percentage of a holding.
//
// Holdings with a positive weight are ranked by weight, the first TopSlices
// get their own slice, and the rest is summed into an OtherSlice, omitted
// when that sum is zero.
func NewPieChart(holdings []ComparisonHolding, weight func(ComparisonHolding) Percent) []PieSlice {
	held := make([]ComparisonHolding, 0, len(holdings))
	for _, h := range holdings {
		if weight(h) > 0 {
			held = append(held, h)
		}
	}
	slices.SortStableFunc(held, func(a, b ComparisonHolding) int {
		wa, wb := weight(a), weight(b)
		switch {
		case wa > wb:
			return -1
		case wa < wb:
			return 1
		}
		return 0
	})

	n := min(TopSlices, len(held))
	pie := make([]PieSlice, 0, n+1)
	for rank, h := range held[:n] {
		pie = append(pie, PieSlice{
			Name:  h.Ticker,
			Value: weight(h),
			Fill:  Palette[rank%len(Palette)],
		})
	}

	var other Percent
	for _, h := range held[n:] {
		other += weight(h)
	}
	if other > 0 {
		pie = append(pie, PieSlice{Name: OtherSlice, Value: other, Fill: OtherColor})
	}
	return pie
}

// Percent1 selects the current period weight, for NewPieChart.
func Percent1(h ComparisonHolding) Percent { return h.Percent1 }

// Percent2 selects the previous period weight, for NewPieChart.
func Percent2(h ComparisonHolding) Percent { return h.Percent2 }
