package holdings

import (
	"slices"
)

// NoTicker is the ticker of holdings reported without one.
const NoTicker = "N/A"

// Holding is one position of a normalized Snapshot.
type Holding struct {
	Name    string
	CUSIP   string
	Ticker  string
	Value   Money
	Shares  Quantity
	Percent Percent // weight in the snapshot's declared total value
}

// Snapshot is one period's holdings, ordered by value descending.
type Snapshot struct {
	Label      string
	FilingDate string
	TotalValue Money
	Holdings   []Holding
}

// NewSnapshot normalizes a filing: every holding gets its weight computed
// against the declared total value (not the sum of the holdings), and the
// holdings are sorted by value descending, preserving the filing order for
// equal values.
//
// The filing total value must be positive, see Bundle.Validate.
func NewSnapshot(f *Filing) *Snapshot {
	cur := currencyOf(f)
	total := M(*f.TotalValue, cur)
	s := &Snapshot{
		Label:      f.Label,
		FilingDate: f.FilingDate,
		TotalValue: total,
		Holdings:   make([]Holding, 0, len(f.Holdings)),
	}
	for _, p := range f.Holdings {
		ticker := p.Ticker
		if ticker == "" {
			ticker = NoTicker
		}
		value := M(*p.Value, cur)
		s.Holdings = append(s.Holdings, Holding{
			Name:    p.Name,
			CUSIP:   p.CUSIP,
			Ticker:  ticker,
			Value:   value,
			Shares:  p.Shares,
			Percent: value.Ratio(total),
		})
	}
	slices.SortStableFunc(s.Holdings, func(a, b Holding) int {
		return b.Value.Cmp(a.Value)
	})
	return s
}
