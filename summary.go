package holdings

import "slices"

// TopMovers is the number of holdings listed in Summary.TopMovers.
const TopMovers = 5

// Summary provides an at-a-glance overview of the two periods.
type Summary struct {
	Label1      string              `json:"label1"`
	Label2      string              `json:"label2"`
	TotalValue1 Money               `json:"totalValue1"`
	TotalValue2 Money               `json:"totalValue2"`
	TopMovers   []ComparisonHolding `json:"topMovers"`
}

// NewSummary returns the summary of both snapshots. 'holdings' must be in the
// canonical order, ties between movers of the same magnitude keep it.
func NewSummary(current, previous *Snapshot, holdings []ComparisonHolding) Summary {
	movers := slices.Clone(holdings)
	slices.SortStableFunc(movers, func(a, b ComparisonHolding) int {
		return b.ValueChange.Abs().Cmp(a.ValueChange.Abs())
	})
	movers = movers[:min(TopMovers, len(movers))]

	return Summary{
		Label1:      current.Label,
		Label2:      previous.Label,
		TotalValue1: current.TotalValue,
		TotalValue2: previous.TotalValue,
		TopMovers:   slices.Clip(movers),
	}
}

// Change returns the variation of the total portfolio value, from the
// previous period to the current one.
func (s Summary) Change() Money {
	return s.TotalValue1.Sub(s.TotalValue2)
}
