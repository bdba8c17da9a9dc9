package holdings

import "slices"

// ComparisonHolding is one security joined across both periods. Figures of a
// period where the security is absent are zero.
type ComparisonHolding struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
	CUSIP  string `json:"cusip"`

	Value1   Money    `json:"value1"`
	Shares1  Quantity `json:"shares1"`
	Percent1 Percent  `json:"percent1"`

	Value2   Money    `json:"value2"`
	Shares2  Quantity `json:"shares2"`
	Percent2 Percent  `json:"percent2"`

	ValueChange   Money   `json:"valueChange"`   // Value1 - Value2
	PercentChange Percent `json:"percentChange"` // Percent1 - Percent2
	Status        Status  `json:"status"`
}

// sortByValue1 sorts the holdings in the canonical order: current value
// descending, join order among equals.
func sortByValue1(hs []ComparisonHolding) {
	slices.SortStableFunc(hs, func(a, b ComparisonHolding) int {
		return b.Value1.Cmp(a.Value1)
	})
}
