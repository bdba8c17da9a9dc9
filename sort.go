package holdings

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey is a column of the holdings table.
type SortKey string

const (
	ByName          SortKey = "name"
	ByTicker        SortKey = "ticker"
	ByCUSIP         SortKey = "cusip"
	ByValue1        SortKey = "value1"
	ByValue2        SortKey = "value2"
	ByShares1       SortKey = "shares1"
	ByShares2       SortKey = "shares2"
	ByPercent1      SortKey = "percent1"
	ByPercent2      SortKey = "percent2"
	ByValueChange   SortKey = "valueChange"
	ByPercentChange SortKey = "percentChange"
	ByStatus        SortKey = "status"
)

// comparators by sort key, in ascending order.
var comparators = map[SortKey]func(a, b ComparisonHolding) int{
	ByName:          func(a, b ComparisonHolding) int { return strings.Compare(a.Name, b.Name) },
	ByTicker:        func(a, b ComparisonHolding) int { return strings.Compare(a.Ticker, b.Ticker) },
	ByCUSIP:         func(a, b ComparisonHolding) int { return strings.Compare(a.CUSIP, b.CUSIP) },
	ByValue1:        func(a, b ComparisonHolding) int { return a.Value1.Cmp(b.Value1) },
	ByValue2:        func(a, b ComparisonHolding) int { return a.Value2.Cmp(b.Value2) },
	ByShares1:       func(a, b ComparisonHolding) int { return a.Shares1.Cmp(b.Shares1) },
	ByShares2:       func(a, b ComparisonHolding) int { return a.Shares2.Cmp(b.Shares2) },
	ByPercent1:      func(a, b ComparisonHolding) int { return cmp.Compare(a.Percent1, b.Percent1) },
	ByPercent2:      func(a, b ComparisonHolding) int { return cmp.Compare(a.Percent2, b.Percent2) },
	ByValueChange:   func(a, b ComparisonHolding) int { return a.ValueChange.Cmp(b.ValueChange) },
	ByPercentChange: func(a, b ComparisonHolding) int { return cmp.Compare(a.PercentChange, b.PercentChange) },
	ByStatus:        func(a, b ComparisonHolding) int { return strings.Compare(a.Status.String(), b.Status.String()) },
}

// SortKeys returns all the valid sort keys.
func SortKeys() []string {
	keys := make([]string, 0, len(comparators))
	for k := range comparators {
		keys = append(keys, string(k))
	}
	slices.Sort(keys)
	return keys
}

// ParseSortKey returns the sort key named 's'.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if _, ok := comparators[k]; !ok {
		return "", fmt.Errorf("unknown sort key %q, valid keys are %s", s, strings.Join(SortKeys(), ", "))
	}
	return k, nil
}

// SortHoldings returns a copy of 'hs' sorted by 'key'. The sort is stable,
// holdings comparing equal keep their relative order.
func SortHoldings(hs []ComparisonHolding, key SortKey, descending bool) []ComparisonHolding {
	res := slices.Clone(hs)
	compare, ok := comparators[key]
	if !ok {
		return res
	}
	if descending {
		asc := compare
		compare = func(a, b ComparisonHolding) int { return asc(b, a) }
	}
	slices.SortStableFunc(res, compare)
	return res
}
