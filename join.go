package holdings

// side is one period's figures of a joined holding.
type side struct {
	value   Money
	shares  Quantity
	percent Percent
}

// entry accumulates a holding across both periods while joining.
type entry struct {
	name, cusip, ticker string
	current, previous   side
}

// joiner is an ordered full outer join of two snapshots keyed by CUSIP.
// Entries keep the order of their first insertion.
type joiner struct {
	index   map[string]int
	entries []*entry
	cur     string
}

func newJoiner(capacity int, currency string) *joiner {
	return &joiner{
		index:   make(map[string]int, capacity),
		entries: make([]*entry, 0, capacity),
		cur:     currency,
	}
}

// get returns the entry for 'h', creating it with h's metadata if needed.
func (j *joiner) get(h Holding) *entry {
	if i, ok := j.index[h.CUSIP]; ok {
		return j.entries[i]
	}
	zero := side{value: M(0, j.cur)}
	e := &entry{name: h.Name, cusip: h.CUSIP, ticker: h.Ticker, current: zero, previous: zero}
	j.index[h.CUSIP] = len(j.entries)
	j.entries = append(j.entries, e)
	return e
}

// join merges both snapshots: every current holding first, then the previous
// ones, merged into the existing entry when the CUSIP is already known.
// Missing sides are zero. Within a snapshot the last duplicate CUSIP wins.
func join(current, previous *Snapshot) []ComparisonHolding {
	j := newJoiner(len(current.Holdings)+len(previous.Holdings), cur(current.TotalValue, previous.TotalValue))
	for _, h := range current.Holdings {
		e := j.get(h)
		e.current = side{value: h.Value, shares: h.Shares, percent: h.Percent}
	}
	for _, h := range previous.Holdings {
		e := j.get(h)
		e.previous = side{value: h.Value, shares: h.Shares, percent: h.Percent}
	}

	res := make([]ComparisonHolding, 0, len(j.entries))
	for _, e := range j.entries {
		res = append(res, e.finalize())
	}
	return res
}

// finalize returns the immutable comparison of this entry.
func (e *entry) finalize() ComparisonHolding {
	return ComparisonHolding{
		Name:          e.name,
		Ticker:        e.ticker,
		CUSIP:         e.cusip,
		Value1:        e.current.value,
		Shares1:       e.current.shares,
		Percent1:      e.current.percent,
		Value2:        e.previous.value,
		Shares2:       e.previous.shares,
		Percent2:      e.previous.percent,
		ValueChange:   e.current.value.Sub(e.previous.value),
		PercentChange: e.current.percent - e.previous.percent,
		Status:        classify(e.current.value, e.previous.value),
	}
}
