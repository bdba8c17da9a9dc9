package holdings

// USD is a helper for test to create thousands of dollars from const
func USD(v float64) Money { return M(v, "USD") }

// pos is a helper for test to create a position from consts.
func pos(cusip string, value float64) Position {
	return NewPosition("NAME "+cusip, cusip, cusip, value, Q(value*10))
}

// bundle is a helper for test to create a bundle from two lists of positions.
func bundle(total1 float64, p1 []Position, total2 float64, p2 []Position) *Bundle {
	return &Bundle{
		Current:  NewFiling("Q3 2025", "2025-11-14", total1, p1...),
		Previous: NewFiling("Q2 2025", "2025-08-14", total2, p2...),
	}
}

// find is a helper for test to return the comparison of a cusip.
func find(hs []ComparisonHolding, cusip string) (ComparisonHolding, bool) {
	for _, h := range hs {
		if h.CUSIP == cusip {
			return h, true
		}
	}
	return ComparisonHolding{}, false
}
