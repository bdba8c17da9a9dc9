package holdings

import (
	"fmt"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// positions zips generated ids and values into positions. Ids are drawn in a
// small range so that both periods share some of them.
func positions(ids, values []int) []Position {
	n := min(len(ids), len(values))
	res := make([]Position, 0, n)
	for i := range n {
		cusip := fmt.Sprintf("ID%03d", ids[i])
		res = append(res, NewPosition("NAME "+cusip, cusip, "T"+cusip, values[i], Q(values[i])))
	}
	return res
}

func total(ps []Position, extra int) int {
	sum := extra
	for _, p := range ps {
		sum += int(p.Value.IntPart())
	}
	return sum
}

// forAllBundles runs 'check' on a random bundle.
func forAllBundles(check func(b *Bundle, res *Result) bool) gopter.Prop {
	return prop.ForAll(
		func(ids1, values1, ids2, values2 []int, extra int) bool {
			p1, p2 := positions(ids1, values1), positions(ids2, values2)
			b := &Bundle{
				Current:  NewFiling("Q3 2025", "", total(p1, extra), p1...),
				Previous: NewFiling("Q2 2025", "", total(p2, extra), p2...),
			}
			res, err := Reconcile(b)
			if err != nil {
				return false
			}
			return check(b, res)
		},
		gen.SliceOf(gen.IntRange(0, 40)),
		gen.SliceOf(gen.IntRange(0, 100000)),
		gen.SliceOf(gen.IntRange(0, 40)),
		gen.SliceOf(gen.IntRange(0, 100000)),
		gen.IntRange(1, 1000),
	)
}

// expectedStatus restates the classification rules on plain integers.
func expectedStatus(v1, v2 int64) Status {
	if v1 > 0 && v2 == 0 {
		return New
	}
	if v1 == 0 && v2 > 0 {
		return Sold
	}
	if v1 > v2 {
		return Increased
	}
	if v1 < v2 {
		return Decreased
	}
	return Unchanged
}

func TestReconcile_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("one comparison per distinct identifier", forAllBundles(func(b *Bundle, res *Result) bool {
		union := make(map[string]struct{})
		for _, p := range slices.Concat(b.Current.Holdings, b.Previous.Holdings) {
			union[p.CUSIP] = struct{}{}
		}
		seen := make(map[string]struct{})
		for _, h := range res.Holdings {
			if _, dup := seen[h.CUSIP]; dup {
				return false
			}
			seen[h.CUSIP] = struct{}{}
		}
		return len(res.Holdings) == len(union)
	}))

	properties.Property("deltas are exact", forAllBundles(func(b *Bundle, res *Result) bool {
		for _, h := range res.Holdings {
			if !h.ValueChange.Equal(h.Value1.Sub(h.Value2)) {
				return false
			}
			if h.PercentChange != h.Percent1-h.Percent2 {
				return false
			}
		}
		return true
	}))

	properties.Property("status follows the precedence rules", forAllBundles(func(b *Bundle, res *Result) bool {
		for _, h := range res.Holdings {
			if h.Status != expectedStatus(h.Value1.Decimal().IntPart(), h.Value2.Decimal().IntPart()) {
				return false
			}
		}
		return true
	}))

	properties.Property("weights are computed against the declared total", forAllBundles(func(b *Bundle, res *Result) bool {
		for _, f := range []*Filing{b.Current, b.Previous} {
			s := NewSnapshot(f)
			total := f.TotalValue.InexactFloat64()
			for _, h := range s.Holdings {
				want := Percent(h.Value.Decimal().InexactFloat64() / total * 100)
				if !h.Percent.Equal(want) {
					return false
				}
			}
		}
		return true
	}))

	properties.Property("canonical order is by current value", forAllBundles(func(b *Bundle, res *Result) bool {
		for i := 1; i < len(res.Holdings); i++ {
			if res.Holdings[i].Value1.GreaterThan(res.Holdings[i-1].Value1) {
				return false
			}
		}
		return true
	}))

	properties.Property("top movers are bounded and ranked", forAllBundles(func(b *Bundle, res *Result) bool {
		movers := res.Summary.TopMovers
		if len(movers) > TopMovers || len(movers) > len(res.Holdings) {
			return false
		}
		for i := 1; i < len(movers); i++ {
			if movers[i].ValueChange.Abs().GreaterThan(movers[i-1].ValueChange.Abs()) {
				return false
			}
		}
		return true
	}))

	properties.Property("pie slices sum to the held weights", forAllBundles(func(b *Bundle, res *Result) bool {
		for _, pie := range []struct {
			slices []PieSlice
			weight func(ComparisonHolding) Percent
		}{{res.Pie1, Percent1}, {res.Pie2, Percent2}} {
			var want, got Percent
			for _, h := range res.Holdings {
				if w := pie.weight(h); w > 0 {
					want += w
				}
			}
			for _, s := range pie.slices {
				got += s.Value
			}
			if !got.Equal(want) || len(pie.slices) > TopSlices+1 {
				return false
			}
		}
		return true
	}))

	properties.Property("bar set is the head of the canonical list", forAllBundles(func(b *Bundle, res *Result) bool {
		if len(res.Bar) != min(TopBars, len(res.Holdings)) {
			return false
		}
		for i, bar := range res.Bar {
			h := res.Holdings[i]
			if bar.Name != h.Name || bar.Percent("Q3 2025") != h.Percent1 || bar.Percent("Q2 2025") != h.Percent2 {
				return false
			}
		}
		return true
	}))

	properties.TestingRun(t)
}
