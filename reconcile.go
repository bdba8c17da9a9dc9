package holdings

// Result is the reconciled comparison of a Bundle.
type Result struct {
	Summary Summary `json:"summary"`
	// Holdings is the full comparison, by current value descending.
	Holdings []ComparisonHolding `json:"comparisonHoldings"`
	Bar      []BarEntry          `json:"barChartData"`
	Pie1     []PieSlice          `json:"pieChartData1"` // current period composition
	Pie2     []PieSlice          `json:"pieChartData2"` // previous period composition
}

// Reconcile compares the two filings of 'b'.
//
// It returns a *MalformedInputError or a *DataIntegrityError when the bundle
// cannot be compared, and never a partial result.
func Reconcile(b *Bundle) (*Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	current := NewSnapshot(b.Current)
	previous := NewSnapshot(b.Previous)

	holdings := join(current, previous)
	sortByValue1(holdings)

	return &Result{
		Summary:  NewSummary(current, previous, holdings),
		Holdings: holdings,
		Bar:      NewBarChart(current.Label, previous.Label, holdings),
		Pie1:     NewPieChart(holdings, Percent1),
		Pie2:     NewPieChart(holdings, Percent2),
	}, nil
}
