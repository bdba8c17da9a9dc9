package holdings

import (
	"github.com/shopspring/decimal"
)

// Bundle is the raw input of a comparison: two filings of the same portfolio
// for consecutive periods, as produced by an upstream collaborator.
type Bundle struct {
	// Current is the most recent period ("period 1").
	Current *Filing `json:"quarter1"`
	// Previous is the period before ("period 2").
	Previous *Filing `json:"quarter2"`
	// Sources the bundle was compiled from, if any. Not used by Reconcile.
	Sources []Source `json:"sources,omitempty"`
}

// Filing is one period's raw report.
type Filing struct {
	Label      string           `json:"label"`
	FilingDate string           `json:"filingDate"` // not validated
	TotalValue *decimal.Decimal `json:"totalValue"` // in thousands
	Holdings   []Position       `json:"holdings"`
	// Currency of the values, DefaultCurrency if empty.
	Currency string `json:"currency,omitempty"`
}

// Position is one raw line of a filing's information table.
type Position struct {
	Name   string           `json:"name"`
	CUSIP  string           `json:"cusip"`
	Ticker string           `json:"ticker,omitempty"`
	Value  *decimal.Decimal `json:"value"` // in thousands
	Shares Quantity         `json:"shares"`
}

// Source is a document the bundle was grounded on.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// NewPosition is a convenient constructor of a Position.
func NewPosition[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](name, cusip, ticker string, value T, shares Quantity) Position {
	v := newDecimal(value)
	return Position{Name: name, CUSIP: cusip, Ticker: ticker, Value: &v, Shares: shares}
}

// NewFiling is a convenient constructor of a Filing.
func NewFiling[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](label, filingDate string, total T, positions ...Position) *Filing {
	v := newDecimal(total)
	if positions == nil {
		positions = []Position{}
	}
	return &Filing{Label: label, FilingDate: filingDate, TotalValue: &v, Holdings: positions}
}

const (
	period1 = "quarter1"
	period2 = "quarter2"
)

// Validate checks that the bundle can be reconciled. Integrity errors are
// reported before shape errors of the holdings, so that a broken total fails
// fast.
func (b *Bundle) Validate() error {
	if b == nil {
		return &MalformedInputError{Index: -1, Reason: "missing bundle"}
	}
	if b.Current == nil {
		return &MalformedInputError{Period: period1, Index: -1, Reason: "missing snapshot"}
	}
	if b.Previous == nil {
		return &MalformedInputError{Period: period2, Index: -1, Reason: "missing snapshot"}
	}
	if err := b.Current.checkIntegrity(period1); err != nil {
		return err
	}
	if err := b.Previous.checkIntegrity(period2); err != nil {
		return err
	}
	if err := b.Current.checkShape(period1); err != nil {
		return err
	}
	if err := b.Previous.checkShape(period2); err != nil {
		return err
	}
	if currencyOf(b.Current) != currencyOf(b.Previous) {
		return &MalformedInputError{Period: period2, Index: -1, Field: "currency", Reason: "currency " + currencyOf(b.Previous) + " differs from " + currencyOf(b.Current)}
	}
	if b.Current.Label == b.Previous.Label {
		return &MalformedInputError{Period: period2, Index: -1, Field: "label", Reason: "label " + b.Current.Label + " is used by both periods"}
	}
	return nil
}

func (f *Filing) checkIntegrity(period string) error {
	switch {
	case f.TotalValue == nil:
		return &DataIntegrityError{Period: period, Reason: "missing total value"}
	case !f.TotalValue.IsPositive():
		return &DataIntegrityError{Period: period, Reason: "total value must be positive, got " + f.TotalValue.String()}
	case f.Holdings == nil:
		return &DataIntegrityError{Period: period, Reason: "missing holdings list"}
	}
	return nil
}

func (f *Filing) checkShape(period string) error {
	if f.Label == "" {
		return &MalformedInputError{Period: period, Index: -1, Field: "label", Reason: "missing period label"}
	}
	for i, p := range f.Holdings {
		switch {
		case p.CUSIP == "":
			return &MalformedInputError{Period: period, Index: i, Field: "cusip", Reason: "is required"}
		case p.Name == "":
			return &MalformedInputError{Period: period, Index: i, Field: "name", Reason: "is required"}
		case p.Value == nil:
			return &MalformedInputError{Period: period, Index: i, Field: "value", Reason: "is required"}
		}
	}
	return nil
}

func currencyOf(f *Filing) string {
	if f.Currency == "" {
		return DefaultCurrency
	}
	return f.Currency
}
