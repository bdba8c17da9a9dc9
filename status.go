package holdings

import (
	"encoding/json"
	"fmt"
)

// Status classifies how a holding moved between the two periods.
type Status int

const (
	Unchanged Status = iota
	New
	Sold
	Increased
	Decreased
)

var statusNames = map[Status]string{
	Unchanged: "Unchanged",
	New:       "New",
	Sold:      "Sold",
	Increased: "Increased",
	Decreased: "Decreased",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus returns the status named 's'.
func ParseStatus(s string) (Status, error) {
	for k, v := range statusNames {
		if v == s {
			return k, nil
		}
	}
	return Unchanged, fmt.Errorf("unknown status %q", s)
}

func (s Status) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	st, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// classify returns the status of a holding valued v1 in the current period
// and v2 in the previous one. Rules are evaluated in order.
func classify(v1, v2 Money) Status {
	switch {
	case v1.IsPositive() && v2.IsZero():
		return New
	case v1.IsZero() && v2.IsPositive():
		return Sold
	case v1.GreaterThan(v2):
		return Increased
	case v1.LessThan(v2):
		return Decreased
	}
	return Unchanged
}
