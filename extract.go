package holdings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Default JSONPath expressions of the two filings in a document.
const (
	DefaultPath1 = "$.quarter1"
	DefaultPath2 = "$.quarter2"
)

// ExtractBundle reads a JSON document and extracts the current and previous
// filings at the JSONPath expressions 'path1' and 'path2'. It is useful when
// the filings are embedded in a larger document, for instance an API
// envelope ("$.data.filings[0]").
//
// Sources are read at "$.sources" when present.
func ExtractBundle(r io.Reader, path1, path2 string) (*Bundle, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, &MalformedInputError{Index: -1, Reason: fmt.Sprintf("invalid document: %v", err)}
	}

	current, err := extractFiling(doc, path1, period1)
	if err != nil {
		return nil, err
	}
	previous, err := extractFiling(doc, path2, period2)
	if err != nil {
		return nil, err
	}
	b := &Bundle{Current: current, Previous: previous}

	// sources are optional, a lookup error only means there are none.
	if jval, err := jsonpath.Get("$.sources", doc); err == nil {
		if err := remarshal(jval, &b.Sources); err != nil {
			return nil, &MalformedInputError{Index: -1, Reason: fmt.Sprintf("invalid sources: %v", err)}
		}
	}
	return b, nil
}

// extractFiling returns the filing at 'path', or nil if there is none.
func extractFiling(doc any, path, period string) (*Filing, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		// missing snapshots are reported by Validate.
		return nil, nil
	}
	// wildcards and filters return a list of matches, keep the first one.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, nil
		}
		jval = jlist[0]
	}
	if jval == nil {
		return nil, nil
	}

	var f Filing
	if err := remarshal(jval, &f); err != nil {
		return nil, &MalformedInputError{Period: period, Index: -1, Reason: fmt.Sprintf("invalid filing at %q: %v", path, err)}
	}
	return &f, nil
}

// remarshal converts a generic json value into 'v'.
func remarshal(jval any, v any) error {
	raw, err := json.Marshal(jval)
	if err != nil {
		return err
	}
	return json.NewDecoder(bytes.NewReader(raw)).Decode(v)
}
